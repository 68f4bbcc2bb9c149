package stats

import "github.com/bikeshare-data/pkg/bikeshare/models"

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month   int
	Weekday string
	Hour    int
}

// MonthName returns the title-cased name of Month.
func (s TimeStats) MonthName() string {
	return models.MonthName(s.Month)
}

// ComputeTime finds the modal month, weekday and start hour. ok is false
// for an empty dataset.
func ComputeTime(ds *models.Dataset) (TimeStats, bool) {
	months := newCounter[int]()
	days := newCounter[string]()
	hours := newCounter[int]()
	for _, t := range ds.Trips {
		months.Add(t.Month)
		days.Add(t.Weekday)
		hours.Add(t.Hour)
	}

	var s TimeStats
	var ok bool
	if s.Month, _, ok = months.Mode(); !ok {
		return TimeStats{}, false
	}
	s.Weekday, _, _ = days.Mode()
	s.Hour, _, _ = hours.Mode()
	return s, true
}
