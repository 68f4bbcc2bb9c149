package stats

import (
	"math"

	"github.com/bikeshare-data/pkg/bikeshare/models"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// Breakdown is a span of seconds split into whole days, hours and minutes
// plus the remaining (possibly fractional) seconds.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds float64
}

// Decompose splits total seconds. Negative totals are treated as zero.
func Decompose(total float64) Breakdown {
	if total < 0 || math.IsNaN(total) {
		total = 0
	}
	return Breakdown{
		Days:    int64(math.Floor(total / secondsPerDay)),
		Hours:   int64(math.Floor(math.Mod(total, secondsPerDay) / secondsPerHour)),
		Minutes: int64(math.Floor(math.Mod(total, secondsPerHour) / secondsPerMinute)),
		Seconds: math.Mod(total, secondsPerMinute),
	}
}

// Total converts the breakdown back to seconds.
func (b Breakdown) Total() float64 {
	return float64(b.Days*secondsPerDay+b.Hours*secondsPerHour+b.Minutes*secondsPerMinute) + b.Seconds
}

// DurationStats holds total and mean trip duration.
type DurationStats struct {
	Count       int
	Total       float64
	TotalSplit  Breakdown
	Mean        float64
	MeanMinutes int64
	MeanSeconds float64
}

func ComputeDuration(ds *models.Dataset) DurationStats {
	var s DurationStats
	for _, t := range ds.Trips {
		s.Total += t.Duration
		s.Count++
	}
	s.TotalSplit = Decompose(roundCents(s.Total))
	if s.Count > 0 {
		s.Mean = s.Total / float64(s.Count)
		mean := roundCents(s.Mean)
		s.MeanMinutes = int64(math.Floor(mean / secondsPerMinute))
		s.MeanSeconds = math.Mod(mean, secondsPerMinute)
	}
	return s
}

// roundCents rounds to the two decimals the report prints, so the split
// never shows 60 seconds.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
