package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/pkg/bikeshare/models"
)

const separator = "----------------------------------------"

// Reporter prints the four statistics sections for a filtered dataset.
type Reporter struct {
	out    io.Writer
	logger logger.Logger
	now    func() time.Time
}

func NewReporter(out io.Writer, logger logger.Logger) *Reporter {
	return &Reporter{
		out:    out,
		logger: logger,
		now:    time.Now,
	}
}

// All runs the time, station, duration and user reports in that order.
func (r *Reporter) All(ds *models.Dataset) {
	r.TimeStats(ds)
	r.StationStats(ds)
	r.TripDurationStats(ds)
	r.UserStats(ds)
}

// TimeStats prints the most frequent times of travel.
func (r *Reporter) TimeStats(ds *models.Dataset) {
	fmt.Fprint(r.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	start := r.now()

	s, ok := ComputeTime(ds)
	if !ok {
		fmt.Fprintln(r.out, "No trips to analyze.")
	} else {
		fmt.Fprintf(r.out, "Most Common Month: %s\n", s.MonthName())
		fmt.Fprintf(r.out, "Most Common Day: %s\n", s.Weekday)
		fmt.Fprintf(r.out, "Most Common Start Hour: %d:00\n", s.Hour)
	}

	r.finish("time", start)
}

// StationStats prints the most popular stations and trip.
func (r *Reporter) StationStats(ds *models.Dataset) {
	fmt.Fprint(r.out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	start := r.now()

	s := ComputeStations(ds)
	fmt.Fprintf(r.out, "Most used Start Station is %s\n", orNA(s.StartStation))
	fmt.Fprintf(r.out, "Most used End Station is %s\n", orNA(s.EndStation))
	if s.TripCount > 0 {
		fmt.Fprintf(r.out, "Most common trip: %s → %s\n", s.Trip.Start, s.Trip.End)
	} else {
		fmt.Fprintln(r.out, "Most common trip: n/a")
	}

	r.finish("station", start)
}

// TripDurationStats prints total and average trip duration.
func (r *Reporter) TripDurationStats(ds *models.Dataset) {
	fmt.Fprint(r.out, "\nCalculating Trip Duration...\n\n")
	start := r.now()

	s := ComputeDuration(ds)
	t := s.TotalSplit
	fmt.Fprintf(r.out, "Total travel time is %d day(s) %d hour(s), %d minute(s), and %s second(s).\n",
		t.Days, t.Hours, t.Minutes, formatSeconds(t.Seconds))
	fmt.Fprintf(r.out, "Average travel time is %d minutes and %s seconds\n",
		s.MeanMinutes, formatSeconds(s.MeanSeconds))

	r.finish("duration", start)
}

// UserStats prints user type, gender and birth year figures.
func (r *Reporter) UserStats(ds *models.Dataset) {
	fmt.Fprint(r.out, "\nCalculating User Stats...\n\n")
	start := r.now()

	s := ComputeUsers(ds)
	fmt.Fprintln(r.out, "Counts of User Types:")
	r.printCounts(s.UserTypes)

	if s.Genders != nil {
		fmt.Fprintln(r.out, "Counts of each gender:")
		r.printCounts(s.Genders)
	} else {
		fmt.Fprintln(r.out, "No gender data available for this city.")
	}

	if s.BirthYears != nil {
		fmt.Fprintln(r.out, "\nBirth Year Stats:")
		fmt.Fprintf(r.out, "Earliest Birth Year: %d\n", s.BirthYears.Earliest)
		fmt.Fprintf(r.out, "Most Recent Birth Year: %d\n", s.BirthYears.MostRecent)
		fmt.Fprintf(r.out, "Most Common Birth Year: %d\n", s.BirthYears.MostCommon)
	} else {
		fmt.Fprintln(r.out, "\nNo birth year data available for this city.")
	}

	r.finish("user", start)
}

func (r *Reporter) printCounts(counts []Count[string]) {
	w := tabwriter.NewWriter(r.out, 0, 0, 4, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Value, c.N)
	}
	w.Flush()
}

func (r *Reporter) finish(section string, start time.Time) {
	elapsed := r.now().Sub(start)
	fmt.Fprintf(r.out, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	fmt.Fprintln(r.out, separator)
	r.logger.Debug("Statistics computed", "section", section, "elapsed", elapsed.String())
}

// formatSeconds prints whole seconds without a fraction and anything else
// to two decimals.
func formatSeconds(s float64) string {
	if s == float64(int64(s)) {
		return strconv.FormatInt(int64(s), 10)
	}
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(s, 'f', 2, 64), "0"), ".")
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
