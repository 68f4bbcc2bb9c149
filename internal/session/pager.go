package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bikeshare-data/pkg/bikeshare/models"
)

// Pager shows raw trips a page at a time for as long as the user says yes.
type Pager struct {
	prompter *Prompter
	out      io.Writer
	size     int
}

func NewPager(p *Prompter, size int) *Pager {
	if size <= 0 {
		size = 5
	}
	return &Pager{prompter: p, out: p.out, size: size}
}

// Run asks whether to show raw data and pages through ds. It returns the
// number of rows shown.
func (pg *Pager) Run(ds *models.Dataset) (int, error) {
	answer, err := pg.prompter.AskUntil(
		fmt.Sprintf("\nWould you like to see %d rows of raw data? Enter yes or no: ", pg.size), "", isYesNo)
	if err != nil {
		return 0, err
	}

	offset := 0
	for answer == "yes" {
		rows := ds.Page(offset, pg.size)
		WriteRows(pg.out, ds, rows)
		fmt.Fprintln(pg.out, strings.Repeat("-", 40))
		offset += pg.size

		if offset >= ds.Len() {
			fmt.Fprintln(pg.out, "No more raw data to display.")
			break
		}

		answer, err = pg.prompter.Ask(
			fmt.Sprintf("\nWould you like to see %d more rows of raw data? Enter yes or no: ", pg.size))
		if err != nil {
			return min(offset, ds.Len()), err
		}
	}
	return min(offset, ds.Len()), nil
}

// WriteRows prints trips as an aligned table with the source row index,
// the raw columns and the derived month and weekday.
func WriteRows(w io.Writer, ds *models.Dataset, rows []models.Trip) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if ds.HasGender {
		header = append(header, "Gender")
	}
	if ds.HasBirthYear {
		header = append(header, "Birth Year")
	}
	header = append(header, "month", "day_of_week")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, t := range rows {
		cells := []string{
			strconv.Itoa(t.Index),
			t.StartTime.Format("2006-01-02 15:04:05"),
			t.EndTime,
			strconv.FormatFloat(t.Duration, 'f', -1, 64),
			t.StartStation,
			t.EndStation,
			orNaN(t.UserType),
		}
		if ds.HasGender {
			cells = append(cells, orNaN(t.Gender))
		}
		if ds.HasBirthYear {
			year := "NaN"
			if t.BirthYear > 0 {
				year = strconv.Itoa(t.BirthYear)
			}
			cells = append(cells, year)
		}
		cells = append(cells, strconv.Itoa(t.Month), t.Weekday)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func orNaN(s string) string {
	if s == "" {
		return "NaN"
	}
	return s
}
