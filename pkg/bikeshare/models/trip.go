package models

import (
	"time"
)

// Trip is one row of a city's trip log plus the calendar fields derived
// from its start time.
type Trip struct {
	Index        int // position of the row in the source, 0-based
	StartTime    time.Time
	EndTime      string
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       string // empty when missing
	BirthYear    int    // 0 when missing

	Month   int    // 1-12
	Weekday string // "Monday".."Sunday"
	Hour    int    // 0-23
}

// NewTrip fills the derived calendar fields from start.
func NewTrip(index int, start time.Time) Trip {
	return Trip{
		Index:     index,
		StartTime: start,
		Month:     int(start.Month()),
		Weekday:   WeekdayName(start.Weekday()),
		Hour:      start.Hour(),
	}
}

// Dataset is the in-memory trip table of one city.
type Dataset struct {
	City         string
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Trips)
}

// Empty reports whether no trips matched.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Page returns trips [offset, offset+size) clamped to the table. It never
// fails: an offset past the end yields an empty slice.
func (d *Dataset) Page(offset, size int) []Trip {
	n := d.Len()
	if offset < 0 {
		offset = 0
	}
	if offset >= n || size <= 0 {
		return nil
	}
	end := offset + size
	if end > n {
		end = n
	}
	return d.Trips[offset:end]
}

// Filter returns a new Dataset holding the trips that match month and day.
// Either may be All. The receiver is not modified.
func (d *Dataset) Filter(month, day string) *Dataset {
	out := &Dataset{
		City:         d.City,
		HasGender:    d.HasGender,
		HasBirthYear: d.HasBirthYear,
	}

	monthNum := 0
	if month != All {
		monthNum = MonthNumber(month)
	}
	dayName := ""
	if day != All {
		dayName = Title(day)
	}

	out.Trips = make([]Trip, 0, len(d.Trips))
	for _, t := range d.Trips {
		if monthNum != 0 && t.Month != monthNum {
			continue
		}
		if dayName != "" && t.Weekday != dayName {
			continue
		}
		out.Trips = append(out.Trips, t)
	}
	return out
}
