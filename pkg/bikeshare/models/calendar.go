package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All disables a month or day filter.
const All = "all"

// Months lists every month name in calendar order. Only the first
// FilterableMonths entries are accepted as filter input.
var Months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// FilterableMonths is how many leading entries of Months the datasets cover.
const FilterableMonths = 6

// Weekdays lists day names Monday first, matching the prompt order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Cities maps a recognized city name to its dataset file name.
var Cities = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

// CityNames returns the registry keys in prompt order.
func CityNames() []string {
	return []string{"chicago", "new york city", "washington"}
}

// IsCity reports whether name is a registry key.
func IsCity(name string) bool {
	_, ok := Cities[name]
	return ok
}

// IsMonthFilter reports whether name is one of the filterable months or All.
func IsMonthFilter(name string) bool {
	return name == All || MonthNumber(name) > 0
}

// IsDayFilter reports whether name is a weekday or All.
func IsDayFilter(name string) bool {
	if name == All {
		return true
	}
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// MonthNumber returns the 1-based index of a filterable month name,
// or 0 when name is not one.
func MonthNumber(name string) int {
	for i, m := range Months[:FilterableMonths] {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the title-cased name of month number n (1-12).
func MonthName(n int) string {
	if n < 1 || n > len(Months) {
		return ""
	}
	return Title(Months[n-1])
}

// WeekdayName returns the title-cased English name of d, e.g. "Monday".
func WeekdayName(d time.Weekday) string {
	return d.String()
}

// Title converts a lowercase selection such as "new york city" to
// "New York City".
func Title(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
