package domain

import (
	"fmt"
	"time"
)

// All disables a month or day filter.
const All = "all"

// Months is the month allow-list. A month's index in this slice is its
// calendar number, so january is 1.
var Months = []string{All, "january", "february", "march", "april", "may", "june"}

// Days is the weekday allow-list.
var Days = []string{All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Filter is a validated city, month and day selection.
type Filter struct {
	City  City   `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewFilter validates the three values and builds a Filter.
func NewFilter(city, month, day string) (Filter, error) {
	c, err := ParseCity(city)
	if err != nil {
		return Filter{}, err
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Filter{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return Filter{}, err
	}
	return Filter{City: c, Month: m, Day: d}, nil
}

// ParseMonth normalises s and checks it against Months.
func ParseMonth(s string) (string, error) {
	m := Normalize(s)
	if indexOf(Months, m) < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return m, nil
}

// ParseDay normalises s and checks it against Days.
func ParseDay(s string) (string, error) {
	d := Normalize(s)
	if indexOf(Days, d) < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// MonthIndex returns the calendar number of the filter month, or 0 for all.
func (f Filter) MonthIndex() int {
	if f.Month == All {
		return 0
	}
	return indexOf(Months, f.Month)
}

// Match reports whether a trip passes the month and day predicates.
func (f Filter) Match(t Trip) bool {
	if idx := f.MonthIndex(); idx > 0 && t.Month != idx {
		return false
	}
	if f.Day != "" && f.Day != All && t.Weekday != f.Day {
		return false
	}
	return true
}

func (f Filter) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", f.City, f.Month, f.Day)
}

// MonthName returns the lowercase English name for a calendar month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return lower(time.Month(month).String())
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
