package domain

import (
	"strings"
	"time"
)

// Column names used by the city data files.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// RequiredColumns must be present in every data file.
var RequiredColumns = []string{ColStartTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType}

// Trip is a single trip record.
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64
	HasDuration  bool
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	// Month is the calendar month of StartTime (1..12).
	Month int
	// Weekday is the lowercase weekday name of StartTime.
	Weekday string

	// Raw holds the original cells in header order.
	Raw []string
}

// NewTrip derives the month and weekday columns from start.
func NewTrip(start time.Time) Trip {
	return Trip{
		StartTime: start,
		Month:     int(start.Month()),
		Weekday:   lower(start.Weekday().String()),
	}
}

// Table is the set of trips loaded for a city.
type Table struct {
	City         City
	Header       []string
	Trips        []Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips.
func (t *Table) Len() int { return len(t.Trips) }

// Filter returns a new table holding only the trips that match f.
// File order is preserved.
func (t *Table) Filter(f Filter) *Table {
	out := &Table{
		City:         t.City,
		Header:       t.Header,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
		Trips:        make([]Trip, 0, len(t.Trips)),
	}
	for _, trip := range t.Trips {
		if f.Match(trip) {
			out.Trips = append(out.Trips, trip)
		}
	}
	return out
}

func lower(s string) string { return strings.ToLower(s) }
