package stats

import (
	"github.com/bft-labs/bikeshare/internal/domain"
)

// weekdayOrder ranks lowercase weekday names monday first.
var weekdayOrder = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	// Month is the most common calendar month (1..12).
	Month int
	// Weekday is the most common lowercase weekday name.
	Weekday string
	// Hour is the most common start hour (0..23).
	Hour int
}

// MonthName returns the title-cased name of the most common month.
func (s TimeStats) MonthName() string { return domain.TitleCase(domain.MonthName(s.Month)) }

// WeekdayName returns the title-cased most common weekday.
func (s TimeStats) WeekdayName() string { return domain.TitleCase(s.Weekday) }

// Time computes the most common month, weekday and start hour.
// Weekday ties resolve in calendar order, monday first.
func Time(tbl *domain.Table) (TimeStats, error) {
	if tbl.Len() == 0 {
		return TimeStats{}, domain.ErrNoTrips
	}
	months := newOrderedCounter[int]()
	hours := newOrderedCounter[int]()
	days := newCounter(func(a, b string) bool { return weekdayOrder[a] < weekdayOrder[b] })

	for _, t := range tbl.Trips {
		months.add(t.Month)
		days.add(t.Weekday)
		hours.add(t.StartTime.Hour())
	}

	m, _ := months.mode()
	d, _ := days.mode()
	h, _ := hours.mode()
	return TimeStats{Month: m.Value, Weekday: d.Value, Hour: h.Value}, nil
}
