// Package report prints the trip statistics for a filtered table.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/bikeshare/internal/domain"
	"github.com/bft-labs/bikeshare/internal/stats"
)

// Separator closes every section.
var Separator = strings.Repeat("-", 40)

const noTrips = "No trip data available for the selected filters."

// Options controls report rendering.
type Options struct {
	// ShowTimings prints how long each section took to compute.
	ShowTimings bool
	// Plain disables terminal styling.
	Plain bool
	// Now is the clock used for timings. Defaults to time.Now.
	Now func() time.Time
}

// Reporter renders statistics sections to a writer.
type Reporter struct {
	out     io.Writer
	opts    Options
	heading lipgloss.Style
}

// New creates a Reporter writing to out.
func New(out io.Writer, opts Options) *Reporter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	heading := lipgloss.NewRenderer(out).NewStyle()
	if !opts.Plain {
		heading = heading.Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	}
	return &Reporter{out: out, opts: opts, heading: heading}
}

// All prints the four statistics sections in order.
func (r *Reporter) All(tbl *domain.Table) {
	r.Time(tbl)
	r.Stations(tbl)
	r.Durations(tbl)
	r.Users(tbl)
}

// Time prints the most frequent times of travel.
func (r *Reporter) Time(tbl *domain.Table) {
	r.section("Calculating The Most Frequent Times of Travel...", func() error {
		s, err := stats.Time(tbl)
		if err != nil {
			return err
		}
		r.printf("Most common month: %s\n", s.MonthName())
		r.printf("Most common day of week: %s\n", s.WeekdayName())
		r.printf("Most common start hour: %d\n", s.Hour)
		return nil
	})
}

// Stations prints the most popular stations and trip.
func (r *Reporter) Stations(tbl *domain.Table) {
	r.section("Calculating The Most Popular Stations and Trip...", func() error {
		s, err := stats.Stations(tbl)
		if err != nil {
			return err
		}
		r.printf("Most common used start station: %s\n", s.StartStation.Value)
		r.printf("Most common used end station: %s\n", s.EndStation.Value)
		r.printf("Most frequent combination of start station and end station trip: Start Station: %s, End Station: %s\n",
			s.Route.Value.Start, s.Route.Value.End)
		return nil
	})
}

// Durations prints the total and mean trip duration.
func (r *Reporter) Durations(tbl *domain.Table) {
	r.section("Calculating Trip Duration...", func() error {
		s, err := stats.Durations(tbl)
		if err != nil {
			return err
		}
		r.printf("Total travel time is: %d seconds\n", s.TotalSeconds())
		r.printf("Mean travel time is: %d seconds\n", s.MeanSeconds())
		return nil
	})
}

// Users prints user type, gender and birth year statistics.
func (r *Reporter) Users(tbl *domain.Table) {
	r.section("Calculating User Stats...", func() error {
		s, err := stats.Users(tbl)
		if err != nil {
			return err
		}
		for _, c := range s.UserTypes {
			r.printf("Count of %s: %d\n", c.Value, c.Count)
		}
		if s.Genders == nil {
			r.printf("Gender not available in data file\n")
		} else {
			for _, c := range s.Genders {
				r.printf("Count of %s: %d\n", c.Value, c.Count)
			}
		}
		if s.BirthYears == nil {
			r.printf("Birth Year not available in data file\n")
		} else {
			r.printf("Earliest year of birth: %d\n", s.BirthYears.Earliest)
			r.printf("Most recent year of birth: %d\n", s.BirthYears.MostRecent)
			r.printf("Most common year of birth: %d\n", s.BirthYears.MostCommon)
		}
		return nil
	})
}

func (r *Reporter) section(title string, body func() error) {
	r.printf("\n%s\n\n", r.heading.Render(title))
	start := r.opts.Now()

	if err := body(); err != nil {
		if errors.Is(err, domain.ErrNoTrips) {
			r.printf("%s\n", noTrips)
		} else {
			r.printf("Could not compute statistics: %v\n", err)
		}
	}

	if r.opts.ShowTimings {
		elapsed := r.opts.Now().Sub(start)
		r.printf("\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	}
	r.printf("%s\n", Separator)
}

func (r *Reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
