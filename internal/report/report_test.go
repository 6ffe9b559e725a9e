package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/bikeshare/internal/domain"
)

func newTrip(t *testing.T, start string, dur float64, from, to, user, gender string, year int) domain.Trip {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04:05", start)
	if err != nil {
		t.Fatal(err)
	}
	trip := domain.NewTrip(ts)
	trip.Duration = dur
	trip.HasDuration = true
	trip.StartStation = from
	trip.EndStation = to
	trip.UserType = user
	trip.Gender = gender
	trip.BirthYear = year
	trip.HasBirthYear = year > 0
	return trip
}

func chicagoTable(t *testing.T) *domain.Table {
	return &domain.Table{
		City:         domain.Chicago,
		HasGender:    true,
		HasBirthYear: true,
		Trips: []domain.Trip{
			newTrip(t, "2017-06-23 15:09:32", 321, "Wood St", "Damen Ave", "Subscriber", "Male", 1992),
			newTrip(t, "2017-06-23 15:40:00", 400, "Wood St", "Damen Ave", "Subscriber", "Female", 1985),
			newTrip(t, "2017-05-24 09:00:00", 100, "Lake", "Wood St", "Customer", "", 0),
		},
	}
}

func TestReporterAll(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Plain: true})
	r.All(chicagoTable(t))

	want := []string{
		"Calculating The Most Frequent Times of Travel...",
		"Most common month: June\n",
		"Most common day of week: Friday\n",
		"Most common start hour: 15\n",
		"Calculating The Most Popular Stations and Trip...",
		"Most common used start station: Wood St\n",
		"Most common used end station: Damen Ave\n",
		"Start Station: Wood St, End Station: Damen Ave\n",
		"Total travel time is: 821 seconds\n",
		"Mean travel time is: 273 seconds\n",
		"Count of Subscriber: 2\nCount of Customer: 1\n",
		"Count of Female: 1\nCount of Male: 1\n",
		"Earliest year of birth: 1985\n",
		"Most recent year of birth: 1992\n",
		"Most common year of birth: 1985\n",
	}
	out := buf.String()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n%s", w, out)
		}
	}
	if got := strings.Count(out, Separator+"\n"); got != 4 {
		t.Errorf("separator count = %d, want 4", got)
	}
	if strings.Contains(out, "This took") {
		t.Error("timings printed while disabled")
	}
}

func TestReporterMissingDemographics(t *testing.T) {
	tbl := chicagoTable(t)
	tbl.HasGender = false
	tbl.HasBirthYear = false

	var buf bytes.Buffer
	New(&buf, Options{Plain: true}).Users(tbl)

	out := buf.String()
	if !strings.Contains(out, "Gender not available in data file\n") {
		t.Errorf("missing gender notice:\n%s", out)
	}
	if !strings.Contains(out, "Birth Year not available in data file\n") {
		t.Errorf("missing birth year notice:\n%s", out)
	}
}

func TestReporterEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Plain: true}).All(&domain.Table{City: domain.Washington})

	if got := strings.Count(buf.String(), noTrips); got != 4 {
		t.Errorf("empty notice count = %d, want 4\n%s", got, buf.String())
	}
}

func TestReporterTimings(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 250 * time.Millisecond)
	}

	var buf bytes.Buffer
	New(&buf, Options{Plain: true, ShowTimings: true, Now: clock}).Durations(chicagoTable(t))

	if !strings.Contains(buf.String(), "\nThis took 0.25 seconds.\n") {
		t.Errorf("timing line missing:\n%s", buf.String())
	}
}
