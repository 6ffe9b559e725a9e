package stats

import "github.com/bft-labs/bikeshare/internal/domain"

// Route is a start and end station pair.
type Route struct {
	Start string
	End   string
}

func routeLess(a, b Route) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.End < b.End
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	StartStation Count[string]
	EndStation   Count[string]
	Route        Count[Route]
}

// Stations computes the most common start station, end station and
// start/end combination. Trips with an empty station are ignored for the
// corresponding statistic.
func Stations(tbl *domain.Table) (StationStats, error) {
	if tbl.Len() == 0 {
		return StationStats{}, domain.ErrNoTrips
	}
	starts := newOrderedCounter[string]()
	ends := newOrderedCounter[string]()
	routes := newCounter(routeLess)

	for _, t := range tbl.Trips {
		if t.StartStation != "" {
			starts.add(t.StartStation)
		}
		if t.EndStation != "" {
			ends.add(t.EndStation)
		}
		if t.StartStation != "" && t.EndStation != "" {
			routes.add(Route{Start: t.StartStation, End: t.EndStation})
		}
	}

	var out StationStats
	out.StartStation, _ = starts.mode()
	out.EndStation, _ = ends.mode()
	out.Route, _ = routes.mode()
	return out, nil
}
