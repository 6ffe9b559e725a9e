package stats

import "github.com/bft-labs/bikeshare/internal/domain"

// DurationStats holds trip duration aggregates in seconds.
type DurationStats struct {
	Total float64
	Mean  float64
	// Trips is the number of trips with a recorded duration.
	Trips int
}

// TotalSeconds returns the total duration truncated to whole seconds.
func (s DurationStats) TotalSeconds() int64 { return int64(s.Total) }

// MeanSeconds returns the mean duration truncated to whole seconds.
func (s DurationStats) MeanSeconds() int64 { return int64(s.Mean) }

// Durations sums and averages the trip durations. Missing durations are
// left out of both the total and the mean.
func Durations(tbl *domain.Table) (DurationStats, error) {
	if tbl.Len() == 0 {
		return DurationStats{}, domain.ErrNoTrips
	}
	var out DurationStats
	for _, t := range tbl.Trips {
		if !t.HasDuration {
			continue
		}
		out.Total += t.Duration
		out.Trips++
	}
	if out.Trips > 0 {
		out.Mean = out.Total / float64(out.Trips)
	}
	return out, nil
}
