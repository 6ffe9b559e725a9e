// Package app wires the trip source, reporters and prompts into the
// bikeshare commands.
package app

import (
	"context"
	"io"
	"time"

	"github.com/bft-labs/bikeshare/internal/domain"
	"github.com/bft-labs/bikeshare/internal/ports"
	"github.com/bft-labs/bikeshare/internal/report"
)

// LoadFiltered loads the filter's city and applies its month and day predicates.
func LoadFiltered(ctx context.Context, src ports.TripSource, f domain.Filter) (*domain.Table, error) {
	tbl, err := src.Load(ctx, f.City)
	if err != nil {
		return nil, err
	}
	return tbl.Filter(f), nil
}

// Reporter prints every statistics section for one filter without prompting.
type Reporter struct {
	source ports.TripSource
	logger ports.Logger
	out    io.Writer
	opts   report.Options
}

// NewReporter creates a Reporter.
func NewReporter(source ports.TripSource, logger ports.Logger, out io.Writer, opts report.Options) *Reporter {
	return &Reporter{source: source, logger: logger, out: out, opts: opts}
}

// Run loads the filtered table and prints the four statistics sections.
func (r *Reporter) Run(ctx context.Context, f domain.Filter) error {
	start := time.Now()
	tbl, err := LoadFiltered(ctx, r.source, f)
	if err != nil {
		return err
	}
	r.logger.Info("loaded trips",
		ports.Any("filter", f),
		ports.Int("trips", tbl.Len()),
		ports.Duration("took", time.Since(start)),
	)
	report.New(r.out, r.opts).All(tbl)
	return nil
}
