package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/bikeshare/internal/pager"
	"github.com/bft-labs/bikeshare/internal/ports"
	"github.com/bft-labs/bikeshare/internal/prompt"
	"github.com/bft-labs/bikeshare/internal/report"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// SessionConfig contains configuration for the interactive session.
type SessionConfig struct {
	PageSize int
	Report   report.Options
}

// Session drives the interactive explore loop: collect filters, load,
// report, page, and offer to restart.
type Session struct {
	config   SessionConfig
	source   ports.TripSource
	store    ports.FilterStore
	logger   ports.Logger
	prompter *prompt.Prompter
	out      io.Writer
	newID    func() string
}

// NewSession creates a session reading answers from in and printing to out.
// store may be nil to disable filter history.
func NewSession(
	config SessionConfig,
	source ports.TripSource,
	store ports.FilterStore,
	logger ports.Logger,
	in io.Reader,
	out io.Writer,
) *Session {
	return &Session{
		config:   config,
		source:   source,
		store:    store,
		logger:   logger,
		prompter: prompt.New(in, out),
		out:      out,
		newID:    uuid.NewString,
	}
}

// Run repeats cycles until the user declines to restart, input ends, or
// the context is canceled.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Cycle(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("input closed, ending session")
				return nil
			}
			return err
		}
		if !s.prompter.AskRestart(ctx, restartQuestion) {
			return ctx.Err()
		}
	}
}

// Cycle runs one collect, load, report and page pass.
// A load failure is printed and does not end the session.
func (s *Session) Cycle(ctx context.Context) error {
	f, err := s.prompter.Filters(ctx)
	if err != nil {
		return err
	}

	id := s.newID()
	start := time.Now()
	tbl, err := LoadFiltered(ctx, s.source, f)
	if err != nil {
		s.logger.Error("load failed",
			ports.String("session", id),
			ports.String("path", s.source.Path(f.City)),
			ports.Err(err),
		)
		fmt.Fprintf(s.out, "Could not load data for %s: %v\n", f.City.Title(), err)
		return nil
	}
	s.logger.Info("loaded trips",
		ports.String("session", id),
		ports.Any("filter", f),
		ports.Int("trips", tbl.Len()),
		ports.Duration("took", time.Since(start)),
	)

	if s.store != nil {
		if err := s.store.Save(ctx, f); err != nil {
			s.logger.Warn("failed to save filter", ports.String("session", id), ports.Err(err))
		}
	}

	report.New(s.out, s.config.Report).All(tbl)

	return pager.New(s.prompter, s.out, s.config.PageSize).Run(ctx, tbl)
}
