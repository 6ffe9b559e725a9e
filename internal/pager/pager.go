// Package pager shows the raw rows of a trip table a window at a time.
package pager

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bft-labs/bikeshare/internal/domain"
)

// DefaultPageSize is the number of rows shown per window.
const DefaultPageSize = 5

const (
	startQuestion = "Do you want to see raw data?\n"
	exhausted     = "No more raw data to display."
)

// Confirmer asks yes/no questions.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Pager prints raw trip rows on request.
type Pager struct {
	ask  Confirmer
	out  io.Writer
	size int
}

// New creates a Pager. A non-positive size falls back to DefaultPageSize.
func New(ask Confirmer, out io.Writer, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{ask: ask, out: out, size: size}
}

// Run offers to show raw data and keeps printing windows while the user
// answers yes. It returns when the user declines, the table is exhausted,
// input fails, or ctx is canceled.
func (p *Pager) Run(ctx context.Context, tbl *domain.Table) error {
	ok, err := p.ask.Confirm(ctx, startQuestion)
	if err != nil || !ok {
		return err
	}

	more := fmt.Sprintf("\nWould you like to see %d more lines of raw data? Enter yes or no: ", p.size)
	for offset := 0; ; offset += p.size {
		if offset >= tbl.Len() {
			fmt.Fprintln(p.out, exhausted)
			return nil
		}
		fmt.Fprintln(p.out, Window(tbl, offset, p.size))

		if offset+p.size >= tbl.Len() {
			fmt.Fprintln(p.out, exhausted)
			return nil
		}
		ok, err := p.ask.Confirm(ctx, more)
		if err != nil || !ok {
			return err
		}
	}
}

// Window renders rows [offset, offset+size) of tbl under its header.
func Window(tbl *domain.Table, offset, size int) string {
	end := offset + size
	if end > tbl.Len() {
		end = tbl.Len()
	}
	rows := make([][]string, 0, end-offset)
	for _, trip := range tbl.Trips[offset:end] {
		rows = append(rows, fitRow(trip.Raw, len(tbl.Header)))
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tbl.Header...).
		Rows(rows...).
		Render()
}

// fitRow pads or truncates cells to width.
func fitRow(cells []string, width int) []string {
	row := make([]string, width)
	copy(row, cells)
	return row
}
