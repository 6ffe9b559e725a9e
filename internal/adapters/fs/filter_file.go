package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bft-labs/bikeshare/internal/domain"
)

const filterFileName = "last_filter.json"

// savedFilter is the on-disk form of the last used filter.
type savedFilter struct {
	domain.Filter
	SavedAt time.Time `json:"saved_at"`
}

// FilterFileRepository implements ports.FilterStore using a JSON file.
type FilterFileRepository struct {
	dir string
	now func() time.Time
}

// NewFilterFileRepository creates a FilterFileRepository for the given directory.
func NewFilterFileRepository(dir string) *FilterFileRepository {
	return &FilterFileRepository{dir: dir, now: time.Now}
}

// Load retrieves the last saved filter from disk.
// Returns domain.ErrNoHistory if no filter file exists.
func (r *FilterFileRepository) Load(ctx context.Context) (domain.Filter, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Filter{}, domain.ErrNoHistory
		}
		return domain.Filter{}, err
	}

	var saved savedFilter
	if err := json.Unmarshal(data, &saved); err != nil {
		return domain.Filter{}, fmt.Errorf("decode %s: %w", r.Path(), err)
	}

	// Saved values are validated the same way as prompt input.
	return domain.NewFilter(string(saved.City), saved.Month, saved.Day)
}

// Save persists the filter atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *FilterFileRepository) Save(ctx context.Context, f domain.Filter) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(savedFilter{Filter: f, SavedAt: r.now().UTC()}, "", "  ")
	if err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Path returns the full path to the filter file.
func (r *FilterFileRepository) Path() string {
	return filepath.Join(r.dir, filterFileName)
}
