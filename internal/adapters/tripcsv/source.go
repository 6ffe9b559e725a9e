package tripcsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/bikeshare/internal/domain"
)

// Timestamp layouts accepted for the Start Time and End Time columns.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// Source implements ports.TripSource over per-city CSV files in a directory.
type Source struct {
	dir   string
	files map[domain.City]string
}

// NewSource creates a Source reading from dir. files overrides the default
// file name for individual cities; it may be nil.
func NewSource(dir string, files map[domain.City]string) *Source {
	return &Source{dir: dir, files: files}
}

// Path returns the CSV path for the city.
func (s *Source) Path(city domain.City) string {
	name := city.DataFile()
	if override, ok := s.files[city]; ok && override != "" {
		name = override
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Load reads the city's CSV file.
func (s *Source) Load(ctx context.Context, city domain.City) (*domain.Table, error) {
	if !city.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCity, city)
	}
	path := s.Path(city)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s data: %w", city, err)
	}
	defer f.Close()

	tbl, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tbl.City = city
	return tbl, nil
}

// columns holds the header positions of the known columns, -1 when absent.
type columns struct {
	startTime, endTime, duration, startStation, endStation, userType, gender, birthYear int
}

func indexColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	for _, name := range domain.RequiredColumns {
		if _, ok := pos[name]; !ok {
			return columns{}, fmt.Errorf("%w: %q", domain.ErrMissingColumn, name)
		}
	}
	get := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}
	return columns{
		startTime:    get(domain.ColStartTime),
		endTime:      get(domain.ColEndTime),
		duration:     get(domain.ColTripDuration),
		startStation: get(domain.ColStartStation),
		endStation:   get(domain.ColEndStation),
		userType:     get(domain.ColUserType),
		gender:       get(domain.ColGender),
		birthYear:    get(domain.ColBirthYear),
	}, nil
}

// Parse reads a trip table from CSV. The first record is the header.
func Parse(ctx context.Context, r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", domain.ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	// Strip a UTF-8 BOM from the first header cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	tbl := &domain.Table{
		Header:       header,
		HasGender:    cols.gender >= 0,
		HasBirthYear: cols.birthYear >= 0,
	}

	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedRow, line, err)
		}
		trip, err := parseTrip(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedRow, line, err)
		}
		tbl.Trips = append(tbl.Trips, trip)
	}
	return tbl, nil
}

func parseTrip(row []string, cols columns) (domain.Trip, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	start, err := parseTime(cell(cols.startTime))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%s: %w", domain.ColStartTime, err)
	}
	trip := domain.NewTrip(start)
	trip.Raw = row

	if v := cell(cols.endTime); v != "" {
		end, err := parseTime(v)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("%s: %w", domain.ColEndTime, err)
		}
		trip.EndTime = end
	}

	if v := cell(cols.duration); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("%s: %w", domain.ColTripDuration, err)
		}
		trip.Duration = d
		trip.HasDuration = true
	}

	trip.StartStation = cell(cols.startStation)
	trip.EndStation = cell(cols.endStation)
	trip.UserType = cell(cols.userType)
	trip.Gender = cell(cols.gender)

	// Birth years are stored as floats ("1992.0") because the column has gaps.
	if v := cell(cols.birthYear); v != "" {
		y, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("%s: %w", domain.ColBirthYear, err)
		}
		trip.BirthYear = int(y)
		trip.HasBirthYear = true
	}
	return trip, nil
}

func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
