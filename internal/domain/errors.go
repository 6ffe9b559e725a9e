package domain

import "errors"

// Domain errors represent error conditions in the bikeshare domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidCity is returned when a city is not one of the supported cities.
	ErrInvalidCity = errors.New("bikeshare: invalid city")

	// ErrInvalidMonth is returned when a month is outside the month allow-list.
	ErrInvalidMonth = errors.New("bikeshare: invalid month")

	// ErrInvalidDay is returned when a day is outside the weekday allow-list.
	ErrInvalidDay = errors.New("bikeshare: invalid day")

	// ErrMissingColumn is returned when a data file lacks a required column.
	ErrMissingColumn = errors.New("bikeshare: missing required column")

	// ErrMalformedRow is returned when a data row cannot be parsed.
	ErrMalformedRow = errors.New("bikeshare: malformed row")

	// ErrNoTrips is returned when statistics are requested over an empty table.
	ErrNoTrips = errors.New("bikeshare: no trips match the filter")

	// ErrNoHistory is returned when no previously used filter has been saved.
	ErrNoHistory = errors.New("bikeshare: no saved filter")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("bikeshare: invalid configuration")
)
