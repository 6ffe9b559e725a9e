package ports

import (
	"context"

	"github.com/bft-labs/bikeshare/internal/domain"
)

// TripSource loads trip data for a city.
type TripSource interface {
	// Load reads every trip recorded for the city, in file order.
	Load(ctx context.Context, city domain.City) (*domain.Table, error)

	// Path returns the location the city's data is read from.
	Path(city domain.City) string
}
