// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [TripSource]: Loads the trip table for a city
//   - [FilterStore]: Persists and loads the last used filter
//   - [Logger]: Structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (CSV files, JSON state file, zerolog).
package ports
