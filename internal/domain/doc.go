// Package domain contains the core entities and value objects for bikeshare.
//
// This package has no dependencies on infrastructure concerns (CSV parsing,
// terminal I/O, logging) and contains only the allow-lists, filter rules and
// trip records that the rest of the program shares.
//
// # Entities
//
//   - [City]: one of the three supported cities and its default data file
//   - [Filter]: a validated city/month/day triple
//   - [Trip]: a single trip record with derived month and weekday
//   - [Table]: the trips loaded for one city plus column availability
package domain
