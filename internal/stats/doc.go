// Package stats computes descriptive statistics over a filtered trip table.
//
// Every function is stateless and reads the table without modifying it.
// Frequencies ignore missing values; when several values share the highest
// frequency the smallest one wins, so results do not depend on file order.
package stats
