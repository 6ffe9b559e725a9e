package domain

import (
	"fmt"
	"strings"
)

// City identifies one of the supported bikeshare systems.
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists the supported cities in prompt order.
var Cities = []City{Chicago, NewYorkCity, Washington}

var cityFiles = map[City]string{
	Chicago:     "chicago.csv",
	NewYorkCity: "new_york_city.csv",
	Washington:  "washington.csv",
}

// DataFile returns the default CSV file name for the city.
func (c City) DataFile() string { return cityFiles[c] }

// Valid reports whether c is a supported city.
func (c City) Valid() bool {
	_, ok := cityFiles[c]
	return ok
}

func (c City) String() string { return string(c) }

// Title returns the city name with each word capitalised.
func (c City) Title() string { return TitleCase(string(c)) }

// ParseCity normalises s and returns the matching City.
func ParseCity(s string) (City, error) {
	c := City(Normalize(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCity, s)
	}
	return c, nil
}

// CityNames returns the supported city names joined for display.
func CityNames() string {
	names := make([]string, len(Cities))
	for i, c := range Cities {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Normalize trims surrounding whitespace and lowercases user input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TitleCase upper-cases the first letter of every space separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
