package stats

import "github.com/bft-labs/bikeshare/internal/domain"

// BirthYears summarises the birth year column.
type BirthYears struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats holds user demographics.
type UserStats struct {
	UserTypes []Count[string]

	// Genders is nil when the data file has no Gender column.
	Genders []Count[string]

	// BirthYears is nil when the data file has no Birth Year column or the
	// column holds no values for the filtered trips.
	BirthYears *BirthYears
}

// Users counts user types and genders and summarises birth years.
func Users(tbl *domain.Table) (UserStats, error) {
	if tbl.Len() == 0 {
		return UserStats{}, domain.ErrNoTrips
	}
	types := newOrderedCounter[string]()
	genders := newOrderedCounter[string]()
	years := newOrderedCounter[int]()
	var earliest, latest int

	for _, t := range tbl.Trips {
		if t.UserType != "" {
			types.add(t.UserType)
		}
		if tbl.HasGender && t.Gender != "" {
			genders.add(t.Gender)
		}
		if tbl.HasBirthYear && t.HasBirthYear {
			if years.len() == 0 || t.BirthYear < earliest {
				earliest = t.BirthYear
			}
			if years.len() == 0 || t.BirthYear > latest {
				latest = t.BirthYear
			}
			years.add(t.BirthYear)
		}
	}

	out := UserStats{UserTypes: types.ranked()}
	if tbl.HasGender {
		out.Genders = genders.ranked()
	}
	if common, ok := years.mode(); ok {
		out.BirthYears = &BirthYears{Earliest: earliest, MostRecent: latest, MostCommon: common.Value}
	}
	return out, nil
}
