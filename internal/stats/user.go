package stats

import "github.com/bikeshare-data/pkg/bikeshare/models"

// BirthYearStats holds the earliest, latest and most common birth year.
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats holds user demographics. Genders and BirthYears are nil when the
// dataset has no such column or every value is missing.
type UserStats struct {
	UserTypes  []Count[string]
	Genders    []Count[string]
	BirthYears *BirthYearStats
}

func ComputeUsers(ds *models.Dataset) UserStats {
	types := newCounter[string]()
	genders := newCounter[string]()
	years := newCounter[int]()
	var by BirthYearStats

	for _, t := range ds.Trips {
		if t.UserType != "" {
			types.Add(t.UserType)
		}
		if ds.HasGender && t.Gender != "" {
			genders.Add(t.Gender)
		}
		if ds.HasBirthYear && t.BirthYear > 0 {
			if years.Len() == 0 || t.BirthYear < by.Earliest {
				by.Earliest = t.BirthYear
			}
			if t.BirthYear > by.MostRecent {
				by.MostRecent = t.BirthYear
			}
			years.Add(t.BirthYear)
		}
	}

	s := UserStats{UserTypes: types.Descending()}
	if genders.Len() > 0 {
		s.Genders = genders.Descending()
	}
	if mode, _, ok := years.Mode(); ok {
		by.MostCommon = mode
		s.BirthYears = &by
	}
	return s
}
