package stats

import "github.com/bikeshare-data/pkg/bikeshare/models"

// Route is an ordered (start, end) station pair.
type Route struct {
	Start string
	End   string
}

func (r Route) less(o Route) bool {
	if r.Start != o.Start {
		return r.Start < o.Start
	}
	return r.End < o.End
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	StartStation string
	EndStation   string
	Trip         Route
	TripCount    int
}

// ComputeStations finds the modal start and end stations (first seen wins
// ties) and the most common route. Route ties go to the lexicographically
// smallest (start, end) pair so the answer does not depend on row order.
// Rows missing either station are ignored.
func ComputeStations(ds *models.Dataset) StationStats {
	starts := newCounter[string]()
	ends := newCounter[string]()
	routes := newCounter[Route]()
	for _, t := range ds.Trips {
		if t.StartStation != "" {
			starts.Add(t.StartStation)
		}
		if t.EndStation != "" {
			ends.Add(t.EndStation)
		}
		if t.StartStation != "" && t.EndStation != "" {
			routes.Add(Route{Start: t.StartStation, End: t.EndStation})
		}
	}

	var s StationStats
	s.StartStation, _, _ = starts.Mode()
	s.EndStation, _, _ = ends.Mode()

	for _, c := range routes.Descending() {
		if c.N < s.TripCount {
			break
		}
		if c.N > s.TripCount || c.Value.less(s.Trip) {
			s.Trip, s.TripCount = c.Value, c.N
		}
	}
	return s
}
