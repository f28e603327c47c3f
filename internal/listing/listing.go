// Package listing holds the small pure functions behind the directory
// pages: splitting shows into past and upcoming, grouping venues by
// location, and name search.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/iliyamo/stagebook/internal/model"
)

// Dated is anything with a start instant.
type Dated interface {
	StartsAt() time.Time
}

// PartitionShows splits shows at now: past holds shows that start strictly
// before now, upcoming holds the rest. Callers capture now once so every
// show is judged against the same instant. Input order is kept in both
// results.
func PartitionShows[S Dated](shows []S, now time.Time) (past, upcoming []S) {
	past = make([]S, 0, len(shows))
	upcoming = make([]S, 0, len(shows))
	for _, s := range shows {
		if s.StartsAt().Before(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// Area is a run of venues sharing the same state and city.
type Area struct {
	State  string
	City   string
	Venues []*model.Venue
}

// GroupVenuesByLocation orders venues by state, then city, and groups
// consecutive venues with the same (state, city). The order within a group
// is the input order.
func GroupVenuesByLocation(venues []*model.Venue) []Area {
	sorted := slices.Clone(venues)
	// Two stable passes: city first, then state. The result is ordered by
	// state with cities ordered inside each state.
	slices.SortStableFunc(sorted, func(a, b *model.Venue) int { return cmp.Compare(a.City, b.City) })
	slices.SortStableFunc(sorted, func(a, b *model.Venue) int { return cmp.Compare(a.State, b.State) })

	var areas []Area
	for _, v := range sorted {
		if n := len(areas); n > 0 && areas[n-1].State == v.State && areas[n-1].City == v.City {
			areas[n-1].Venues = append(areas[n-1].Venues, v)
			continue
		}
		areas = append(areas, Area{State: v.State, City: v.City, Venues: []*model.Venue{v}})
	}
	return areas
}

// FilterByName keeps the records whose name contains term, ignoring case.
// A blank term keeps everything.
func FilterByName[T any](records []T, term string, name func(T) string) []T {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if needle == "" || strings.Contains(fold.String(name(r)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// CountUpcoming counts, per key, the shows starting at or after now.
func CountUpcoming(shows []model.ShowListing, now time.Time, key func(model.ShowListing) int64) map[int64]int {
	_, upcoming := PartitionShows(shows, now)
	counts := make(map[int64]int, len(upcoming))
	for _, s := range upcoming {
		counts[key(s)]++
	}
	return counts
}
