// Package overview derives the Activity Overview from a fetched collection:
// text search, type filter and grouping, plus an incremental feed that loads
// the collection page by page.
package overview

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/pkordes/trip-planner/internal/domain"
)

// AllTypes is the type filter value that passes every activity.
const AllTypes = "all"

// GroupBy selects how the filtered activities are bucketed.
type GroupBy string

const (
	GroupNone     GroupBy = "none"
	GroupDate     GroupBy = "date"
	GroupLocation GroupBy = "location"
)

// AllActivities labels the single bucket produced by GroupNone.
const AllActivities = "All Activities"

// Options are the user's view settings. Zero values mean no search, every
// type and no grouping.
type Options struct {
	Search string
	Type   string
	Group  GroupBy
}

// Group is one labelled bucket of activities.
type Group struct {
	Key   string
	Items []domain.Activity
}

// Result is the derived view. Empty is true when no activity survived the
// search and type filter.
type Result struct {
	Groups []Group
	Empty  bool
}

// Apply runs search, type filter and grouping over items, in that order.
// Items keep the relative order they arrived in; the input is not modified.
func Apply(items []domain.Activity, opts Options) Result {
	filtered := Filter(items, opts.Search, opts.Type)
	return Result{
		Groups: GroupItems(filtered, opts.Group),
		Empty:  len(filtered) == 0,
	}
}

// Filter keeps the activities whose title or location contains search,
// ignoring case, and whose type equals typ. Spaces in search are matched
// literally. An empty search or a typ of "" or AllTypes does not filter.
func Filter(items []domain.Activity, search, typ string) []domain.Activity {
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]domain.Activity, 0, len(items))
	for _, a := range items {
		if needle != "" &&
			!strings.Contains(fold.String(a.Title), needle) &&
			!strings.Contains(fold.String(a.Location), needle) {
			continue
		}
		if typ != "" && typ != AllTypes && a.Type != typ {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GroupItems buckets items by g. Buckets appear in the order their first
// member appears; an unknown mode behaves like GroupNone. Nothing in,
// nothing out: an empty input yields no buckets.
func GroupItems(items []domain.Activity, g GroupBy) []Group {
	if len(items) == 0 {
		return []Group{}
	}

	var key func(domain.Activity) string
	switch g {
	case GroupDate:
		key = func(a domain.Activity) string {
			if a.Date.IsZero() {
				return ""
			}
			return a.Date.Format("2006-01-02")
		}
	case GroupLocation:
		key = func(a domain.Activity) string { return a.Location }
	default:
		return []Group{{Key: AllActivities, Items: append([]domain.Activity{}, items...)}}
	}

	var groups []Group
	index := map[string]int{}
	for _, a := range items {
		k := key(a)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Items = append(groups[i].Items, a)
	}
	return groups
}

// Types returns AllTypes followed by the distinct non-empty activity types in
// first-seen order.
func Types(items []domain.Activity) []string {
	types := []string{AllTypes}
	seen := map[string]bool{}
	for _, a := range items {
		if a.Type == "" || seen[a.Type] {
			continue
		}
		seen[a.Type] = true
		types = append(types, a.Type)
	}
	return types
}
