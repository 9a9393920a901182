package engine

import (
	"sort"

	actions "wms-performance-service/internal/actions/core/domain"
)

// Filter narrows an event set. Empty fields match everything.
type Filter struct {
	Dates       []string
	Actors      []string
	CostCenters []string
}

func FilterEvents(events []actions.Event, f Filter) []actions.Event {
	dates := toSet(f.Dates)
	actors := toSet(f.Actors)
	centers := toSet(f.CostCenters)

	out := make([]actions.Event, 0, len(events))
	for _, e := range events {
		if !matches(dates, e.Date()) || !matches(actors, e.Actor) || !matches(centers, e.CostCenter) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Dates lists the distinct calendar days of events, ascending.
func Dates(events []actions.Event) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range events {
		d := e.Date()
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func matches(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
