package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	actions "wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/performance/core/domain"
)

var (
	ErrNoCommonDates  = errors.New("no common dates")
	ErrTooFewEntities = errors.New("at least two entities are required")
)

const (
	PairFirstLabel  = "Property 1"
	PairSecondLabel = "Property 2"
)

// Entity is one property's event set.
type Entity struct {
	ID     string
	Label  string
	Events []actions.Event
}

// ComparePair compares two properties, relabelled "Property 1" and
// "Property 2", in that order.
func ComparePair(first, second Entity, dates []string, opts Options) ([]domain.ComparisonRow, error) {
	first.Label = PairFirstLabel
	second.Label = PairSecondLabel
	return compare([]Entity{first, second}, dates, opts.Mode)
}

// CompareAll compares any number of properties and orders the result by
// opts.SortColumn. Ties keep input order.
func CompareAll(entities []Entity, dates []string, opts Options) ([]domain.ComparisonRow, error) {
	if opts.SortColumn != "" && !knownColumn(opts.SortColumn) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, opts.SortColumn)
	}

	rows, err := compare(entities, dates, opts.Mode)
	if err != nil {
		return nil, err
	}

	if opts.SortColumn != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			return rowLess(rows[i].Summary, rows[j].Summary, opts.SortColumn, opts.SortAscending)
		})
	}

	return rows, nil
}

// compare aggregates each entity at property level over the shared days and
// attaches peer-relative percentages. Output follows input order.
func compare(entities []Entity, dates []string, mode domain.Mode) ([]domain.ComparisonRow, error) {
	if len(entities) < 2 {
		return nil, ErrTooFewEntities
	}
	if mode == "" {
		mode = domain.ModeTotal
	}

	days, err := commonDates(entities, dates)
	if err != nil {
		return nil, err
	}

	filter := Filter{Dates: days}
	rows := make([]domain.ComparisonRow, 0, len(entities))

	for _, ent := range entities {
		events := FilterEvents(ent.Events, filter)

		report, err := Aggregate(events, Options{
			GroupBy:  domain.GroupByProperty,
			Mode:     mode,
			Property: ent.Label,
		})
		if err != nil {
			return nil, err
		}

		// property-level picking time is wall clock, overlaps merged
		summary := report.Totals
		summary.Key = ent.Label
		summary.PickingTime = summary.ElapsedTime
		withRates(&summary)

		rows = append(rows, domain.ComparisonRow{
			ID:      ent.ID,
			Label:   ent.Label,
			Days:    report.Days,
			Summary: summary,
		})
	}

	for _, metric := range domain.ComparisonMetrics {
		peak := 1.0
		for _, r := range rows {
			peak = math.Max(peak, columnValue(r.Summary, metric))
		}
		for i := range rows {
			if rows[i].Percent == nil {
				rows[i].Percent = make(map[domain.Column]float64, len(domain.ComparisonMetrics))
			}
			rows[i].Percent[metric] = columnValue(rows[i].Summary, metric) / peak * 100
		}
	}

	return rows, nil
}

// commonDates resolves the days every entity is compared over. Requested days
// are used as given, unless no entity has activity on any of them. Without a
// request, the days present in every entity are used.
func commonDates(entities []Entity, requested []string) ([]string, error) {
	if len(requested) > 0 {
		want := toSet(requested)
		for _, ent := range entities {
			for _, e := range ent.Events {
				if _, ok := want[e.Date()]; ok {
					days := append([]string(nil), requested...)
					sort.Strings(days)
					return days, nil
				}
			}
		}
		return nil, ErrNoCommonDates
	}

	counts := make(map[string]int)
	for _, ent := range entities {
		for _, d := range Dates(ent.Events) {
			counts[d]++
		}
	}

	var days []string
	for d, n := range counts {
		if n == len(entities) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, ErrNoCommonDates
	}
	sort.Strings(days)
	return days, nil
}
