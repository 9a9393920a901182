package engine

import (
	"errors"
	"fmt"
	"time"

	actions "wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/performance/core/domain"
)

var (
	ErrUnknownGroupBy = errors.New("unknown group_by")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownColumn  = errors.New("unknown sort column")
)

// DefaultPropertyLabel keys the single row of a property-level report.
const DefaultPropertyLabel = "All"

// Options is the per-call report configuration.
type Options struct {
	GroupBy       domain.GroupBy
	Mode          domain.Mode
	SortColumn    domain.Column // empty keeps first-appearance order
	SortAscending bool
	Property      string // row key when GroupBy is property
}

func (o Options) validate() error {
	if !o.GroupBy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGroupBy, o.GroupBy)
	}
	if !o.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, o.Mode)
	}
	if o.SortColumn != "" && !knownColumn(o.SortColumn) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, o.SortColumn)
	}
	return nil
}

func (o Options) keyFunc() KeyFunc {
	switch o.GroupBy {
	case domain.GroupByDepartment:
		return func(e actions.Event) string { return e.CostCenter }
	case domain.GroupByProperty:
		label := o.Property
		if label == "" {
			label = DefaultPropertyLabel
		}
		return func(actions.Event) string { return label }
	default:
		return func(e actions.Event) string { return e.Actor }
	}
}

type accumulator struct {
	requests int
	docs     map[string]struct{}
	weight   float64
	volume   float64
	actions  []domain.LogicalAction
}

func newAccumulator() *accumulator {
	return &accumulator{docs: make(map[string]struct{})}
}

func (a *accumulator) add(e domain.NormalizedEvent) {
	a.requests++
	if e.Document != "" {
		a.docs[e.Document] = struct{}{}
	}
	a.weight += e.WeightKg
	a.volume += e.VolumeL
}

func (a *accumulator) row(key string, elapsed time.Duration, divisor int) domain.AggregateRow {
	d := float64(divisor)
	row := domain.AggregateRow{
		Key:         key,
		Requests:    float64(a.requests) / d,
		Orders:      float64(len(a.docs)) / d,
		Actions:     float64(len(a.actions)) / d,
		WeightKg:    a.weight / d,
		VolumeL:     a.volume / d,
		PickingTime: SummedDuration(a.actions) / time.Duration(divisor),
		ElapsedTime: elapsed / time.Duration(divisor),
	}
	row.TotalWeight = row.WeightKg + row.VolumeL
	withRates(&row)
	return row
}

// withRates derives per-minute throughput from PickingTime. Zero picking
// time yields zero rates.
func withRates(row *domain.AggregateRow) {
	minutes := row.PickingTime.Minutes()
	row.RequestsPerMinute = perMinute(row.Requests, minutes)
	row.WeightPerMinute = perMinute(row.WeightKg, minutes)
	row.VolumePerMinute = perMinute(row.VolumeL, minutes)
	row.TotalWeightPerMinute = perMinute(row.TotalWeight, minutes)
}

func perMinute(v, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return v / minutes
}

// Aggregate groups events by worker, department or property and computes
// throughput metrics per group plus a totals row. events is not modified.
//
// In average mode with more than one day every summed value, durations
// included, is divided by the day count. A single day is always a total.
func Aggregate(events []actions.Event, opts Options) (*domain.Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	days := Dates(events)
	divisor := 1
	if opts.Mode == domain.ModeAverage && len(days) > 1 {
		divisor = len(days)
	}

	key := opts.keyFunc()

	var order []string
	groups := make(map[string]*accumulator)
	total := newAccumulator()

	for _, ne := range NormalizeAll(events) {
		k := key(ne.Event)
		acc, ok := groups[k]
		if !ok {
			acc = newAccumulator()
			groups[k] = acc
			order = append(order, k)
		}
		acc.add(ne)
		total.add(ne)
	}

	logical := Deduplicate(events, key)
	for _, la := range logical {
		groups[la.GroupKey].actions = append(groups[la.GroupKey].actions, la)
	}
	total.actions = logical

	rows := make([]domain.AggregateRow, 0, len(order))
	for _, k := range order {
		acc := groups[k]
		rows = append(rows, acc.row(k, NonOverlappingDuration(acc.actions), divisor))
	}

	if err := SortRows(rows, opts.SortColumn, opts.SortAscending); err != nil {
		return nil, err
	}

	totalElapsed := NonOverlappingDuration(logical)
	totals := total.row("Total", totalElapsed, divisor)

	return &domain.Report{
		GroupBy:      opts.GroupBy,
		Mode:         opts.Mode,
		Days:         days,
		AveragedOver: divisor,
		Rows:         rows,
		Totals:       totals,
		TotalElapsed: totalElapsed / time.Duration(divisor),
	}, nil
}
