package domain

import (
	"time"

	actions "wms-performance-service/internal/actions/core/domain"
)

type GroupBy string

const (
	GroupByWorker     GroupBy = "worker"
	GroupByDepartment GroupBy = "department"
	GroupByProperty   GroupBy = "property"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupByWorker, GroupByDepartment, GroupByProperty:
		return true
	}
	return false
}

type Mode string

const (
	ModeSingleDay Mode = "single_day"
	ModeTotal     Mode = "total"
	ModeAverage   Mode = "average"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeSingleDay, ModeTotal, ModeAverage:
		return true
	}
	return false
}

// Column names a sortable AggregateRow field.
type Column string

const (
	ColumnKey                  Column = "key"
	ColumnRequests             Column = "requests"
	ColumnOrders               Column = "orders"
	ColumnActions              Column = "actions"
	ColumnWeightKg             Column = "weight_kg"
	ColumnVolumeL              Column = "volume_l"
	ColumnTotalWeight          Column = "total_weight"
	ColumnPickingTime          Column = "picking_time"
	ColumnElapsedTime          Column = "elapsed_time"
	ColumnRequestsPerMinute    Column = "requests_per_minute"
	ColumnWeightPerMinute      Column = "weight_per_minute"
	ColumnVolumePerMinute      Column = "volume_per_minute"
	ColumnTotalWeightPerMinute Column = "total_weight_per_minute"
)

var Columns = []Column{
	ColumnKey,
	ColumnRequests,
	ColumnOrders,
	ColumnActions,
	ColumnWeightKg,
	ColumnVolumeL,
	ColumnTotalWeight,
	ColumnPickingTime,
	ColumnElapsedTime,
	ColumnRequestsPerMinute,
	ColumnWeightPerMinute,
	ColumnVolumePerMinute,
	ColumnTotalWeightPerMinute,
}

// ComparisonMetrics are the columns that carry a peer percentage.
var ComparisonMetrics = []Column{
	ColumnRequests,
	ColumnOrders,
	ColumnWeightKg,
	ColumnVolumeL,
	ColumnTotalWeight,
	ColumnPickingTime,
}

type NormalizedEvent struct {
	actions.Event
	WeightKg float64
	VolumeL  float64
}

// LogicalAction is one deduplicated (group, action code, day) action.
type LogicalAction struct {
	GroupKey   string
	ActionCode string
	Date       string
	Start      time.Time
	Completion time.Time
}

func (a LogicalAction) Duration() time.Duration {
	return a.Completion.Sub(a.Start)
}

// AggregateRow holds the metrics of one grouping key. Counts are float64
// because average mode divides them by the day count.
type AggregateRow struct {
	Key string

	Requests    float64 // raw rows
	Orders      float64 // distinct documents
	Actions     float64 // logical actions
	WeightKg    float64
	VolumeL     float64
	TotalWeight float64

	PickingTime time.Duration // summed, overlaps double count
	ElapsedTime time.Duration // wall clock, overlaps merged

	RequestsPerMinute    float64
	WeightPerMinute      float64
	VolumePerMinute      float64
	TotalWeightPerMinute float64
}

type Report struct {
	Property     string
	GroupBy      GroupBy
	Mode         Mode
	Days         []string
	AveragedOver int // 1 unless average mode over several days
	Rows         []AggregateRow
	Totals       AggregateRow
	TotalElapsed time.Duration
}

// ComparisonRow is one property's summary next to its peers. Summary.PickingTime
// is wall-clock time (overlaps merged) at this level.
type ComparisonRow struct {
	ID      string
	Label   string
	Days    []string
	Summary AggregateRow
	Percent map[Column]float64
}
