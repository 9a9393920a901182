package engine

import (
	"fmt"
	"sort"
	"strings"

	"wms-performance-service/internal/performance/core/domain"
)

func knownColumn(c domain.Column) bool {
	for _, k := range domain.Columns {
		if k == c {
			return true
		}
	}
	return false
}

// SortRows orders rows in place by column. The sort is stable, so ties keep
// their current order. Durations compare by their underlying value.
func SortRows(rows []domain.AggregateRow, column domain.Column, ascending bool) error {
	if column == "" {
		return nil
	}
	if !knownColumn(column) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rowLess(rows[i], rows[j], column, ascending)
	})
	return nil
}

func rowLess(a, b domain.AggregateRow, column domain.Column, ascending bool) bool {
	if column == domain.ColumnKey {
		ka, kb := strings.ToLower(a.Key), strings.ToLower(b.Key)
		if ascending {
			return ka < kb
		}
		return ka > kb
	}
	va, vb := columnValue(a, column), columnValue(b, column)
	if ascending {
		return va < vb
	}
	return va > vb
}

func columnValue(r domain.AggregateRow, c domain.Column) float64 {
	switch c {
	case domain.ColumnRequests:
		return r.Requests
	case domain.ColumnOrders:
		return r.Orders
	case domain.ColumnActions:
		return r.Actions
	case domain.ColumnWeightKg:
		return r.WeightKg
	case domain.ColumnVolumeL:
		return r.VolumeL
	case domain.ColumnTotalWeight:
		return r.TotalWeight
	case domain.ColumnPickingTime:
		return r.PickingTime.Seconds()
	case domain.ColumnElapsedTime:
		return r.ElapsedTime.Seconds()
	case domain.ColumnRequestsPerMinute:
		return r.RequestsPerMinute
	case domain.ColumnWeightPerMinute:
		return r.WeightPerMinute
	case domain.ColumnVolumePerMinute:
		return r.VolumePerMinute
	case domain.ColumnTotalWeightPerMinute:
		return r.TotalWeightPerMinute
	}
	return 0
}
