package engine

import (
	"time"

	actions "wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/performance/core/domain"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
}

func span(start, end time.Time) domain.LogicalAction {
	return domain.LogicalAction{Start: start, Completion: end}
}

type ev struct {
	actor, center, code, doc string
	qty                      float64
	unit                     string
	start, end               time.Time
}

func build(rows ...ev) []actions.Event {
	out := make([]actions.Event, len(rows))
	for i, r := range rows {
		out[i] = actions.Event{
			Actor:      r.actor,
			CostCenter: r.center,
			ActionCode: r.code,
			Document:   r.doc,
			Quantity:   r.qty,
			Unit:       r.unit,
			Start:      r.start,
			Completion: r.end,
		}
	}
	return out
}
