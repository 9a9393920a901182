package engine

import (
	"math"
	"strings"

	actions "wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/performance/core/domain"
)

const (
	UnitKilogram = "KILOGRAM"
	UnitLiter    = "LITER"
)

// Normalize converts an event's quantity into kilograms and liters.
// Weight and volume are evaluated independently, so a row whose unit is
// KILOGRAM and whose reporting unit is LITER contributes to both.
// Unknown units and NaN/Inf inputs contribute zero.
func Normalize(e actions.Event) (weightKg, volumeL float64) {
	return convert(e, UnitKilogram), convert(e, UnitLiter)
}

func convert(e actions.Event, target string) float64 {
	var v float64
	switch {
	case strings.EqualFold(strings.TrimSpace(e.Unit), target):
		v = e.Quantity
	case e.ReportingUnit != "" && strings.EqualFold(strings.TrimSpace(e.ReportingUnit), target):
		v = e.Quantity * e.Relationship
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NormalizeAll returns a new slice; events is left untouched.
func NormalizeAll(events []actions.Event) []domain.NormalizedEvent {
	out := make([]domain.NormalizedEvent, len(events))
	for i, e := range events {
		w, v := Normalize(e)
		out[i] = domain.NormalizedEvent{Event: e, WeightKg: w, VolumeL: v}
	}
	return out
}
