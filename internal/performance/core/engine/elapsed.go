package engine

import (
	"sort"
	"time"

	"wms-performance-service/internal/performance/core/domain"
)

// SummedDuration adds up every action span. Concurrent actions each count
// in full. Inverted spans (completion before start) count as zero.
func SummedDuration(actions []domain.LogicalAction) time.Duration {
	var total time.Duration
	for _, a := range actions {
		if d := a.Duration(); d > 0 {
			total += d
		}
	}
	return total
}

// NonOverlappingDuration is the length of the union of all action spans:
// wall-clock time during which at least one action was running.
func NonOverlappingDuration(actions []domain.LogicalAction) time.Duration {
	if len(actions) == 0 {
		return 0
	}

	sorted := make([]domain.LogicalAction, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var total time.Duration
	cumulativeEnd := sorted[0].Start

	for _, a := range sorted {
		effectiveStart := a.Start
		if cumulativeEnd.After(effectiveStart) {
			effectiveStart = cumulativeEnd
		}
		if a.Completion.After(effectiveStart) {
			total += a.Completion.Sub(effectiveStart)
		}
		if a.Completion.After(cumulativeEnd) {
			cumulativeEnd = a.Completion
		}
	}

	return total
}
