package engine

import (
	actions "wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/performance/core/domain"
)

// KeyFunc picks the grouping key (worker, department, property) of an event.
type KeyFunc func(actions.Event) string

// Deduplicate collapses rows sharing (group key, action code, day) into one
// LogicalAction. The first row in input order supplies start and completion;
// later rows for the same key are ignored, even when their span is wider.
// Output follows first appearance.
func Deduplicate(events []actions.Event, key KeyFunc) []domain.LogicalAction {
	type dedupKey struct {
		group, code, date string
	}

	seen := make(map[dedupKey]struct{}, len(events))
	out := make([]domain.LogicalAction, 0, len(events))

	for _, e := range events {
		k := dedupKey{group: key(e), code: e.ActionCode, date: e.Date()}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		out = append(out, domain.LogicalAction{
			GroupKey:   k.group,
			ActionCode: k.code,
			Date:       k.date,
			Start:      e.Start,
			Completion: e.Completion,
		})
	}

	return out
}
