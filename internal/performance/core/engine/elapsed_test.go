package engine

import (
	"testing"
	"time"

	"wms-performance-service/internal/performance/core/domain"
)

func TestDurations_NonOverlappingEqualsSum(t *testing.T) {
	actions := []domain.LogicalAction{
		span(at(4, 9, 0), at(4, 9, 10)),
		span(at(4, 9, 30), at(4, 9, 45)),
		span(at(4, 11, 0), at(4, 11, 1)),
	}

	sum := SummedDuration(actions)
	union := NonOverlappingDuration(actions)
	if sum != 26*time.Minute || union != sum {
		t.Fatalf("expected both 26m, got summed=%s union=%s", sum, union)
	}
}

func TestDurations_IdenticalIntervals(t *testing.T) {
	actions := []domain.LogicalAction{
		span(at(4, 9, 0), at(4, 9, 10)),
		span(at(4, 9, 0), at(4, 9, 10)),
	}

	if got := NonOverlappingDuration(actions); got != 10*time.Minute {
		t.Fatalf("expected union 10m, got %s", got)
	}
	if got := SummedDuration(actions); got != 20*time.Minute {
		t.Fatalf("expected summed 20m, got %s", got)
	}
}

func TestNonOverlappingDuration_PartialAndNested(t *testing.T) {
	actions := []domain.LogicalAction{
		span(at(4, 9, 0), at(4, 9, 30)),
		span(at(4, 9, 10), at(4, 9, 20)), // nested
		span(at(4, 9, 25), at(4, 9, 40)), // partial
		span(at(4, 10, 0), at(4, 10, 5)), // gap before
	}

	if got := NonOverlappingDuration(actions); got != 45*time.Minute {
		t.Fatalf("expected 45m, got %s", got)
	}
}

func TestNonOverlappingDuration_PermutationInvariant(t *testing.T) {
	base := []domain.LogicalAction{
		span(at(4, 9, 0), at(4, 9, 30)),
		span(at(4, 9, 10), at(4, 9, 20)),
		span(at(4, 9, 25), at(4, 9, 40)),
		span(at(4, 9, 25), at(4, 9, 26)),
		span(at(4, 10, 0), at(4, 10, 5)),
		span(at(4, 10, 3), at(4, 10, 1)), // inverted
	}
	want := NonOverlappingDuration(base)

	// every rotation and its reverse
	for r := 0; r < len(base); r++ {
		perm := append(append([]domain.LogicalAction{}, base[r:]...), base[:r]...)
		if got := NonOverlappingDuration(perm); got != want {
			t.Fatalf("rotation %d: got %s, want %s", r, got, want)
		}
		for i, j := 0, len(perm)-1; i < j; i, j = i+1, j-1 {
			perm[i], perm[j] = perm[j], perm[i]
		}
		if got := NonOverlappingDuration(perm); got != want {
			t.Fatalf("reversed rotation %d: got %s, want %s", r, got, want)
		}
	}
}

func TestDurations_InvertedIntervalNeverNegative(t *testing.T) {
	actions := []domain.LogicalAction{
		span(at(4, 9, 10), at(4, 9, 0)),
	}
	if got := NonOverlappingDuration(actions); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
	if got := SummedDuration(actions); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}

	mixed := append(actions, span(at(4, 9, 0), at(4, 9, 5)))
	if got := NonOverlappingDuration(mixed); got != 5*time.Minute {
		t.Fatalf("expected 5m, got %s", got)
	}
}

func TestDurations_Empty(t *testing.T) {
	if NonOverlappingDuration(nil) != 0 || SummedDuration(nil) != 0 {
		t.Fatalf("expected zero durations for empty input")
	}
}

func TestNonOverlappingDuration_DoesNotReorderInput(t *testing.T) {
	actions := []domain.LogicalAction{
		span(at(4, 10, 0), at(4, 10, 5)),
		span(at(4, 9, 0), at(4, 9, 5)),
	}
	NonOverlappingDuration(actions)
	if !actions[0].Start.Equal(at(4, 10, 0)) {
		t.Fatalf("input slice was reordered")
	}
}
