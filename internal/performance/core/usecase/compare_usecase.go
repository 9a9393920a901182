package usecase

import (
	"context"
	"errors"
	"strings"

	"wms-performance-service/internal/performance/core/domain"
	"wms-performance-service/internal/performance/core/engine"
	"wms-performance-service/internal/performance/core/ports"
)

var (
	ErrInvalidCompareQuery = errors.New("at least two distinct datasets are required")
	ErrNoCommonDates       = engine.ErrNoCommonDates
)

type CompareInput struct {
	DatasetIDs []string
	Dates      []string // optional; defaults to the days every dataset covers

	Mode          string
	SortColumn    string // all-entities flow only
	SortAscending bool
}

type CompareResult struct {
	Pairwise bool
	Rows     []domain.ComparisonRow
}

type CompareUseCase struct {
	reader ports.DatasetReaderPort
}

func NewCompareUseCase(reader ports.DatasetReaderPort) *CompareUseCase {
	return &CompareUseCase{reader: reader}
}

// Execute compares two datasets pairwise ("Property 1" / "Property 2") or
// any larger set as a sortable list.
func (uc *CompareUseCase) Execute(ctx context.Context, in CompareInput) (*CompareResult, error) {
	ids := distinctIDs(in.DatasetIDs)
	if len(ids) < 2 {
		return nil, ErrInvalidCompareQuery
	}

	opts, err := buildOptions(in.Mode, in.SortColumn, in.SortAscending)
	if err != nil {
		return nil, err
	}
	if err := validateDates(in.Dates); err != nil {
		return nil, err
	}

	entities := make([]engine.Entity, 0, len(ids))
	for _, id := range ids {
		ds, err := uc.reader.ReadDataset(ctx, id, in.Dates)
		if err != nil {
			return nil, err
		}
		entities = append(entities, engine.Entity{ID: ds.ID, Label: ds.Label, Events: ds.Events})
	}

	if len(entities) == 2 {
		rows, err := engine.ComparePair(entities[0], entities[1], in.Dates, opts)
		if err != nil {
			return nil, err
		}
		return &CompareResult{Pairwise: true, Rows: rows}, nil
	}

	rows, err := engine.CompareAll(entities, in.Dates, opts)
	if err != nil {
		return nil, err
	}
	return &CompareResult{Rows: rows}, nil
}

func distinctIDs(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, id := range in {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
