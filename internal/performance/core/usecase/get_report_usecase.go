package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	actions "wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/performance/core/domain"
	"wms-performance-service/internal/performance/core/engine"
	"wms-performance-service/internal/performance/core/ports"
)

var (
	ErrInvalidReportQuery = errors.New("invalid report query")
	ErrInvalidGroupBy     = errors.New("invalid group_by value")
	ErrInvalidMode        = errors.New("invalid mode value")
	ErrInvalidSortColumn  = errors.New("invalid sort column")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
)

type GetReportInput struct {
	DatasetID   string
	Dates       []string // optional
	Actors      []string // optional
	CostCenters []string // optional

	GroupBy       string // "worker" (default) / "department" / "property"
	Mode          string // "total" (default) / "single_day" / "average"
	SortColumn    string
	SortAscending bool
}

type GetReportUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetReportUseCase(reader ports.DatasetReaderPort) *GetReportUseCase {
	return &GetReportUseCase{reader: reader}
}

// Execute validates the query, loads the dataset and aggregates it.
func (uc *GetReportUseCase) Execute(ctx context.Context, in GetReportInput) (*domain.Report, error) {
	if strings.TrimSpace(in.DatasetID) == "" {
		return nil, ErrInvalidReportQuery
	}

	groupBy := domain.GroupBy(in.GroupBy)
	if groupBy == "" {
		groupBy = domain.GroupByWorker
	}
	if !groupBy.Valid() {
		return nil, ErrInvalidGroupBy
	}

	opts, err := buildOptions(in.Mode, in.SortColumn, in.SortAscending)
	if err != nil {
		return nil, err
	}
	opts.GroupBy = groupBy

	if err := validateDates(in.Dates); err != nil {
		return nil, err
	}

	ds, err := uc.reader.ReadDataset(ctx, in.DatasetID, in.Dates)
	if err != nil {
		return nil, err
	}

	events := engine.FilterEvents(ds.Events, engine.Filter{
		Dates:       in.Dates,
		Actors:      in.Actors,
		CostCenters: in.CostCenters,
	})
	opts.Property = ds.Label

	report, err := engine.Aggregate(events, opts)
	if err != nil {
		return nil, err
	}
	report.Property = ds.Label

	return report, nil
}

func buildOptions(mode, sortColumn string, ascending bool) (engine.Options, error) {
	m := domain.Mode(mode)
	if m == "" {
		m = domain.ModeTotal
	}
	if !m.Valid() {
		return engine.Options{}, ErrInvalidMode
	}

	col := domain.Column(sortColumn)
	if col != "" && !knownColumn(col) {
		return engine.Options{}, ErrInvalidSortColumn
	}

	return engine.Options{
		Mode:          m,
		SortColumn:    col,
		SortAscending: ascending,
	}, nil
}

func knownColumn(c domain.Column) bool {
	for _, k := range domain.Columns {
		if k == c {
			return true
		}
	}
	return false
}

func validateDates(dates []string) error {
	for _, d := range dates {
		if _, err := time.Parse(actions.DateLayout, d); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	return nil
}
