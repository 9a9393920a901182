package ports

import (
	"context"
	"errors"
	"time"

	"wms-performance-service/internal/actions/core/domain"
)

type SourceFilter struct {
	SourceID string
	Dates    []string // optional, "2006-01-02"
}

// ActionSourcePort reads raw action rows from a backing store.
// HasSource tells an unknown source id apart from a known one with no
// rows on the requested days.
type ActionSourcePort interface {
	LoadActions(ctx context.Context, f SourceFilter) ([]domain.Event, error)
	HasSource(ctx context.Context, sourceID string) (bool, error)
}

// DatasetCachePort is the read-through cache in front of every source,
// keyed by source id and the (sorted) day filter.
//
//	Get:  ok = false -> not cached or expired
//	Put:  ttl <= 0 pins the entry (uploads have no other copy)
//	List: only unfiltered, live datasets
type DatasetCachePort interface {
	Get(sourceID string, dates []string) (*domain.Dataset, bool)
	Put(ds *domain.Dataset, dates []string, ttl time.Duration)
	List() []*domain.Dataset
}

var (
	ErrUnsupportedFile = errors.New("unsupported workbook format")
	ErrEmptyWorkbook   = errors.New("workbook has no action rows")
)

// WorkbookParserPort turns an uploaded spreadsheet into action rows.
type WorkbookParserPort interface {
	Parse(filename string, data []byte) ([]domain.Event, error)
}
