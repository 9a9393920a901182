package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidSource   = errors.New("invalid source id")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidUpload   = errors.New("invalid upload")
	ErrDatasetNotFound = errors.New("dataset not found")
)

const (
	SourceUpload = "upload"
	SourceSQL    = "sql"
)

type LoadActionsInput struct {
	SourceID string
	Dates    []string // optional
}

type ImportWorkbookInput struct {
	Label    string
	Filename string
	Data     []byte
}

// DefaultSQLTTL is how long a dataset read from the SQL source is served
// from cache before the source is queried again.
const DefaultSQLTTL = 5 * time.Minute

type LoadActionsUseCase struct {
	source ports.ActionSourcePort // nil -> upload-only
	parser ports.WorkbookParserPort
	cache  ports.DatasetCachePort
	sqlTTL time.Duration
	now    func() time.Time
}

func NewLoadActionsUseCase(source ports.ActionSourcePort, parser ports.WorkbookParserPort, cache ports.DatasetCachePort, sqlTTL time.Duration) *LoadActionsUseCase {
	if sqlTTL <= 0 {
		sqlTTL = DefaultSQLTTL
	}
	return &LoadActionsUseCase{
		source: source,
		parser: parser,
		cache:  cache,
		sqlTTL: sqlTTL,
		now:    time.Now,
	}
}

// Execute returns the dataset for a source id, narrowed to the given days.
// A cached full dataset answers any day subset; only a miss reaches the SQL
// source, whose results expire after sqlTTL.
func (uc *LoadActionsUseCase) Execute(ctx context.Context, in LoadActionsInput) (*domain.Dataset, error) {
	// ids may alias a request buffer; the cache keeps its own copy
	sourceID := strings.Clone(strings.TrimSpace(in.SourceID))
	if sourceID == "" {
		return nil, ErrInvalidSource
	}

	dates, err := normalizeDates(in.Dates)
	if err != nil {
		return nil, err
	}

	if full, ok := uc.cache.Get(sourceID, nil); ok {
		if len(dates) == 0 {
			return full, nil
		}
		return narrow(full, dates), nil
	}
	if len(dates) > 0 {
		if ds, ok := uc.cache.Get(sourceID, dates); ok {
			return ds, nil
		}
	}

	if uc.source == nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, sourceID)
	}

	events, err := uc.source.LoadActions(ctx, ports.SourceFilter{SourceID: sourceID, Dates: dates})
	if err != nil {
		return nil, fmt.Errorf("load actions for %s: %w", sourceID, err)
	}
	if len(events) == 0 {
		if err := uc.ensureSource(ctx, sourceID, dates); err != nil {
			return nil, err
		}
	}

	ds := &domain.Dataset{
		ID:       sourceID,
		Label:    sourceID,
		Source:   SourceSQL,
		Events:   events,
		Dates:    distinctDates(events),
		LoadedAt: uc.now(),
	}
	uc.cache.Put(ds, dates, uc.sqlTTL)

	return ds, nil
}

// ensureSource reports ErrDatasetNotFound for an empty load unless the
// source has rows on other days.
func (uc *LoadActionsUseCase) ensureSource(ctx context.Context, sourceID string, dates []string) error {
	if len(dates) == 0 {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, sourceID)
	}
	known, err := uc.source.HasSource(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("look up source %s: %w", sourceID, err)
	}
	if !known {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, sourceID)
	}
	return nil
}

// ImportWorkbook parses an uploaded spreadsheet and registers it as a new dataset.
func (uc *LoadActionsUseCase) ImportWorkbook(ctx context.Context, in ImportWorkbookInput) (*domain.Dataset, error) {
	if strings.TrimSpace(in.Filename) == "" || len(in.Data) == 0 {
		return nil, ErrInvalidUpload
	}

	events, err := uc.parser.Parse(in.Filename, in.Data)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ports.ErrEmptyWorkbook
	}

	label := strings.Clone(strings.TrimSpace(in.Label))
	if label == "" {
		base := filepath.Base(in.Filename)
		label = strings.Clone(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	ds := &domain.Dataset{
		ID:       uuid.NewString(),
		Label:    label,
		Source:   SourceUpload,
		Events:   events,
		Dates:    distinctDates(events),
		LoadedAt: uc.now(),
	}
	uc.cache.Put(ds, nil, 0)

	return ds, nil
}

// List returns the unfiltered cached datasets, newest first.
func (uc *LoadActionsUseCase) List(ctx context.Context) []*domain.Dataset {
	out := uc.cache.List()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoadedAt.After(out[j].LoadedAt)
	})
	return out
}

func normalizeDates(in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, d := range in {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

func narrow(full *domain.Dataset, dates []string) *domain.Dataset {
	keep := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		keep[d] = struct{}{}
	}

	events := make([]domain.Event, 0, len(full.Events))
	for _, e := range full.Events {
		if _, ok := keep[e.Date()]; ok {
			events = append(events, e)
		}
	}

	return &domain.Dataset{
		ID:       full.ID,
		Label:    full.Label,
		Source:   full.Source,
		Events:   events,
		Dates:    distinctDates(events),
		LoadedAt: full.LoadedAt,
	}
}

func distinctDates(events []domain.Event) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range events {
		d := e.Date()
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
