package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// ActionRepository reads the wms_actions table. It never writes.
type ActionRepository struct {
	db     DB
	driver string
}

func NewActionRepository(db DB, driver string) *ActionRepository {
	return &ActionRepository{db: db, driver: driver}
}

var _ ports.ActionSourcePort = (*ActionRepository)(nil)

const selectActionsSQL = `
SELECT
    actor,
    cost_center,
    action_code,
    document,
    item,
    quantity,
    unit,
    reporting_unit,
    relationship,
    action_start,
    action_completion
FROM wms_actions
WHERE `

func (r *ActionRepository) LoadActions(ctx context.Context, f ports.SourceFilter) ([]domain.Event, error) {
	where := "source_id = " + r.placeholder(1)
	args := []any{f.SourceID}

	// one half-open range per day keeps the filter portable across drivers
	if len(f.Dates) > 0 {
		ranges := make([]string, 0, len(f.Dates))
		for _, d := range f.Dates {
			day, err := time.Parse(domain.DateLayout, d)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q: %w", d, err)
			}
			from := r.placeholder(len(args) + 1)
			to := r.placeholder(len(args) + 2)
			ranges = append(ranges, fmt.Sprintf("(action_start >= %s AND action_start < %s)", from, to))
			args = append(args, day, day.AddDate(0, 0, 1))
		}
		where += " AND (" + strings.Join(ranges, " OR ") + ")"
	}

	// row order is significant: dedup keeps the first row per action
	query := selectActionsSQL + where + "\nORDER BY row_no"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e             domain.Event
			reportingUnit sql.NullString
			relationship  sql.NullFloat64
		)
		if err := rows.Scan(
			&e.Actor,
			&e.CostCenter,
			&e.ActionCode,
			&e.Document,
			&e.Item,
			&e.Quantity,
			&e.Unit,
			&reportingUnit,
			&relationship,
			&e.Start,
			&e.Completion,
		); err != nil {
			return nil, err
		}
		e.ReportingUnit = reportingUnit.String
		e.Relationship = relationship.Float64
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

const sourceExistsSQL = `SELECT 1 FROM wms_actions WHERE source_id = %s LIMIT 1`

// HasSource reports whether any row carries the source id.
func (r *ActionRepository) HasSource(ctx context.Context, sourceID string) (bool, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(sourceExistsSQL, r.placeholder(1)), sourceID)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	return found, nil
}

func (r *ActionRepository) placeholder(n int) string {
	if r.driver == DriverSQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}
