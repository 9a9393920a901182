package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// sqlRows tags scan and iteration errors with the driver so a failing
// source is identifiable in logs and API errors.
type sqlRows struct {
	rows   *sql.Rows
	driver string
}

func (r *sqlRows) Next() bool {
	return r.rows.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	if err := r.rows.Scan(dest...); err != nil {
		return fmt.Errorf("%s: scan wms_actions row: %w", r.driver, err)
	}
	return nil
}

func (r *sqlRows) Err() error {
	if err := r.rows.Err(); err != nil {
		return fmt.Errorf("%s: read wms_actions: %w", r.driver, err)
	}
	return nil
}

func (r *sqlRows) Close() error {
	return r.rows.Close()
}

type sqlDB struct {
	db     *sql.DB
	driver string
}

func NewSQLDB(db *sql.DB, driver string) DB {
	return &sqlDB{db: db, driver: driver}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query wms_actions: %w", s.driver, err)
	}
	return &sqlRows{rows: rows, driver: s.driver}, nil
}
