package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"

	_ "github.com/mattn/go-sqlite3"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(Schema(DriverSQLite)); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func insertAction(t *testing.T, db *sql.DB, source, actor, code string, start time.Time, reportingUnit, relationship any) {
	t.Helper()

	_, err := db.Exec(`
INSERT INTO wms_actions
    (source_id, actor, cost_center, action_code, document, item, quantity, unit,
     reporting_unit, relationship, action_start, action_completion)
VALUES (?, ?, 'CC-10', ?, 'DOC-1', 'ITEM-1', 4, 'EACH', ?, ?, ?, ?)`,
		source, actor, code, reportingUnit, relationship, start, start.Add(5*time.Minute))
	if err != nil {
		t.Fatalf("insert action: %v", err)
	}
}

func TestActionRepository_SQLite(t *testing.T) {
	db := openSQLite(t)
	day := func(d, h int) time.Time { return time.Date(2025, 3, d, h, 0, 0, 0, time.UTC) }

	// insert order differs from start order
	insertAction(t, db, "site-a", "A", "3", day(5, 9), nil, nil)
	insertAction(t, db, "site-a", "A", "1", day(4, 8), "LITER", 0.5)
	insertAction(t, db, "site-a", "B", "2", day(4, 7), nil, nil)
	insertAction(t, db, "site-b", "C", "9", day(4, 8), nil, nil)
	insertAction(t, db, "site-a", "B", "4", day(5, 0), nil, nil)

	repo := NewActionRepository(NewSQLDB(db, DriverSQLite), DriverSQLite)
	ctx := context.Background()

	all, err := repo.LoadActions(ctx, ports.SourceFilter{SourceID: "site-a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := codes(all); got != "3,1,2,4" {
		t.Fatalf("expected row_no order 3,1,2,4, got %s", got)
	}
	if all[1].ReportingUnit != "LITER" || all[1].Relationship != 0.5 {
		t.Fatalf("unexpected optional columns: %+v", all[1])
	}
	if !all[1].Start.Equal(day(4, 8)) || !all[1].Completion.Equal(day(4, 8).Add(5*time.Minute)) {
		t.Fatalf("unexpected timestamps: %s..%s", all[1].Start, all[1].Completion)
	}

	// half-open day ranges: midnight of the 5th belongs to the 5th only
	fourth, err := repo.LoadActions(ctx, ports.SourceFilter{SourceID: "site-a", Dates: []string{"2025-03-04"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := codes(fourth); got != "1,2" {
		t.Fatalf("expected 1,2 on 2025-03-04, got %s", got)
	}

	fifth, err := repo.LoadActions(ctx, ports.SourceFilter{SourceID: "site-a", Dates: []string{"2025-03-05"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := codes(fifth); got != "3,4" {
		t.Fatalf("expected 3,4 on 2025-03-05, got %s", got)
	}

	known, err := repo.HasSource(ctx, "site-b")
	if err != nil || !known {
		t.Fatalf("expected site-b to exist, got %v (%v)", known, err)
	}
	known, err = repo.HasSource(ctx, "typo")
	if err != nil || known {
		t.Fatalf("expected typo to be unknown, got %v (%v)", known, err)
	}
}

func TestSQLDB_ErrorsNameDriver(t *testing.T) {
	db, err := sql.Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	repo := NewActionRepository(NewSQLDB(db, DriverSQLite), DriverSQLite)

	_, err = repo.LoadActions(context.Background(), ports.SourceFilter{SourceID: "site-a"})
	if err == nil {
		t.Fatalf("expected error without a wms_actions table")
	}
	if !strings.HasPrefix(err.Error(), "sqlite3: query wms_actions:") {
		t.Fatalf("expected driver-tagged error, got %v", err)
	}
}

func codes(events []domain.Event) string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ActionCode)
	}
	return strings.Join(out, ",")
}
