package sqlstore

import _ "embed"

var (
	//go:embed schema_postgres.sql
	postgresSchema string

	//go:embed schema_sqlite.sql
	sqliteSchema string
)

// Schema returns the wms_actions DDL for a driver. Action timestamps are
// expected in UTC.
func Schema(driver string) string {
	if driver == DriverSQLite {
		return sqliteSchema
	}
	return postgresSchema
}
