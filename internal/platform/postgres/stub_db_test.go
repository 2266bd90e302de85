package postgres

import (
	"context"
	"database/sql"
)

// stubDB satisfies DBTX for tests that only exercise validation paths and
// never reach the database.
type stubDB struct{}

func (stubDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, nil
}

func (stubDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}
