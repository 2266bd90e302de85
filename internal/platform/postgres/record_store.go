package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/phrazzld/lifetrack-api/internal/store"
)

// PostgreSQL error codes
const pgInvalidTextRepresentationCode = "22P02"

// DBTX abstracts the database access layer. It is implemented by both
// *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RecordStore implements the store.RemoteStore interface using a PostgreSQL
// database as the storage backend.
type RecordStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewRecordStore creates a new PostgreSQL implementation of the RemoteStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewRecordStore(db DBTX, logger *slog.Logger) *RecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "record_store")),
	}
}

// Ensure RecordStore implements store.RemoteStore interface
var _ store.RemoteStore = (*RecordStore)(nil)

// FetchOne implements store.RemoteStore.FetchOne.
// Returns store.ErrRecordNotFound when no record exists for the owner.
func (s *RecordStore) FetchOne(ctx context.Context, domain store.Name, ownerID string) (*store.Record, error) {
	if !domain.Valid() {
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownDomain, domain)
	}

	query := `
		SELECT data, updated_at
		FROM domain_records
		WHERE domain = $1 AND owner_id = $2
	`

	record := store.Record{Domain: domain, OwnerID: ownerID}
	err := s.db.QueryRowContext(ctx, query, string(domain), ownerID).
		Scan(&record.Data, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRecordNotFound
		}
		s.logger.Error("failed to fetch domain record",
			slog.String("error", err.Error()),
			slog.String("domain", string(domain)),
			slog.String("owner_id", ownerID))
		return nil, err
	}

	return &record, nil
}

// Upsert implements store.RemoteStore.Upsert.
// The entire prior record is overwritten; there is no partial-field merge.
func (s *RecordStore) Upsert(ctx context.Context, record store.Record) error {
	if !record.Domain.Valid() {
		return fmt.Errorf("%w: %q", store.ErrUnknownDomain, record.Domain)
	}
	if !json.Valid(record.Data) {
		return fmt.Errorf("%w: data is not valid JSON", store.ErrInvalidRecord)
	}

	query := `
		INSERT INTO domain_records (domain, owner_id, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (domain, owner_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		string(record.Domain),
		record.OwnerID,
		[]byte(record.Data),
		record.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentationCode {
			return fmt.Errorf("%w: %s", store.ErrInvalidRecord, pgErr.Message)
		}
		s.logger.Error("failed to upsert domain record",
			slog.String("error", err.Error()),
			slog.String("domain", string(record.Domain)),
			slog.String("owner_id", record.OwnerID))
		return err
	}

	s.logger.Debug("domain record upserted",
		slog.String("domain", string(record.Domain)),
		slog.String("owner_id", record.OwnerID))
	return nil
}
