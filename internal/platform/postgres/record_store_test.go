package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lifetrack-api/internal/store"
)

func TestNewRecordStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		NewRecordStore(nil, nil)
	})
}

func TestUpsertRejectsUnknownDomain(t *testing.T) {
	t.Parallel()
	s := NewRecordStore(stubDB{}, nil)
	err := s.Upsert(context.Background(), store.Record{
		Domain:    "budgets",
		OwnerID:   "user-1",
		Data:      json.RawMessage(`{}`),
		UpdatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnknownDomain)
}

func TestUpsertRejectsInvalidJSON(t *testing.T) {
	t.Parallel()
	s := NewRecordStore(stubDB{}, nil)
	err := s.Upsert(context.Background(), store.Record{
		Domain:    store.Finances,
		OwnerID:   "user-1",
		Data:      json.RawMessage(`{"savings":`),
		UpdatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidRecord)
}

func TestFetchOneRejectsUnknownDomain(t *testing.T) {
	t.Parallel()
	s := NewRecordStore(stubDB{}, nil)
	_, err := s.FetchOne(context.Background(), "budgets", "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnknownDomain)
}
