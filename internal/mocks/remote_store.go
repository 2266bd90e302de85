package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/lifetrack-api/internal/store"
)

type recordKey struct {
	domain store.Name
	owner  string
}

// RemoteStore implements store.RemoteStore backed by a map. It records every
// upsert in issue order so tests can assert on ordering and payloads.
type RemoteStore struct {
	// Function fields for customizable behavior
	FetchOneFn func(ctx context.Context, domain store.Name, ownerID string) (*store.Record, error)
	UpsertFn   func(ctx context.Context, record store.Record) error

	mu      sync.Mutex
	records map[recordKey]store.Record
	upserts []store.Record
}

// NewRemoteStore creates an empty mock store.
func NewRemoteStore() *RemoteStore {
	return &RemoteStore{records: make(map[recordKey]store.Record)}
}

// Seed places a record in the store without counting as an upsert.
func (m *RemoteStore) Seed(record store.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[recordKey{record.Domain, record.OwnerID}] = record
}

// FetchOne implements store.RemoteStore.
func (m *RemoteStore) FetchOne(ctx context.Context, domain store.Name, ownerID string) (*store.Record, error) {
	if m.FetchOneFn != nil {
		return m.FetchOneFn(ctx, domain, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[recordKey{domain, ownerID}]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	out := record
	return &out, nil
}

// Upsert implements store.RemoteStore.
func (m *RemoteStore) Upsert(ctx context.Context, record store.Record) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, record)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[recordKey{record.Domain, record.OwnerID}] = record
	m.upserts = append(m.upserts, record)
	return nil
}

// Record returns the stored record for (domain, owner) and whether one exists.
func (m *RemoteStore) Record(domain store.Name, ownerID string) (store.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[recordKey{domain, ownerID}]
	return record, ok
}

// Upserts returns a copy of all upserted records in issue order.
func (m *RemoteStore) Upserts() []store.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.Record, len(m.upserts))
	copy(out, m.upserts)
	return out
}

// UpsertCount returns how many upserts have completed.
func (m *RemoteStore) UpsertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.upserts)
}
