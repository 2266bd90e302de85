package store

import (
	"context"
	"encoding/json"
	"time"
)

// Name identifies one of the four data domains.
type Name string

// The four domains. One remote record exists per (domain, owner) pair.
const (
	Finances Name = "finances"
	Health   Name = "health"
	Sleep    Name = "sleep"
	Reading  Name = "reading"
)

// Names lists all domains in load order.
func Names() []Name {
	return []Name{Finances, Health, Sleep, Reading}
}

// Valid reports whether n is one of the four domains.
func (n Name) Valid() bool {
	switch n {
	case Finances, Health, Sleep, Reading:
		return true
	}
	return false
}

// Record is the persistence envelope for one domain snapshot. Data holds the
// domain's full field set as JSON; every upsert overwrites the entire prior
// record, never a diff.
type Record struct {
	Domain    Name            `json:"domain"`
	OwnerID   string          `json:"owner_id"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RemoteStore is the async persistence primitive: at most one record per
// owner per domain, reached through fetch and whole-record upsert.
type RemoteStore interface {
	// FetchOne retrieves the record for the given domain and owner.
	// Returns ErrRecordNotFound if no record exists yet.
	FetchOne(ctx context.Context, domain Name, ownerID string) (*Record, error)

	// Upsert inserts or fully overwrites the record keyed by (domain, owner).
	Upsert(ctx context.Context, record Record) error
}
