package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/phrazzld/lifetrack-api/internal/domain"
	"github.com/phrazzld/lifetrack-api/internal/store"
)

// Engine owns the in-memory domain records for one signed-in user. It is an
// explicit session-scoped instance, never a process singleton, so multiple
// sessions and tests run in isolation.
//
// Mutations apply synchronously under the engine lock and schedule an
// asynchronous whole-snapshot upsert. For a single domain, upserts are
// issued in mutation order but may complete out of order; the remote record
// can transiently trail the newest local state, which is accepted as a
// last-write-wins race.
type Engine struct {
	remote store.RemoteStore
	logger *slog.Logger

	mu      sync.RWMutex
	ownerID string
	finance domain.Finance
	health  domain.Health
	sleep   domain.Sleep
	reading domain.Reading
	// extras holds remote fields this version does not recognize, per
	// domain, so they survive a hydrate/persist round trip.
	extras map[store.Name]map[string]json.RawMessage

	loading  atomic.Bool
	inflight atomic.Int64

	writers     map[store.Name]*writer
	dispatchers sync.WaitGroup
	upserts     sync.WaitGroup
	closed      atomic.Bool
}

// New creates an engine backed by the given remote store. The engine starts
// with domain defaults and no owner; call Load on sign-in.
func New(remote store.RemoteStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		remote:  remote,
		logger:  logger.With(slog.String("component", "sync_engine")),
		finance: domain.DefaultFinance(),
		health:  domain.DefaultHealth(),
		sleep:   domain.DefaultSleep(),
		reading: domain.DefaultReading(),
		extras:  make(map[store.Name]map[string]json.RawMessage),
		writers: make(map[store.Name]*writer),
	}
	for _, name := range store.Names() {
		w := newWriter()
		e.writers[name] = w
		e.dispatchers.Add(1)
		go e.dispatch(w)
	}
	return e
}

// Load fetches the four domain records for ownerID concurrently and replaces
// all in-memory state, leaving no residue from a previous owner. A domain
// whose fetch fails or returns malformed data degrades to its default value;
// a failed load is indistinguishable from "no data yet". Load does not
// cancel an in-flight previous Load.
func (e *Engine) Load(ctx context.Context, ownerID string) {
	e.loading.Store(true)
	defer e.loading.Store(false)

	type fetched struct {
		record *store.Record
		err    error
	}
	results := make(map[store.Name]fetched, len(store.Names()))
	var resultsMu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range store.Names() {
		wg.Add(1)
		go func(name store.Name) {
			defer wg.Done()
			record, err := e.remote.FetchOne(ctx, name, ownerID)
			resultsMu.Lock()
			results[name] = fetched{record: record, err: err}
			resultsMu.Unlock()
		}(name)
	}
	wg.Wait()

	finance, financeExtra := loadDomain(e, store.Finances, domain.DefaultFinance(), results[store.Finances].record, results[store.Finances].err)
	health, healthExtra := loadDomain(e, store.Health, domain.DefaultHealth(), results[store.Health].record, results[store.Health].err)
	sleep, sleepExtra := loadDomain(e, store.Sleep, domain.DefaultSleep(), results[store.Sleep].record, results[store.Sleep].err)
	reading, readingExtra := loadDomain(e, store.Reading, domain.DefaultReading(), results[store.Reading].record, results[store.Reading].err)

	e.mu.Lock()
	e.ownerID = ownerID
	e.finance = finance
	e.health = health
	e.sleep = sleep
	e.reading = reading
	e.extras = map[store.Name]map[string]json.RawMessage{
		store.Finances: financeExtra,
		store.Health:   healthExtra,
		store.Sleep:    sleepExtra,
		store.Reading:  readingExtra,
	}
	e.mu.Unlock()

	e.logger.Info("domain records loaded", slog.String("owner_id", ownerID))
}

// loadDomain hydrates one fetched record, degrading to the domain default on
// any failure.
func loadDomain[T any](e *Engine, name store.Name, defaults T, record *store.Record, err error) (T, map[string]json.RawMessage) {
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			e.logger.Warn("domain fetch failed, using defaults",
				slog.String("domain", string(name)),
				slog.String("error", err.Error()))
		}
		return defaults, map[string]json.RawMessage{}
	}
	value, extra, herr := hydrate(defaults, record.Data)
	if herr != nil {
		e.logger.Warn("domain record malformed, using defaults",
			slog.String("domain", string(name)),
			slog.String("error", herr.Error()))
		return defaults, map[string]json.RawMessage{}
	}
	return value, extra
}

// Reset clears all in-memory state back to domain defaults and detaches the
// owner. Used on the session transition to signed-out. Writes already
// issued for the previous owner are not cancelled.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.ownerID = ""
	e.finance = domain.DefaultFinance()
	e.health = domain.DefaultHealth()
	e.sleep = domain.DefaultSleep()
	e.reading = domain.DefaultReading()
	e.extras = make(map[store.Name]map[string]json.RawMessage)
	e.mu.Unlock()
}

// Loading reports whether a Load is in progress.
func (e *Engine) Loading() bool { return e.loading.Load() }

// Syncing reports whether any persistence write is queued or in flight.
func (e *Engine) Syncing() bool { return e.inflight.Load() > 0 }

// OwnerID returns the owner the engine currently holds state for, or the
// empty string when signed out.
func (e *Engine) OwnerID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ownerID
}

// Finance returns a snapshot of the finance domain.
func (e *Engine) Finance() domain.Finance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.finance.Clone()
}

// Health returns a snapshot of the health domain.
func (e *Engine) Health() domain.Health {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.health.Clone()
}

// Sleep returns a snapshot of the sleep domain.
func (e *Engine) Sleep() domain.Sleep {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sleep.Clone()
}

// Reading returns a snapshot of the reading domain.
func (e *Engine) Reading() domain.Reading {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reading.Clone()
}

// MutateFinance applies fn to the current finance record synchronously, then
// schedules persistence of the new snapshot. fn receives a copy and must
// return the replacement value.
func (e *Engine) MutateFinance(fn func(domain.Finance) domain.Finance) {
	e.mu.Lock()
	e.finance = fn(e.finance.Clone())
	payload, owner := e.snapshotLocked(store.Finances, e.finance)
	e.mu.Unlock()
	e.schedule(store.Finances, owner, payload)
}

// MutateHealth applies fn to the current health record synchronously, then
// schedules persistence of the new snapshot.
func (e *Engine) MutateHealth(fn func(domain.Health) domain.Health) {
	e.mu.Lock()
	e.health = fn(e.health.Clone())
	payload, owner := e.snapshotLocked(store.Health, e.health)
	e.mu.Unlock()
	e.schedule(store.Health, owner, payload)
}

// MutateSleep applies fn to the current sleep record synchronously, then
// schedules persistence of the new snapshot.
func (e *Engine) MutateSleep(fn func(domain.Sleep) domain.Sleep) {
	e.mu.Lock()
	e.sleep = fn(e.sleep.Clone())
	payload, owner := e.snapshotLocked(store.Sleep, e.sleep)
	e.mu.Unlock()
	e.schedule(store.Sleep, owner, payload)
}

// MutateReading applies fn to the current reading record synchronously, then
// schedules persistence of the new snapshot.
func (e *Engine) MutateReading(fn func(domain.Reading) domain.Reading) {
	e.mu.Lock()
	e.reading = fn(e.reading.Clone())
	payload, owner := e.snapshotLocked(store.Reading, e.reading)
	e.mu.Unlock()
	e.schedule(store.Reading, owner, payload)
}

// SetFinance replaces the finance record wholesale.
func (e *Engine) SetFinance(v domain.Finance) {
	e.MutateFinance(func(domain.Finance) domain.Finance { return v.Clone() })
}

// SetHealth replaces the health record wholesale.
func (e *Engine) SetHealth(v domain.Health) {
	e.MutateHealth(func(domain.Health) domain.Health { return v.Clone() })
}

// SetSleep replaces the sleep record wholesale.
func (e *Engine) SetSleep(v domain.Sleep) {
	e.MutateSleep(func(domain.Sleep) domain.Sleep { return v.Clone() })
}

// SetReading replaces the reading record wholesale.
func (e *Engine) SetReading(v domain.Reading) {
	e.MutateReading(func(domain.Reading) domain.Reading { return v.Clone() })
}

// snapshotLocked serializes the domain value plus its retained unknown
// fields. Callers must hold the engine lock.
func (e *Engine) snapshotLocked(name store.Name, value any) (json.RawMessage, string) {
	payload, err := flatten(value, e.extras[name])
	if err != nil {
		e.logger.Error("failed to serialize domain snapshot",
			slog.String("domain", string(name)),
			slog.String("error", err.Error()))
		return nil, e.ownerID
	}
	return payload, e.ownerID
}

// Close stops the persistence dispatchers and waits for writes already
// issued to finish. The engine must not be used afterwards.
func (e *Engine) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	for _, w := range e.writers {
		close(w.jobs)
	}
	e.dispatchers.Wait()
	e.upserts.Wait()
}

// now is a variable so tests can pin the persisted timestamp.
var now = time.Now
