package syncer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/lifetrack-api/internal/store"
)

// Manager hands out one Engine per owner. The HTTP layer is stateless, so
// the session-scoped engine lives here instead: the first request for an
// owner triggers the load, later requests reuse the live engine.
type Manager struct {
	remote store.RemoteStore
	logger *slog.Logger

	mu      sync.Mutex
	engines map[string]*Engine
}

// NewManager creates an empty engine manager.
func NewManager(remote store.RemoteStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		remote:  remote,
		logger:  logger,
		engines: make(map[string]*Engine),
	}
}

// ForOwner returns the engine holding ownerID's state, creating and loading
// it on first use.
func (m *Manager) ForOwner(ctx context.Context, ownerID string) *Engine {
	m.mu.Lock()
	engine, ok := m.engines[ownerID]
	if !ok {
		engine = New(m.remote, m.logger)
		m.engines[ownerID] = engine
	}
	m.mu.Unlock()

	if !ok {
		engine.Load(ctx, ownerID)
	}
	return engine
}

// Release closes and forgets the engine for ownerID, if any.
func (m *Manager) Release(ownerID string) {
	m.mu.Lock()
	engine, ok := m.engines[ownerID]
	delete(m.engines, ownerID)
	m.mu.Unlock()

	if ok {
		engine.Close()
	}
}

// Close shuts down every engine the manager holds.
func (m *Manager) Close() {
	m.mu.Lock()
	engines := make([]*Engine, 0, len(m.engines))
	for _, engine := range m.engines {
		engines = append(engines, engine)
	}
	m.engines = make(map[string]*Engine)
	m.mu.Unlock()

	for _, engine := range engines {
		engine.Close()
	}
}
