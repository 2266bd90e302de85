package session

import (
	"context"
	"log/slog"

	"github.com/phrazzld/lifetrack-api/internal/syncer"
)

// Watcher drives a sync engine from session transitions: a transition to a
// signed-in owner loads that owner's domains, a transition to signed-out
// clears all in-memory state.
type Watcher struct {
	gate   Gate
	engine *syncer.Engine
	logger *slog.Logger
}

// NewWatcher wires a gate to an engine.
func NewWatcher(gate Gate, engine *syncer.Engine, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		gate:   gate,
		engine: engine,
		logger: logger.With(slog.String("component", "session_watcher")),
	}
}

// Run resolves the current session, then follows transitions until ctx is
// cancelled. A failed initial resolution is treated as signed-out.
func (w *Watcher) Run(ctx context.Context) {
	owner, err := w.gate.CurrentOwner(ctx)
	if err != nil {
		w.logger.Warn("failed to resolve current session, treating as signed out",
			slog.String("error", err.Error()))
		owner = ""
	}
	w.apply(ctx, owner)

	changes := w.gate.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			w.apply(ctx, change.OwnerID)
		}
	}
}

func (w *Watcher) apply(ctx context.Context, ownerID string) {
	if ownerID == "" {
		w.logger.Info("session ended, clearing state")
		w.engine.Reset()
		return
	}
	w.logger.Info("session started, loading domains", slog.String("owner_id", ownerID))
	w.engine.Load(ctx, ownerID)
}
