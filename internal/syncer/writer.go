package syncer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/lifetrack-api/internal/store"
)

// writeQueueSize bounds the number of not-yet-issued writes per domain.
// A full queue drops the write, which is observationally identical to a
// failed upsert: local state stays authoritative until the next mutation.
const writeQueueSize = 128

// writeJob is one scheduled whole-snapshot upsert.
type writeJob struct {
	id     uuid.UUID
	record store.Record
}

// writer is the per-domain persistence pipeline: a FIFO queue drained by one
// dispatcher goroutine. The dispatcher launches each upsert in its own
// goroutine, so writes are issued in mutation order while completions may
// interleave.
type writer struct {
	jobs chan writeJob
}

func newWriter() *writer {
	return &writer{jobs: make(chan writeJob, writeQueueSize)}
}

// schedule queues a persistence write for the given domain. It returns
// immediately; mutations never block on the remote store. Writes are skipped
// when no owner is attached or the snapshot failed to serialize.
func (e *Engine) schedule(name store.Name, ownerID string, payload []byte) {
	if ownerID == "" || payload == nil {
		return
	}
	if e.closed.Load() {
		return
	}

	job := writeJob{
		id: uuid.New(),
		record: store.Record{
			Domain:    name,
			OwnerID:   ownerID,
			Data:      payload,
			UpdatedAt: now().UTC(),
		},
	}

	e.inflight.Add(1)
	select {
	case e.writers[name].jobs <- job:
	default:
		e.inflight.Add(-1)
		e.logger.Error("persistence queue full, dropping write",
			slog.String("domain", string(name)),
			slog.String("owner_id", ownerID))
	}
}

// dispatch drains one writer's queue. Each job runs in its own goroutine;
// upsert failures are logged and swallowed, local state is never rolled
// back, and no retry is attempted.
func (e *Engine) dispatch(w *writer) {
	defer e.dispatchers.Done()
	for job := range w.jobs {
		e.upserts.Add(1)
		go func(job writeJob) {
			defer e.upserts.Done()
			defer e.inflight.Add(-1)
			if err := e.remote.Upsert(context.Background(), job.record); err != nil {
				e.logger.Warn("persistence write failed, local state kept",
					slog.String("job_id", job.id.String()),
					slog.String("domain", string(job.record.Domain)),
					slog.String("owner_id", job.record.OwnerID),
					slog.String("error", err.Error()))
			}
		}(job)
	}
}
