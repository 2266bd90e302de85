package api

import (
	"net/http"

	"github.com/phrazzld/lifetrack-api/internal/analytics"
	"github.com/phrazzld/lifetrack-api/internal/api/shared"
)

// GetSleep handles GET /api/sleep.
func (h *TrackerHandler) GetSleep(w http.ResponseWriter, r *http.Request) {
	engine, _, ok := h.resolve(w, r)
	if !ok {
		return
	}

	sleep := engine.Sleep()
	shared.RespondWithJSON(w, r, http.StatusOK, SleepResponse{
		Sleep:   sleep,
		Average: analytics.AverageSleep(sleep.Entries),
	})
}

// AddSleepEntry handles POST /api/sleep.
func (h *TrackerHandler) AddSleepEntry(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req AddSleepRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := svc.AddSleepEntry(req.Date, req.Bedtime, req.WakeTime, req.Quality, req.Notes)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// RemoveSleepEntry handles DELETE /api/sleep/{id}.
func (h *TrackerHandler) RemoveSleepEntry(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := svc.RemoveSleepEntry(id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
