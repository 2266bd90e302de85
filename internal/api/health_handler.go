package api

import (
	"net/http"

	"github.com/phrazzld/lifetrack-api/internal/analytics"
	"github.com/phrazzld/lifetrack-api/internal/api/shared"
	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// GetHealth handles GET /api/health.
func (h *TrackerHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	engine, _, ok := h.resolve(w, r)
	if !ok {
		return
	}

	health := engine.Health()
	snap := analytics.LatestVitals(health.Entries)

	resp := HealthResponse{
		Health:       health,
		LatestVitals: snap.Latest,
		Today:        analytics.MealsOn(health.Entries, domain.Today()),
		MealDates:    analytics.MealDates(health.Entries),
	}
	if snap.HasAvgWeight {
		avg := snap.AvgWeight
		resp.AvgWeight = &avg
	}
	if resp.MealDates == nil {
		resp.MealDates = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// AddVitals handles POST /api/health/vitals.
func (h *TrackerHandler) AddVitals(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req AddVitalsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := svc.AddVitals(req.Date, req.Weight, req.BPSys, req.BPDia, req.Water)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// AddMeal handles POST /api/health/meals.
func (h *TrackerHandler) AddMeal(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req AddMealRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := svc.AddMeal(req.Date, req.Type, req.Time, req.Foods, req.Calories, req.Notes)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// RemoveHealthEntry handles DELETE /api/health/entries/{id}. Vitals and
// meals share one id space.
func (h *TrackerHandler) RemoveHealthEntry(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := svc.RemoveHealthEntry(id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
