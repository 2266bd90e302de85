// Package api provides HTTP handlers for the tracker API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/lifetrack-api/internal/api/shared"
	"github.com/phrazzld/lifetrack-api/internal/service"
	"github.com/phrazzld/lifetrack-api/internal/syncer"
)

// TrackerHandler handles all tracker HTTP requests. Engines are held per
// owner by the sync manager; each request resolves its owner's engine and
// binds a service to it.
type TrackerHandler struct {
	manager  *syncer.Manager
	logger   *slog.Logger
	validate *validator.Validate
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(manager *syncer.Manager, logger *slog.Logger) *TrackerHandler {
	if manager == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("manager cannot be nil for TrackerHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerHandler{
		manager:  manager,
		logger:   logger.With(slog.String("component", "tracker_handler")),
		validate: validator.New(),
	}
}

// resolve extracts the owner from the request context and returns the
// owner's engine plus a service bound to it. Writes the error response and
// returns false when no owner is present.
func (h *TrackerHandler) resolve(w http.ResponseWriter, r *http.Request) (*syncer.Engine, *service.TrackerService, bool) {
	ownerID, ok := shared.GetOwnerID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, nil, false
	}
	engine := h.manager.ForOwner(r.Context(), ownerID)
	return engine, service.NewTrackerService(engine, h.logger), true
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. Writes a 400 response and returns false on failure.
func (h *TrackerHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// pathID extracts the numeric entry id from the URL path.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// respondServiceError maps service errors onto HTTP statuses: unknown ids
// are 404, rejected input is 400, anything else is a 500.
func (h *TrackerHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrEntryNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Entry not found")
		return
	}

	var svcErr *service.TrackerServiceError
	if errors.As(err, &svcErr) && svcErr.Err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, svcErr.Err.Error())
		return
	}

	h.logger.Error("unexpected service error", slog.String("error", err.Error()))
	shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
}
