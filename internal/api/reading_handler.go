package api

import (
	"net/http"

	"github.com/phrazzld/lifetrack-api/internal/analytics"
	"github.com/phrazzld/lifetrack-api/internal/api/shared"
	"github.com/phrazzld/lifetrack-api/internal/service"
)

// GetReading handles GET /api/reading.
func (h *TrackerHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	engine, _, ok := h.resolve(w, r)
	if !ok {
		return
	}

	reading := engine.Reading()
	books := []BookResponse{}
	for _, b := range reading.Books {
		resp := BookResponse{Book: b}
		if pct, ok := analytics.BookProgress(b); ok {
			resp.Progress = &pct
		}
		books = append(books, resp)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReadingResponse{
		Books: books,
		Stats: analytics.ShelfStats(reading.Books),
	})
}

// AddBook handles POST /api/reading.
func (h *TrackerHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req AddBookRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	book, err := svc.AddBook(req.Title, req.Author, req.Status, req.Pages, req.CurrentPage,
		req.Rating, req.Genre, req.StartDate, req.EndDate)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, book)
}

// UpdateBook handles PATCH /api/reading/{id}.
func (h *TrackerHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}

	var req UpdateBookRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	book, err := svc.UpdateBook(id, service.BookUpdate{
		Status:      req.Status,
		Pages:       req.Pages,
		CurrentPage: req.CurrentPage,
		Rating:      req.Rating,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// RemoveBook handles DELETE /api/reading/{id}.
func (h *TrackerHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := svc.RemoveBook(id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
