package api

import (
	"net/http"

	"github.com/phrazzld/lifetrack-api/internal/analytics"
	"github.com/phrazzld/lifetrack-api/internal/api/shared"
)

// GetFinances handles GET /api/finances.
func (h *TrackerHandler) GetFinances(w http.ResponseWriter, r *http.Request) {
	engine, _, ok := h.resolve(w, r)
	if !ok {
		return
	}

	finance := engine.Finance()

	breakdown := []CategorySumResponse{}
	for _, row := range analytics.CategoryBreakdown(finance.Expenses) {
		breakdown = append(breakdown, CategorySumResponse{
			Category: row.Category,
			Total:    row.Total.String(),
			Display:  analytics.FormatNaira(row.Total),
		})
	}

	debts := []DebtProgressResponse{}
	for _, d := range finance.Debts {
		p := analytics.ProgressFor(d)
		debts = append(debts, DebtProgressResponse{
			Debt:      d,
			Paid:      p.Paid.String(),
			Remaining: p.Remaining.String(),
			PctRepaid: p.PctRepaid,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FinancesResponse{
		Finance:   finance,
		Summary:   summaryResponse(analytics.Summarize(finance)),
		Breakdown: breakdown,
		Debts:     debts,
	})
}

// AddExpense handles POST /api/finances/expenses.
func (h *TrackerHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req AddExpenseRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	expense, err := svc.AddExpense(req.Amount, req.Category, req.Note, req.Date)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, expense)
}

// RemoveExpense handles DELETE /api/finances/expenses/{id}.
func (h *TrackerHandler) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := svc.RemoveExpense(id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddDebt handles POST /api/finances/debts.
func (h *TrackerHandler) AddDebt(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req AddDebtRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	debt, err := svc.AddDebt(req.Name, req.Type, req.Amount, req.Remaining, req.InterestRate, req.DueDate, req.Note)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, debt)
}

// UpdateDebt handles PATCH /api/finances/debts/{id}: edits the remaining
// balance in place.
func (h *TrackerHandler) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}

	var req UpdateDebtRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	debt, err := svc.UpdateDebtRemaining(id, req.Remaining)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, debt)
}

// RemoveDebt handles DELETE /api/finances/debts/{id}.
func (h *TrackerHandler) RemoveDebt(w http.ResponseWriter, r *http.Request) {
	_, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entry id")
		return
	}
	if err := svc.RemoveDebt(id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSavings handles PUT /api/finances/savings. The balance is stored as
// entered, like every numeric field.
func (h *TrackerHandler) SetSavings(w http.ResponseWriter, r *http.Request) {
	engine, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req SetBalanceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	svc.SetSavings(req.Value)
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"savings": engine.Finance().Savings})
}

// SetInvestments handles PUT /api/finances/investments.
func (h *TrackerHandler) SetInvestments(w http.ResponseWriter, r *http.Request) {
	engine, svc, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req SetBalanceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	svc.SetInvestments(req.Value)
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"investments": engine.Finance().Investments})
}
