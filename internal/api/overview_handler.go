package api

import (
	"net/http"

	"github.com/phrazzld/lifetrack-api/internal/analytics"
	"github.com/phrazzld/lifetrack-api/internal/api/shared"
	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// GetOverview handles GET /api/overview: the cross-domain dashboard of
// summaries, insights, and recent activity.
func (h *TrackerHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	engine, _, ok := h.resolve(w, r)
	if !ok {
		return
	}

	finance := engine.Finance()
	health := engine.Health()
	sleep := engine.Sleep()
	reading := engine.Reading()
	today := domain.Today()

	resp := OverviewResponse{
		Summary:  summaryResponse(analytics.Summarize(finance)),
		Sleep:    analytics.AverageSleep(sleep.Entries),
		Insights: analytics.Insights(finance, health, sleep, reading, today),
		Activity: analytics.RecentActivity(finance, health, sleep),
		Loading:  engine.Loading(),
		Syncing:  engine.Syncing(),
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func summaryResponse(s analytics.FinanceSummary) FinanceSummaryResponse {
	return FinanceSummaryResponse{
		Savings:         s.Savings.String(),
		Investments:     s.Investments.String(),
		Assets:          s.Assets.String(),
		TotalDebt:       s.TotalDebt.String(),
		TotalExpenses:   s.TotalExpenses.String(),
		NetWorth:        s.NetWorth.String(),
		NetWorthDisplay: analytics.FormatNairaCompact(s.NetWorth),
		AssetsPct:       s.AssetsPct,
	}
}
