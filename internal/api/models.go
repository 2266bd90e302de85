package api

import (
	"github.com/phrazzld/lifetrack-api/internal/analytics"
	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// Request payloads

// AddExpenseRequest defines the payload for logging an expense.
type AddExpenseRequest struct {
	Amount   string `json:"amount" validate:"required"`
	Category string `json:"category" validate:"required"`
	Note     string `json:"note"`
	Date     string `json:"date"`
}

// AddDebtRequest defines the payload for logging a debt.
type AddDebtRequest struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Amount       string `json:"amount" validate:"required"`
	Remaining    string `json:"remaining"`
	InterestRate string `json:"interestRate"`
	DueDate      string `json:"dueDate"`
	Note         string `json:"note"`
}

// UpdateDebtRequest edits a debt's outstanding balance.
type UpdateDebtRequest struct {
	Remaining string `json:"remaining" validate:"required"`
}

// SetBalanceRequest replaces the savings or investments balance.
type SetBalanceRequest struct {
	Value string `json:"value"`
}

// AddVitalsRequest defines the payload for a vitals entry. At least one
// measurement must be set; the domain layer enforces that.
type AddVitalsRequest struct {
	Date   string `json:"date"`
	Weight string `json:"weight"`
	BPSys  string `json:"bpSys"`
	BPDia  string `json:"bpDia"`
	Water  string `json:"water"`
}

// AddMealRequest defines the payload for a meal entry.
type AddMealRequest struct {
	Date     string `json:"date"`
	Type     string `json:"type" validate:"required"`
	Time     string `json:"time"`
	Foods    string `json:"foods" validate:"required"`
	Calories string `json:"calories"`
	Notes    string `json:"notes"`
}

// AddSleepRequest defines the payload for a sleep entry.
type AddSleepRequest struct {
	Date     string `json:"date"`
	Bedtime  string `json:"bedtime" validate:"required"`
	WakeTime string `json:"wakeTime" validate:"required"`
	Quality  string `json:"quality" validate:"required"`
	Notes    string `json:"notes"`
}

// AddBookRequest defines the payload for shelving a book.
type AddBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	Status      string `json:"status"`
	Pages       string `json:"pages"`
	CurrentPage string `json:"currentPage"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// UpdateBookRequest edits a shelved book in place. Absent fields are left
// unchanged.
type UpdateBookRequest struct {
	Status      *string `json:"status"`
	Pages       *string `json:"pages"`
	CurrentPage *string `json:"currentPage"`
	Rating      *string `json:"rating"`
	EndDate     *string `json:"endDate"`
}

// Response payloads

// FinanceSummaryResponse carries the computed finance numbers. Amounts are
// decimal strings; the display field is the abbreviated form.
type FinanceSummaryResponse struct {
	Savings         string `json:"savings"`
	Investments     string `json:"investments"`
	Assets          string `json:"assets"`
	TotalDebt       string `json:"total_debt"`
	TotalExpenses   string `json:"total_expenses"`
	NetWorth        string `json:"net_worth"`
	NetWorthDisplay string `json:"net_worth_display"`
	AssetsPct       int    `json:"assets_pct"`
}

// CategorySumResponse is one row of the spending breakdown.
type CategorySumResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Display  string `json:"display"`
}

// DebtProgressResponse pairs a debt with its repayment standing.
type DebtProgressResponse struct {
	Debt      domain.Debt `json:"debt"`
	Paid      string      `json:"paid"`
	Remaining string      `json:"remaining"`
	PctRepaid float64     `json:"pct_repaid"`
}

// OverviewResponse is the cross-domain dashboard payload.
type OverviewResponse struct {
	Summary  FinanceSummaryResponse   `json:"summary"`
	Sleep    *analytics.SleepAverage  `json:"sleep,omitempty"`
	Insights []analytics.Insight      `json:"insights"`
	Activity []analytics.ActivityItem `json:"activity"`
	Loading  bool                     `json:"loading"`
	Syncing  bool                     `json:"syncing"`
}

// FinancesResponse is the finance tab payload.
type FinancesResponse struct {
	Finance   domain.Finance         `json:"finance"`
	Summary   FinanceSummaryResponse `json:"summary"`
	Breakdown []CategorySumResponse  `json:"breakdown"`
	Debts     []DebtProgressResponse `json:"debts"`
}

// HealthResponse is the health tab payload.
type HealthResponse struct {
	Health       domain.Health        `json:"health"`
	LatestVitals *domain.HealthEntry  `json:"latest_vitals,omitempty"`
	AvgWeight    *float64             `json:"avg_weight,omitempty"`
	Today        analytics.MealTotals `json:"today"`
	MealDates    []string             `json:"meal_dates"`
}

// SleepResponse is the sleep tab payload.
type SleepResponse struct {
	Sleep   domain.Sleep            `json:"sleep"`
	Average *analytics.SleepAverage `json:"average,omitempty"`
}

// BookResponse pairs a book with its reading progress. Progress is nil for
// books without a usable page count.
type BookResponse struct {
	Book     domain.Book `json:"book"`
	Progress *float64    `json:"progress,omitempty"`
}

// ReadingResponse is the reading tab payload.
type ReadingResponse struct {
	Books []BookResponse         `json:"books"`
	Stats analytics.ReadingStats `json:"stats"`
}
