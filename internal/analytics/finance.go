package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// FinanceSummary aggregates a finance record into the overview numbers.
type FinanceSummary struct {
	Savings       decimal.Decimal
	Investments   decimal.Decimal
	Assets        decimal.Decimal
	TotalDebt     decimal.Decimal
	TotalExpenses decimal.Decimal
	NetWorth      decimal.Decimal
	// AssetsPct is the asset share of assets+debt as a rounded whole
	// percentage, 0 when there is nothing on either side.
	AssetsPct int
}

// Summarize computes the finance overview. Debt counts the remaining
// balance when one was recorded, otherwise the original amount.
func Summarize(f domain.Finance) FinanceSummary {
	s := FinanceSummary{
		Savings:     amount(f.Savings),
		Investments: amount(f.Investments),
	}
	s.Assets = s.Savings.Add(s.Investments)
	for _, d := range f.Debts {
		s.TotalDebt = s.TotalDebt.Add(debtBalance(d))
	}
	for _, e := range f.Expenses {
		s.TotalExpenses = s.TotalExpenses.Add(amount(e.Amount))
	}
	s.NetWorth = s.Assets.Sub(s.TotalDebt)

	denom := s.Assets.Add(s.TotalDebt)
	if denom.IsPositive() {
		s.AssetsPct = int(s.Assets.Div(denom).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}
	return s
}

// debtBalance is the outstanding balance of one debt: the remaining field
// when present, else the original amount.
func debtBalance(d domain.Debt) decimal.Decimal {
	if strings.TrimSpace(d.Remaining) != "" {
		return amount(d.Remaining)
	}
	return amount(d.Amount)
}

// CategorySum is one row of the spending breakdown.
type CategorySum struct {
	Category string
	Total    decimal.Decimal
}

// CategoryBreakdown sums expenses per category, keeping only categories
// with a positive total, sorted by total descending. Ties retain the fixed
// category enumeration order.
func CategoryBreakdown(expenses []domain.Expense) []CategorySum {
	var rows []CategorySum
	for _, cat := range domain.ExpenseCategories {
		total := decimal.Zero
		for _, e := range expenses {
			if e.Category == cat {
				total = total.Add(amount(e.Amount))
			}
		}
		if total.IsPositive() {
			rows = append(rows, CategorySum{Category: cat, Total: total})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

// DebtProgress describes repayment standing for one debt.
type DebtProgress struct {
	Original  decimal.Decimal
	Remaining decimal.Decimal
	Paid      decimal.Decimal
	// PctRepaid is clamped to [0, 100].
	PctRepaid float64
}

// ProgressFor computes repayment progress. The remaining balance is never
// validated against the original amount, so an overpaid or restated debt
// clamps rather than erroring.
func ProgressFor(d domain.Debt) DebtProgress {
	p := DebtProgress{
		Original:  amount(d.Amount),
		Remaining: debtBalance(d),
	}
	p.Paid = p.Original.Sub(p.Remaining)
	if p.Paid.IsNegative() {
		p.Paid = decimal.Zero
	}
	if p.Original.IsPositive() {
		pct, _ := p.Paid.Div(p.Original).Mul(decimal.NewFromInt(100)).Float64()
		p.PctRepaid = math.Min(pct, 100)
	}
	return p
}
