package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	f := domain.Finance{
		Savings:     "100000",
		Investments: "50000",
		Expenses: []domain.Expense{
			{Amount: "7000", Category: "Food & Dining"},
			{Amount: "3000", Category: "Transport"},
		},
		Debts: []domain.Debt{
			{Name: "Car loan", Amount: "50000", Remaining: "40000"},
		},
	}

	s := Summarize(f)
	assert.True(t, s.Savings.Equal(dec("100000")))
	assert.True(t, s.Assets.Equal(dec("150000")))
	assert.True(t, s.TotalDebt.Equal(dec("40000")), "remaining balance wins over the original amount")
	assert.True(t, s.TotalExpenses.Equal(dec("10000")))
	assert.True(t, s.NetWorth.Equal(dec("110000")))
	assert.Equal(t, 79, s.AssetsPct, "150000 of 190000 rounds to 79")
}

func TestSummarizeDebtFallsBackToAmount(t *testing.T) {
	t.Parallel()

	f := domain.Finance{
		Debts: []domain.Debt{
			{Name: "a", Amount: "1000"},                    // no remaining recorded
			{Name: "b", Amount: "500", Remaining: "0"},     // fully repaid
			{Name: "c", Amount: "200", Remaining: "  "},    // whitespace is absent
			{Name: "d", Amount: "junk", Remaining: "junk"}, // malformed sums as zero
		},
	}

	s := Summarize(f)
	assert.True(t, s.TotalDebt.Equal(dec("1200")), "got %s", s.TotalDebt)
}

func TestSummarizeEmptyState(t *testing.T) {
	t.Parallel()

	s := Summarize(domain.DefaultFinance())
	assert.True(t, s.NetWorth.IsZero())
	assert.Equal(t, 0, s.AssetsPct, "no assets and no debt must not divide by zero")
}

func TestSummarizeNegativeNetWorth(t *testing.T) {
	t.Parallel()

	s := Summarize(domain.Finance{
		Savings: "1000",
		Debts:   []domain.Debt{{Amount: "5000"}},
	})
	assert.True(t, s.NetWorth.Equal(dec("-4000")))
	assert.Equal(t, 17, s.AssetsPct)
}

func TestCategoryBreakdown(t *testing.T) {
	t.Parallel()

	expenses := []domain.Expense{
		{Amount: "3000", Category: "Transport"},
		{Amount: "5000", Category: "Food & Dining"},
		{Amount: "2000", Category: "Food & Dining"},
		{Amount: "", Category: "Travel"},
		{Amount: "bad", Category: "Health"},
	}

	rows := CategoryBreakdown(expenses)
	require.Len(t, rows, 2, "categories without a positive total are dropped")
	assert.Equal(t, "Food & Dining", rows[0].Category)
	assert.True(t, rows[0].Total.Equal(dec("7000")))
	assert.Equal(t, "Transport", rows[1].Category)
	assert.True(t, rows[1].Total.Equal(dec("3000")))
}

func TestCategoryBreakdownTiesKeepEnumerationOrder(t *testing.T) {
	t.Parallel()

	rows := CategoryBreakdown([]domain.Expense{
		{Amount: "100", Category: "Shopping"},
		{Amount: "100", Category: "Transport"},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "Transport", rows[0].Category, "Transport precedes Shopping in the category list")
	assert.Equal(t, "Shopping", rows[1].Category)
}

func TestProgressFor(t *testing.T) {
	t.Parallel()

	p := ProgressFor(domain.Debt{Amount: "1000", Remaining: "250"})
	assert.True(t, p.Paid.Equal(dec("750")))
	assert.InDelta(t, 75.0, p.PctRepaid, 0.001)
}

func TestProgressForClamps(t *testing.T) {
	t.Parallel()

	// Remaining above the original amount: paid clamps at zero.
	p := ProgressFor(domain.Debt{Amount: "1000", Remaining: "1500"})
	assert.True(t, p.Paid.IsZero())
	assert.Zero(t, p.PctRepaid)

	// Zero original amount: progress is zero, not a division error.
	p = ProgressFor(domain.Debt{Amount: "0", Remaining: "0"})
	assert.Zero(t, p.PctRepaid)
}
