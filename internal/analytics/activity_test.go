package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

func TestRecentActivityEmptyState(t *testing.T) {
	t.Parallel()

	items := RecentActivity(domain.DefaultFinance(), domain.DefaultHealth(), domain.DefaultSleep())
	assert.Empty(t, items)
}

func TestRecentActivityMergesDomains(t *testing.T) {
	t.Parallel()

	f := domain.Finance{Expenses: []domain.Expense{
		{Date: "2026-08-30", Amount: "1500", Note: "Lunch", Category: "Food & Dining"},
		{Date: "2026-08-27", Amount: "3000", Note: "", Category: "Transport"},
		{Date: "2026-08-26", Amount: "9999", Note: "ignored", Category: "Other"},
	}}
	h := domain.Health{Entries: []domain.HealthEntry{
		{EntryType: domain.EntryTypeMeal, Date: "2026-08-29", Foods: "rice and stew", Calories: "600"},
		{EntryType: domain.EntryTypeVitals, Date: "2026-08-28", Weight: "70"},
	}}
	s := domain.Sleep{Entries: []domain.SleepEntry{
		{Date: "2026-08-30", Duration: "7.5", Quality: "4"},
	}}

	items := RecentActivity(f, h, s)
	require.Len(t, items, 5, "two expenses, one vitals, one meal, one sleep")

	assert.Equal(t, ActivityItem{Date: "2026-08-30", Text: "Expense: Lunch", Value: "−₦1,500"}, items[0])
	assert.Equal(t, ActivityItem{Date: "2026-08-30", Text: "Sleep: 7.5h recorded", Value: "Q 4/5"}, items[1])
	assert.Equal(t, ActivityItem{Date: "2026-08-29", Text: "Meal: rice and stew", Value: "600 cal"}, items[2])
	assert.Equal(t, ActivityItem{Date: "2026-08-28", Text: "Vitals logged · 70kg", Value: "🫀"}, items[3])
	assert.Equal(t, ActivityItem{Date: "2026-08-27", Text: "Expense: Transport", Value: "−₦3,000"}, items[4])
}

func TestRecentActivityFallbackValues(t *testing.T) {
	t.Parallel()

	h := domain.Health{Entries: []domain.HealthEntry{
		{EntryType: domain.EntryTypeVitals, Date: "2026-08-30", Water: "2"},
		{EntryType: domain.EntryTypeMeal, Date: "2026-08-30", Foods: "tea"},
	}}

	items := RecentActivity(domain.DefaultFinance(), h, domain.DefaultSleep())
	require.Len(t, items, 2)
	assert.Equal(t, "Vitals logged", items[0].Text, "no weight, no suffix")
	assert.Equal(t, "🍽️", items[1].Value, "no calories, emoji placeholder")
}

func TestRecentActivityMissingDatesSortLast(t *testing.T) {
	t.Parallel()

	f := domain.Finance{Expenses: []domain.Expense{
		{Date: "", Amount: "100", Category: "Other"},
	}}
	s := domain.Sleep{Entries: []domain.SleepEntry{
		{Date: "2026-08-26", Duration: "7.0", Quality: "3"},
	}}

	items := RecentActivity(f, domain.DefaultHealth(), s)
	require.Len(t, items, 2)
	assert.Equal(t, "2026-08-26", items[0].Date)
	assert.Equal(t, "", items[1].Date)
}
