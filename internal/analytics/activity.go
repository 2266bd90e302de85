package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// ActivityItem is one line of the recent activity feed.
type ActivityItem struct {
	Date  string `json:"date"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// RecentActivity builds the cross-domain feed: up to two expenses, the
// latest vitals entry, the latest meal, and the latest sleep entry, merged
// by date descending and truncated to six items. Each list is newest-first
// already, so "latest" is a prefix take.
func RecentActivity(f domain.Finance, h domain.Health, s domain.Sleep) []ActivityItem {
	var items []ActivityItem

	for i, e := range f.Expenses {
		if i == 2 {
			break
		}
		label := e.Note
		if strings.TrimSpace(label) == "" {
			label = e.Category
		}
		items = append(items, ActivityItem{
			Date:  e.Date,
			Text:  "Expense: " + label,
			Value: "−" + FormatNaira(amount(e.Amount)),
		})
	}

	for _, e := range h.Entries {
		if e.IsVitals() {
			text := "Vitals logged"
			if strings.TrimSpace(e.Weight) != "" {
				text += fmt.Sprintf(" · %skg", e.Weight)
			}
			items = append(items, ActivityItem{Date: e.Date, Text: text, Value: "🫀"})
			break
		}
	}

	for _, e := range h.Entries {
		if e.IsMeal() {
			value := "🍽️"
			if strings.TrimSpace(e.Calories) != "" {
				value = e.Calories + " cal"
			}
			items = append(items, ActivityItem{Date: e.Date, Text: "Meal: " + e.Foods, Value: value})
			break
		}
	}

	if len(s.Entries) > 0 {
		e := s.Entries[0]
		items = append(items, ActivityItem{
			Date:  e.Date,
			Text:  fmt.Sprintf("Sleep: %sh recorded", e.Duration),
			Value: fmt.Sprintf("Q %s/5", e.Quality),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	if len(items) > 6 {
		items = items[:6]
	}
	return items
}
