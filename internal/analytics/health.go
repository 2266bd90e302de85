package analytics

import (
	"sort"
	"strings"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// VitalsSnapshot is the latest vitals entry plus the running weight
// average across every entry that recorded one.
type VitalsSnapshot struct {
	Latest *domain.HealthEntry
	// AvgWeight is rounded to one decimal place; HasAvgWeight is false
	// when no entry carries a weight.
	AvgWeight    float64
	HasAvgWeight bool
}

// LatestVitals finds the newest vitals entry and the average weight.
// Entries are newest-first, so the first vitals entry wins.
func LatestVitals(entries []domain.HealthEntry) VitalsSnapshot {
	var snap VitalsSnapshot
	for i := range entries {
		if entries[i].IsVitals() {
			e := entries[i]
			snap.Latest = &e
			break
		}
	}

	var sum float64
	var n int
	for _, e := range entries {
		if !e.IsVitals() || strings.TrimSpace(e.Weight) == "" {
			continue
		}
		sum += number(e.Weight)
		n++
	}
	if n > 0 {
		snap.AvgWeight = round1(sum / float64(n))
		snap.HasAvgWeight = true
	}
	return snap
}

// MealTotals sums the meals logged on the given date.
type MealTotals struct {
	Calories float64
	Count    int
}

// MealsOn totals the meals for one day.
func MealsOn(entries []domain.HealthEntry, date string) MealTotals {
	var t MealTotals
	for _, e := range entries {
		if e.IsMeal() && e.Date == date {
			t.Calories += number(e.Calories)
			t.Count++
		}
	}
	return t
}

// MealDates returns the distinct dates with at least one meal, newest
// first.
func MealDates(entries []domain.HealthEntry) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, e := range entries {
		if !e.IsMeal() {
			continue
		}
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// MealsFor returns the meal entries logged on date, in log order.
func MealsFor(entries []domain.HealthEntry, date string) []domain.HealthEntry {
	var meals []domain.HealthEntry
	for _, e := range entries {
		if e.IsMeal() && e.Date == date {
			meals = append(meals, e)
		}
	}
	return meals
}
