package analytics

import (
	"fmt"
	"strconv"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// Insight kinds, in rough severity order.
const (
	InsightWarn = "warn"
	InsightGood = "good"
	InsightInfo = "info"
)

// Insight is one rule-driven observation shown on the overview.
type Insight struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Insights evaluates the fixed rule set against the current snapshots.
// Rules fire independently and always in the same order, so the output is
// deterministic for a given state. today is the date meals are counted
// against.
func Insights(f domain.Finance, h domain.Health, s domain.Sleep, r domain.Reading, today string) []Insight {
	insights := []Insight{}

	avg := AverageSleep(s.Entries)
	if avg != nil && avg.Duration < 7 {
		insights = append(insights, Insight{
			Type: InsightWarn,
			Text: fmt.Sprintf("Averaging %sh sleep — below the 7h goal", strconv.FormatFloat(avg.Duration, 'f', 1, 64)),
		})
	}
	if avg != nil && avg.Duration >= 7 {
		insights = append(insights, Insight{
			Type: InsightGood,
			Text: fmt.Sprintf("Great sleep average: %sh over 7 nights", strconv.FormatFloat(avg.Duration, 'f', 1, 64)),
		})
	}

	// Water rules read the latest vitals entry whether or not it is from
	// today. A logged "0" is low intake; an unlogged value fires nothing.
	if latest := LatestVitals(h.Entries).Latest; latest != nil {
		if water, ok := display(latest.Water); ok {
			if water >= 2 {
				insights = append(insights, Insight{
					Type: InsightGood,
					Text: fmt.Sprintf("Hitting water goals — %sL logged", latest.Water),
				})
			}
			if water < 1.5 {
				insights = append(insights, Insight{
					Type: InsightWarn,
					Text: fmt.Sprintf("Water intake low — only %sL logged", latest.Water),
				})
			}
		}
	}

	if meals := MealsOn(h.Entries, today); meals.Count > 0 {
		text := fmt.Sprintf("%d meal%s logged today", meals.Count, plural(meals.Count))
		if meals.Calories > 0 {
			text += fmt.Sprintf(" · %s cal", formatNumber(meals.Calories))
		}
		insights = append(insights, Insight{Type: InsightInfo, Text: text})
	}

	summary := Summarize(f)
	if summary.TotalDebt.IsPositive() && summary.TotalDebt.GreaterThan(summary.Savings) {
		insights = append(insights, Insight{Type: InsightWarn, Text: "Total debt exceeds savings"})
	}
	if summary.NetWorth.IsPositive() && summary.TotalDebt.IsZero() {
		insights = append(insights, Insight{Type: InsightGood, Text: "Debt-free! Your net worth is fully backed by assets"})
	}

	if reading := ShelfStats(r.Books).Reading; reading > 0 {
		insights = append(insights, Insight{
			Type: InsightInfo,
			Text: fmt.Sprintf("Currently reading %d book%s", reading, plural(reading)),
		})
	}

	return insights
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
