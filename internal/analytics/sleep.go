package analytics

import (
	"strings"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

// SleepAverage reports the recent sleep trend, both values rounded to one
// decimal place.
type SleepAverage struct {
	Duration float64
	Quality  float64
	Nights   int
}

// AverageSleep looks at the seven newest entries and averages those that
// have a computed duration. Entries are newest-first, so this is a prefix
// of the log, not a scan for the last seven usable nights. Returns nil
// when no entry in the window qualifies.
func AverageSleep(entries []domain.SleepEntry) *SleepAverage {
	window := entries
	if len(window) > 7 {
		window = window[:7]
	}

	var durationSum, qualitySum float64
	var n int
	for _, e := range window {
		if strings.TrimSpace(e.Duration) == "" {
			continue
		}
		durationSum += number(e.Duration)
		qualitySum += number(e.Quality)
		n++
	}
	if n == 0 {
		return nil
	}
	return &SleepAverage{
		Duration: round1(durationSum / float64(n)),
		Quality:  round1(qualitySum / float64(n)),
		Nights:   n,
	}
}
