package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lifetrack-api/internal/domain"
)

func TestAverageSleep(t *testing.T) {
	t.Parallel()

	entries := []domain.SleepEntry{
		{Date: "2026-08-30", Duration: "6.5", Quality: "3"},
		{Date: "2026-08-29", Duration: "7.0", Quality: "4"},
		{Date: "2026-08-28", Duration: "8.0", Quality: "5"},
	}

	avg := AverageSleep(entries)
	require.NotNil(t, avg)
	assert.InDelta(t, 7.2, avg.Duration, 0.001, "(6.5+7.0+8.0)/3 rounds to 7.2")
	assert.InDelta(t, 4.0, avg.Quality, 0.001)
	assert.Equal(t, 3, avg.Nights)
}

func TestAverageSleepNoEntries(t *testing.T) {
	t.Parallel()

	assert.Nil(t, AverageSleep(nil))
	assert.Nil(t, AverageSleep([]domain.SleepEntry{{Date: "2026-08-30", Duration: ""}}))
}

func TestAverageSleepWindowIsAPrefix(t *testing.T) {
	t.Parallel()

	// Seven newest entries have no duration; the eighth does but sits
	// outside the window, so the average is empty.
	entries := make([]domain.SleepEntry, 0, 8)
	for i := 0; i < 7; i++ {
		entries = append(entries, domain.SleepEntry{Date: fmt.Sprintf("2026-08-%02d", 30-i)})
	}
	entries = append(entries, domain.SleepEntry{Date: "2026-08-23", Duration: "8.0", Quality: "5"})

	assert.Nil(t, AverageSleep(entries), "entries beyond the newest seven must not count")
}

func TestAverageSleepSkipsEntriesWithoutDuration(t *testing.T) {
	t.Parallel()

	entries := []domain.SleepEntry{
		{Date: "2026-08-30", Duration: "6.0", Quality: "3"},
		{Date: "2026-08-29"},
		{Date: "2026-08-28", Duration: "8.0", Quality: "5"},
	}

	avg := AverageSleep(entries)
	require.NotNil(t, avg)
	assert.InDelta(t, 7.0, avg.Duration, 0.001)
	assert.Equal(t, 2, avg.Nights)
}
