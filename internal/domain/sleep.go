package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Sleep-specific validation errors
var (
	// ErrSleepTimesMissing is returned when a sleep entry lacks a bedtime or wake time.
	ErrSleepTimesMissing = errors.New("sleep entry needs both bedtime and wake time")

	// ErrSleepQualityRange is returned when quality is not an integer from 1 to 5.
	ErrSleepQualityRange = errors.New("sleep quality must be an integer from 1 to 5")
)

// SleepEntry is one night's record. Duration is derived once at creation
// from bedtime and wake time and stored; it is never recomputed afterwards.
type SleepEntry struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Bedtime  string `json:"bedtime"`
	WakeTime string `json:"wakeTime"`
	Quality  string `json:"quality"`
	Notes    string `json:"notes"`
	Duration string `json:"duration"` // hours, one decimal place
}

// NewSleepEntry creates a sleep entry dated to the given ISO date (today
// when empty), computing and storing the duration.
func NewSleepEntry(date, bedtime, wakeTime, quality, notes string) (*SleepEntry, error) {
	if bedtime == "" || wakeTime == "" {
		return nil, ErrSleepTimesMissing
	}
	if q, err := strconv.Atoi(quality); err != nil || q < 1 || q > 5 {
		return nil, ErrSleepQualityRange
	}
	if date == "" {
		date = Today()
	}
	return &SleepEntry{
		ID:       NewEntryID(),
		Date:     date,
		Bedtime:  bedtime,
		WakeTime: wakeTime,
		Quality:  quality,
		Notes:    notes,
		Duration: ComputeDuration(bedtime, wakeTime),
	}, nil
}

// ComputeDuration returns the hours between bedtime and wake time as a
// one-decimal string. A wake time earlier than bedtime is taken to cross
// midnight. Returns an empty string when either time is missing or malformed.
func ComputeDuration(bedtime, wakeTime string) string {
	bh, bm, ok := parseClock(bedtime)
	if !ok {
		return ""
	}
	wh, wm, ok := parseClock(wakeTime)
	if !ok {
		return ""
	}
	mins := (wh*60 + wm) - (bh*60 + bm)
	if mins < 0 {
		mins += 24 * 60
	}
	return strconv.FormatFloat(float64(mins)/60, 'f', 1, 64)
}

// parseClock parses an HH:MM clock string.
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// Sleep is the sleep domain record: one sequence of entries, newest first.
type Sleep struct {
	Entries []SleepEntry `json:"entries"`
}

// DefaultSleep returns the initial sleep record for a user with no data.
func DefaultSleep() Sleep {
	return Sleep{Entries: []SleepEntry{}}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (s Sleep) Clone() Sleep {
	out := s
	out.Entries = make([]SleepEntry, len(s.Entries))
	copy(out.Entries, s.Entries)
	return out
}
