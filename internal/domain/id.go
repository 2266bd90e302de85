package domain

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewEntryID returns a millisecond timestamp that is strictly greater than
// any ID previously returned by this process. Entry IDs double as creation
// timestamps, so two entries created in the same millisecond still receive
// distinct IDs.
func NewEntryID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// Today returns the current calendar date as an ISO date string (YYYY-MM-DD).
func Today() string {
	return time.Now().Format("2006-01-02")
}

// NowClock returns the current wall-clock time as HH:MM.
func NowClock() string {
	return time.Now().Format("15:04")
}

// oneOf reports whether v appears in the given fixed enumeration.
func oneOf(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
