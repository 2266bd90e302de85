package domain

import (
	"errors"
	"testing"
)

func TestNewBook(t *testing.T) {
	t.Parallel()

	b, err := NewBook("Things Fall Apart", "Chinua Achebe", "Reading", "209", "50", "0", "Fiction", "2026-08-01", "", 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if b.Color != BookColors[0] {
		t.Errorf("Expected first palette color, got %q", b.Color)
	}

	// Defaults: status Reading, rating 0, start date today.
	b, err = NewBook("Untitled", "", "", "", "", "", "", "", "", 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if b.Status != BookStatusReading || b.Rating != "0" || b.StartDate != Today() {
		t.Errorf("Unexpected defaults: %+v", b)
	}

	_, err = NewBook("", "", "", "", "", "", "", "", "", 0)
	if !errors.Is(err, ErrBookTitleEmpty) {
		t.Errorf("Expected %v, got %v", ErrBookTitleEmpty, err)
	}

	_, err = NewBook("X", "", "Shelved", "", "", "", "", "", "", 0)
	if !errors.Is(err, ErrBookStatusUnknown) {
		t.Errorf("Expected %v, got %v", ErrBookStatusUnknown, err)
	}

	_, err = NewBook("X", "", "", "", "", "9", "", "", "", 0)
	if !errors.Is(err, ErrBookRatingRange) {
		t.Errorf("Expected %v, got %v", ErrBookRatingRange, err)
	}
}

func TestBookColorCycles(t *testing.T) {
	t.Parallel()

	for i := 0; i < len(BookColors)*2; i++ {
		b, err := NewBook("Book", "", "", "", "", "", "", "", "", i)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := BookColors[i%len(BookColors)]
		if b.Color != want {
			t.Errorf("Shelf size %d: expected color %q, got %q", i, want, b.Color)
		}
	}
}

func TestEntryIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := NewEntryID()
		if seen[id] {
			t.Fatalf("Duplicate entry ID %d", id)
		}
		seen[id] = true
	}
}
