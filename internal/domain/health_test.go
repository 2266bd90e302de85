package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewVitalsEntry(t *testing.T) {
	t.Parallel()

	e, err := NewVitalsEntry("2026-08-12", "70.5", "120", "80", "2.0")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !e.IsVitals() || e.IsMeal() {
		t.Error("Expected a vitals entry")
	}
	if e.EntryType != EntryTypeVitals {
		t.Errorf("Expected entry type %q, got %q", EntryTypeVitals, e.EntryType)
	}

	// A single measurement is enough.
	if _, err := NewVitalsEntry("", "", "", "", "1.5"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = NewVitalsEntry("", "", "", "", "")
	if !errors.Is(err, ErrVitalsEmpty) {
		t.Errorf("Expected %v, got %v", ErrVitalsEmpty, err)
	}
}

func TestNewMealEntry(t *testing.T) {
	t.Parallel()

	e, err := NewMealEntry("2026-08-12", "lunch", "13:30", "Jollof rice", "450", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !e.IsMeal() {
		t.Error("Expected a meal entry")
	}

	// Empty clock time falls back to the slot's suggested time.
	e, err = NewMealEntry("", "breakfast", "", "Toast", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if e.Time != "07:00" {
		t.Errorf("Expected suggested time 07:00, got %q", e.Time)
	}

	_, err = NewMealEntry("", "lunch", "", "", "", "")
	if !errors.Is(err, ErrMealFoodsEmpty) {
		t.Errorf("Expected %v, got %v", ErrMealFoodsEmpty, err)
	}

	_, err = NewMealEntry("", "brunch", "", "Eggs", "", "")
	if !errors.Is(err, ErrMealTypeUnknown) {
		t.Errorf("Expected %v, got %v", ErrMealTypeUnknown, err)
	}
}

func TestLegacyEntryIsVitals(t *testing.T) {
	t.Parallel()

	// Records written before meals existed have no entryType tag.
	var e HealthEntry
	if err := json.Unmarshal([]byte(`{"id":1,"date":"2025-01-01","weight":"71"}`), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !e.IsVitals() {
		t.Error("Expected untagged entry to count as vitals")
	}
	if e.IsMeal() {
		t.Error("Expected untagged entry not to count as a meal")
	}
}

func TestMealEntryJSONOmitsVitalsFields(t *testing.T) {
	t.Parallel()

	e, err := NewMealEntry("2026-08-12", "dinner", "19:00", "Pasta", "600", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"weight", "bpSys", "bpDia", "water"} {
		if _, present := fields[key]; present {
			t.Errorf("Expected %q to be omitted from a meal entry", key)
		}
	}
}

func TestMealTypeByID(t *testing.T) {
	t.Parallel()

	slot, ok := MealTypeByID("snack")
	if !ok || slot.Label != "Snack" || slot.Suggested != "16:00" {
		t.Errorf("Unexpected slot %+v ok=%v", slot, ok)
	}
	if _, ok := MealTypeByID("supper"); ok {
		t.Error("Expected unknown slot lookup to fail")
	}
}
