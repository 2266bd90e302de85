package domain

import "errors"

// Health entry kinds. An empty entry type is a legacy record written before
// meals were added and is treated as vitals.
const (
	EntryTypeVitals = "vitals"
	EntryTypeMeal   = "meal"
)

// MealType describes one of the fixed meal slots.
type MealType struct {
	ID        string
	Label     string
	Suggested string // suggested clock time for the slot
}

// MealTypes is the fixed enumeration of meal slots.
var MealTypes = []MealType{
	{ID: "breakfast", Label: "Breakfast", Suggested: "07:00"},
	{ID: "lunch", Label: "Lunch", Suggested: "13:00"},
	{ID: "dinner", Label: "Dinner", Suggested: "19:00"},
	{ID: "snack", Label: "Snack", Suggested: "16:00"},
}

// MealTypeByID looks up a meal slot by its identifier.
func MealTypeByID(id string) (MealType, bool) {
	for _, m := range MealTypes {
		if m.ID == id {
			return m, true
		}
	}
	return MealType{}, false
}

// Health-specific validation errors
var (
	// ErrVitalsEmpty is returned when a vitals entry carries no measurement at all.
	ErrVitalsEmpty = errors.New("vitals entry needs at least one measurement")

	// ErrMealFoodsEmpty is returned when a meal entry has no foods text.
	ErrMealFoodsEmpty = errors.New("meal entry foods cannot be empty")

	// ErrMealTypeUnknown is returned when a meal type is not a known meal slot.
	ErrMealTypeUnknown = errors.New("meal type is not a known meal slot")
)

// HealthEntry is one record in the health domain. Two kinds share the
// sequence, distinguished by EntryType: vitals entries use the measurement
// fields, meal entries use the meal fields. Kind-specific fields are
// omitted from JSON when empty so records keep the shape they were
// created with.
type HealthEntry struct {
	ID        int64  `json:"id"`
	EntryType string `json:"entryType,omitempty"`
	Date      string `json:"date"`

	// vitals
	Weight string `json:"weight,omitempty"`
	BPSys  string `json:"bpSys,omitempty"`
	BPDia  string `json:"bpDia,omitempty"`
	Water  string `json:"water,omitempty"`

	// meal
	Type     string `json:"type,omitempty"`
	Time     string `json:"time,omitempty"`
	Foods    string `json:"foods,omitempty"`
	Calories string `json:"calories,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// IsVitals reports whether the entry is a vitals record. Entries with no
// entry type are legacy vitals records.
func (e HealthEntry) IsVitals() bool {
	return e.EntryType == EntryTypeVitals || e.EntryType == ""
}

// IsMeal reports whether the entry is a meal record.
func (e HealthEntry) IsMeal() bool {
	return e.EntryType == EntryTypeMeal
}

// NewVitalsEntry creates a vitals entry dated to the given ISO date (today
// when empty). At least one of weight, systolic pressure, or water must be
// provided.
func NewVitalsEntry(date, weight, bpSys, bpDia, water string) (*HealthEntry, error) {
	if date == "" {
		date = Today()
	}
	e := &HealthEntry{
		ID:        NewEntryID(),
		EntryType: EntryTypeVitals,
		Date:      date,
		Weight:    weight,
		BPSys:     bpSys,
		BPDia:     bpDia,
		Water:     water,
	}
	if e.Weight == "" && e.BPSys == "" && e.Water == "" {
		return nil, ErrVitalsEmpty
	}
	return e, nil
}

// NewMealEntry creates a meal entry dated to the given ISO date (today when
// empty). The clock time defaults to the slot's suggested time when empty.
func NewMealEntry(date, mealType, clock, foods, calories, notes string) (*HealthEntry, error) {
	if foods == "" {
		return nil, ErrMealFoodsEmpty
	}
	slot, ok := MealTypeByID(mealType)
	if !ok {
		return nil, ErrMealTypeUnknown
	}
	if date == "" {
		date = Today()
	}
	if clock == "" {
		clock = slot.Suggested
	}
	return &HealthEntry{
		ID:        NewEntryID(),
		EntryType: EntryTypeMeal,
		Date:      date,
		Type:      mealType,
		Time:      clock,
		Foods:     foods,
		Calories:  calories,
		Notes:     notes,
	}, nil
}

// Health is the health domain record: a single sequence of vitals and meal
// entries, newest first.
type Health struct {
	Entries []HealthEntry `json:"entries"`
}

// DefaultHealth returns the initial health record for a user with no data.
func DefaultHealth() Health {
	return Health{Entries: []HealthEntry{}}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (h Health) Clone() Health {
	out := h
	out.Entries = make([]HealthEntry, len(h.Entries))
	copy(out.Entries, h.Entries)
	return out
}
