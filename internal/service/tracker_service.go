package service

import (
	"log/slog"
	"strconv"

	"github.com/phrazzld/lifetrack-api/internal/domain"
	"github.com/phrazzld/lifetrack-api/internal/syncer"
)

// TrackerService exposes the tracker operations for one owner's engine.
// Operations validate through the domain constructors, mutate the engine
// synchronously, and return the created or updated entity. New entries are
// prepended; every list stays newest first.
type TrackerService struct {
	engine *syncer.Engine
	logger *slog.Logger
}

// NewTrackerService binds a service to an engine.
func NewTrackerService(engine *syncer.Engine, logger *slog.Logger) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackerService{
		engine: engine,
		logger: logger.With(slog.String("component", "tracker_service")),
	}
}

// --- finance ---

// AddExpense records a spend entry.
func (s *TrackerService) AddExpense(amount, category, note, date string) (*domain.Expense, error) {
	expense, err := domain.NewExpense(amount, category, note, date)
	if err != nil {
		return nil, NewTrackerServiceError("add_expense", "invalid expense", err)
	}
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		f.Expenses = append([]domain.Expense{*expense}, f.Expenses...)
		return f
	})
	return expense, nil
}

// RemoveExpense deletes an expense by id.
func (s *TrackerService) RemoveExpense(id int64) error {
	found := false
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		kept := f.Expenses[:0]
		for _, e := range f.Expenses {
			if e.ID == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		f.Expenses = kept
		return f
	})
	if !found {
		return NewTrackerServiceError("remove_expense", "no expense with that id", ErrEntryNotFound)
	}
	return nil
}

// SetSavings replaces the savings balance. The value is stored as entered.
func (s *TrackerService) SetSavings(value string) {
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		f.Savings = value
		return f
	})
}

// SetInvestments replaces the investments balance.
func (s *TrackerService) SetInvestments(value string) {
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		f.Investments = value
		return f
	})
}

// AddDebt records an obligation.
func (s *TrackerService) AddDebt(name, debtType, amount, remaining, interestRate, dueDate, note string) (*domain.Debt, error) {
	debt, err := domain.NewDebt(name, debtType, amount, remaining, interestRate, dueDate, note)
	if err != nil {
		return nil, NewTrackerServiceError("add_debt", "invalid debt", err)
	}
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		f.Debts = append([]domain.Debt{*debt}, f.Debts...)
		return f
	})
	return debt, nil
}

// UpdateDebtRemaining edits one debt's outstanding balance in place. The
// balance is deliberately not checked against the original amount.
func (s *TrackerService) UpdateDebtRemaining(id int64, remaining string) (*domain.Debt, error) {
	var updated *domain.Debt
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		for i := range f.Debts {
			if f.Debts[i].ID == id {
				f.Debts[i].Remaining = remaining
				d := f.Debts[i]
				updated = &d
				break
			}
		}
		return f
	})
	if updated == nil {
		return nil, NewTrackerServiceError("update_debt", "no debt with that id", ErrEntryNotFound)
	}
	return updated, nil
}

// RemoveDebt deletes a debt by id.
func (s *TrackerService) RemoveDebt(id int64) error {
	found := false
	s.engine.MutateFinance(func(f domain.Finance) domain.Finance {
		kept := f.Debts[:0]
		for _, d := range f.Debts {
			if d.ID == id {
				found = true
				continue
			}
			kept = append(kept, d)
		}
		f.Debts = kept
		return f
	})
	if !found {
		return NewTrackerServiceError("remove_debt", "no debt with that id", ErrEntryNotFound)
	}
	return nil
}

// --- health ---

// AddVitals records a vitals entry. At least one measurement is required.
func (s *TrackerService) AddVitals(date, weight, bpSys, bpDia, water string) (*domain.HealthEntry, error) {
	entry, err := domain.NewVitalsEntry(date, weight, bpSys, bpDia, water)
	if err != nil {
		return nil, NewTrackerServiceError("add_vitals", "invalid vitals entry", err)
	}
	s.engine.MutateHealth(func(h domain.Health) domain.Health {
		h.Entries = append([]domain.HealthEntry{*entry}, h.Entries...)
		return h
	})
	return entry, nil
}

// AddMeal records a meal entry.
func (s *TrackerService) AddMeal(date, mealType, clock, foods, calories, notes string) (*domain.HealthEntry, error) {
	entry, err := domain.NewMealEntry(date, mealType, clock, foods, calories, notes)
	if err != nil {
		return nil, NewTrackerServiceError("add_meal", "invalid meal entry", err)
	}
	s.engine.MutateHealth(func(h domain.Health) domain.Health {
		h.Entries = append([]domain.HealthEntry{*entry}, h.Entries...)
		return h
	})
	return entry, nil
}

// RemoveHealthEntry deletes a vitals or meal entry by id.
func (s *TrackerService) RemoveHealthEntry(id int64) error {
	found := false
	s.engine.MutateHealth(func(h domain.Health) domain.Health {
		kept := h.Entries[:0]
		for _, e := range h.Entries {
			if e.ID == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		h.Entries = kept
		return h
	})
	if !found {
		return NewTrackerServiceError("remove_health_entry", "no entry with that id", ErrEntryNotFound)
	}
	return nil
}

// --- sleep ---

// AddSleepEntry records a night. Duration is computed from the two clock
// times at creation and stored on the entry.
func (s *TrackerService) AddSleepEntry(date, bedtime, wakeTime, quality, notes string) (*domain.SleepEntry, error) {
	entry, err := domain.NewSleepEntry(date, bedtime, wakeTime, quality, notes)
	if err != nil {
		return nil, NewTrackerServiceError("add_sleep_entry", "invalid sleep entry", err)
	}
	s.engine.MutateSleep(func(sl domain.Sleep) domain.Sleep {
		sl.Entries = append([]domain.SleepEntry{*entry}, sl.Entries...)
		return sl
	})
	return entry, nil
}

// RemoveSleepEntry deletes a sleep entry by id.
func (s *TrackerService) RemoveSleepEntry(id int64) error {
	found := false
	s.engine.MutateSleep(func(sl domain.Sleep) domain.Sleep {
		kept := sl.Entries[:0]
		for _, e := range sl.Entries {
			if e.ID == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		sl.Entries = kept
		return sl
	})
	if !found {
		return NewTrackerServiceError("remove_sleep_entry", "no entry with that id", ErrEntryNotFound)
	}
	return nil
}

// --- reading ---

// AddBook shelves a new book. Its spine color cycles through the fixed
// palette by shelf position at creation time.
func (s *TrackerService) AddBook(title, author, status, pages, currentPage, rating, genre, startDate, endDate string) (*domain.Book, error) {
	shelfSize := len(s.engine.Reading().Books)
	book, err := domain.NewBook(title, author, status, pages, currentPage, rating, genre, startDate, endDate, shelfSize)
	if err != nil {
		return nil, NewTrackerServiceError("add_book", "invalid book", err)
	}
	s.engine.MutateReading(func(r domain.Reading) domain.Reading {
		r.Books = append([]domain.Book{*book}, r.Books...)
		return r
	})
	return book, nil
}

// BookUpdate carries the editable fields of a shelved book. Nil fields are
// left unchanged.
type BookUpdate struct {
	Status      *string
	Pages       *string
	CurrentPage *string
	Rating      *string
	EndDate     *string
}

// UpdateBook edits a book in place by id. The shelf order and the spine
// color assigned at creation are preserved.
func (s *TrackerService) UpdateBook(id int64, update BookUpdate) (*domain.Book, error) {
	if update.Status != nil && !validBookStatus(*update.Status) {
		return nil, NewTrackerServiceError("update_book", "invalid book", domain.ErrBookStatusUnknown)
	}
	if update.Rating != nil {
		if n, err := strconv.Atoi(*update.Rating); err != nil || n < 0 || n > 5 {
			return nil, NewTrackerServiceError("update_book", "invalid book", domain.ErrBookRatingRange)
		}
	}

	var updated *domain.Book
	s.engine.MutateReading(func(r domain.Reading) domain.Reading {
		for i := range r.Books {
			if r.Books[i].ID != id {
				continue
			}
			if update.Status != nil {
				r.Books[i].Status = *update.Status
			}
			if update.Pages != nil {
				r.Books[i].Pages = *update.Pages
			}
			if update.CurrentPage != nil {
				r.Books[i].CurrentPage = *update.CurrentPage
			}
			if update.Rating != nil {
				r.Books[i].Rating = *update.Rating
			}
			if update.EndDate != nil {
				r.Books[i].EndDate = *update.EndDate
			}
			b := r.Books[i]
			updated = &b
			break
		}
		return r
	})
	if updated == nil {
		return nil, NewTrackerServiceError("update_book", "no book with that id", ErrEntryNotFound)
	}
	return updated, nil
}

// RemoveBook deletes a book by id.
func (s *TrackerService) RemoveBook(id int64) error {
	found := false
	s.engine.MutateReading(func(r domain.Reading) domain.Reading {
		kept := r.Books[:0]
		for _, b := range r.Books {
			if b.ID == id {
				found = true
				continue
			}
			kept = append(kept, b)
		}
		r.Books = kept
		return r
	})
	if !found {
		return NewTrackerServiceError("remove_book", "no book with that id", ErrEntryNotFound)
	}
	return nil
}

func validBookStatus(status string) bool {
	for _, s := range domain.BookStatuses {
		if s == status {
			return true
		}
	}
	return false
}
