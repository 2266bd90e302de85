package domain

import "errors"

// ExpenseCategories is the fixed enumeration of expense categories.
var ExpenseCategories = []string{
	"Food & Dining",
	"Transport",
	"Entertainment",
	"Shopping",
	"Bills & Utilities",
	"Health",
	"Travel",
	"Other",
}

// DebtTypes is the fixed enumeration of debt types.
var DebtTypes = []string{
	"Loan",
	"Credit Card",
	"Mortgage",
	"Personal Debt",
	"Business Debt",
	"Other",
}

// Finance-specific validation errors
var (
	// ErrExpenseAmountEmpty is returned when an expense has no amount.
	ErrExpenseAmountEmpty = errors.New("expense amount cannot be empty")

	// ErrExpenseCategoryUnknown is returned when an expense category is not
	// in the fixed enumeration.
	ErrExpenseCategoryUnknown = errors.New("expense category is not a known category")

	// ErrDebtNameEmpty is returned when a debt has no name.
	ErrDebtNameEmpty = errors.New("debt name cannot be empty")

	// ErrDebtAmountEmpty is returned when a debt has no original amount.
	ErrDebtAmountEmpty = errors.New("debt amount cannot be empty")

	// ErrDebtTypeUnknown is returned when a debt type is not in the fixed enumeration.
	ErrDebtTypeUnknown = errors.New("debt type is not a known type")
)

// Expense is a single spend entry. Amount is kept as the string the user
// entered; a positive decimal is expected but not enforced.
type Expense struct {
	ID       int64  `json:"id"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Note     string `json:"note"`
	Date     string `json:"date"`
}

// NewExpense creates an expense dated to the given ISO date (today when
// empty) and assigns a creation-time ID. Returns an error if validation fails.
func NewExpense(amount, category, note, date string) (*Expense, error) {
	if date == "" {
		date = Today()
	}
	e := &Expense{
		ID:       NewEntryID(),
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     date,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the expense fields. IDs are never revalidated after creation.
func (e *Expense) Validate() error {
	if e.Amount == "" {
		return ErrExpenseAmountEmpty
	}
	if !oneOf(ExpenseCategories, e.Category) {
		return ErrExpenseCategoryUnknown
	}
	return nil
}

// Debt tracks an obligation. Remaining is the outstanding balance and may be
// edited independently over time; it is deliberately never validated against
// Amount, so "paid" can read as zero when remaining exceeds the original.
type Debt struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	Remaining    string `json:"remaining"`
	InterestRate string `json:"interestRate"`
	DueDate      string `json:"dueDate"`
	Note         string `json:"note"`
}

// NewDebt creates a debt with a creation-time ID. An empty remaining balance
// defaults to the original amount. Returns an error if validation fails.
func NewDebt(name, debtType, amount, remaining, interestRate, dueDate, note string) (*Debt, error) {
	if remaining == "" {
		remaining = amount
	}
	d := &Debt{
		ID:           NewEntryID(),
		Name:         name,
		Type:         debtType,
		Amount:       amount,
		Remaining:    remaining,
		InterestRate: interestRate,
		DueDate:      dueDate,
		Note:         note,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the debt fields.
func (d *Debt) Validate() error {
	if d.Name == "" {
		return ErrDebtNameEmpty
	}
	if d.Amount == "" {
		return ErrDebtAmountEmpty
	}
	if !oneOf(DebtTypes, d.Type) {
		return ErrDebtTypeUnknown
	}
	return nil
}

// Finance is the finance domain record: two scalar balances plus the expense
// and debt sequences, both newest first.
type Finance struct {
	Savings     string    `json:"savings"`
	Investments string    `json:"investments"`
	Expenses    []Expense `json:"expenses"`
	Debts       []Debt    `json:"debts"`
}

// DefaultFinance returns the initial finance record for a user with no data.
func DefaultFinance() Finance {
	return Finance{
		Savings:     "",
		Investments: "",
		Expenses:    []Expense{},
		Debts:       []Debt{},
	}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (f Finance) Clone() Finance {
	out := f
	out.Expenses = make([]Expense, len(f.Expenses))
	copy(out.Expenses, f.Expenses)
	out.Debts = make([]Debt, len(f.Debts))
	copy(out.Debts, f.Debts)
	return out
}
