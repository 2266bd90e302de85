package domain

import (
	"errors"
	"testing"
)

func TestNewExpense(t *testing.T) {
	t.Parallel()

	exp, err := NewExpense("5000", "Food & Dining", "lunch", "2026-08-12")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if exp.ID == 0 {
		t.Error("Expected non-zero ID")
	}
	if exp.Amount != "5000" || exp.Category != "Food & Dining" || exp.Date != "2026-08-12" {
		t.Errorf("Unexpected expense fields: %+v", exp)
	}

	// Empty date defaults to today.
	exp, err = NewExpense("100", "Transport", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if exp.Date != Today() {
		t.Errorf("Expected date %q, got %q", Today(), exp.Date)
	}

	_, err = NewExpense("", "Transport", "", "")
	if !errors.Is(err, ErrExpenseAmountEmpty) {
		t.Errorf("Expected %v, got %v", ErrExpenseAmountEmpty, err)
	}

	_, err = NewExpense("100", "Groceries", "", "")
	if !errors.Is(err, ErrExpenseCategoryUnknown) {
		t.Errorf("Expected %v, got %v", ErrExpenseCategoryUnknown, err)
	}
}

func TestNewDebt(t *testing.T) {
	t.Parallel()

	d, err := NewDebt("GTBank Loan", "Loan", "500000", "", "15", "2027-01-01", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Remaining != "500000" {
		t.Errorf("Expected remaining to default to amount, got %q", d.Remaining)
	}

	d, err = NewDebt("Card", "Credit Card", "60000", "40000", "", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Remaining != "40000" {
		t.Errorf("Expected remaining 40000, got %q", d.Remaining)
	}

	_, err = NewDebt("", "Loan", "100", "", "", "", "")
	if !errors.Is(err, ErrDebtNameEmpty) {
		t.Errorf("Expected %v, got %v", ErrDebtNameEmpty, err)
	}

	_, err = NewDebt("X", "Loan", "", "", "", "", "")
	if !errors.Is(err, ErrDebtAmountEmpty) {
		t.Errorf("Expected %v, got %v", ErrDebtAmountEmpty, err)
	}

	_, err = NewDebt("X", "Margin Call", "100", "", "", "", "")
	if !errors.Is(err, ErrDebtTypeUnknown) {
		t.Errorf("Expected %v, got %v", ErrDebtTypeUnknown, err)
	}

	// Remaining above the original amount is deliberately allowed.
	d, err = NewDebt("X", "Loan", "100", "250", "", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Remaining != "250" {
		t.Errorf("Expected remaining 250, got %q", d.Remaining)
	}
}

func TestFinanceClone(t *testing.T) {
	t.Parallel()

	f := DefaultFinance()
	f.Savings = "100"
	f.Expenses = append(f.Expenses, Expense{ID: 1, Amount: "10", Category: "Other"})
	f.Debts = append(f.Debts, Debt{ID: 2, Name: "Loan", Type: "Loan", Amount: "50", Remaining: "50"})

	clone := f.Clone()
	clone.Expenses[0].Amount = "999"
	clone.Debts[0].Remaining = "0"

	if f.Expenses[0].Amount != "10" {
		t.Error("Clone shares expense backing array with original")
	}
	if f.Debts[0].Remaining != "50" {
		t.Error("Clone shares debt backing array with original")
	}
}

func TestDefaultFinance(t *testing.T) {
	t.Parallel()

	f := DefaultFinance()
	if f.Expenses == nil || f.Debts == nil {
		t.Error("Expected initialized sequences, got nil")
	}
	if len(f.Expenses) != 0 || len(f.Debts) != 0 || f.Savings != "" || f.Investments != "" {
		t.Errorf("Expected empty defaults, got %+v", f)
	}
}
