package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		transactionType TransactionType
		valid           bool
	}{
		{TransactionTypeExpense, true},
		{TransactionTypeIncome, true},
		{TransactionType("transfer"), false},
		{TransactionType(""), false},
	}

	for _, tt := range tests {
		if got := tt.transactionType.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, expected %v", tt.transactionType, got, tt.valid)
		}
	}
}

func TestSumTransactions(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	paymentMethodID := uuid.New()

	newTransaction := func(amount string, transactionType TransactionType) *Transaction {
		var pmID *uuid.UUID
		if transactionType == TransactionTypeExpense {
			pmID = &paymentMethodID
		}
		return NewTransaction(userID, "test", decimal.RequireFromString(amount), time.Now(), transactionType, categoryID, pmID, "")
	}

	t.Run("empty set yields zero totals", func(t *testing.T) {
		totals := SumTransactions(nil)

		if !totals.TotalIncome.IsZero() {
			t.Errorf("expected income 0, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpense.IsZero() {
			t.Errorf("expected expense 0, got %s", totals.TotalExpense)
		}
		if !totals.Balance.IsZero() {
			t.Errorf("expected balance 0, got %s", totals.Balance)
		}
		if totals.TransactionCount != 0 {
			t.Errorf("expected count 0, got %d", totals.TransactionCount)
		}
	})

	t.Run("balance is income minus expense", func(t *testing.T) {
		transactions := []*Transaction{
			newTransaction("100", TransactionTypeIncome),
			newTransaction("25.50", TransactionTypeExpense),
			newTransaction("14.50", TransactionTypeExpense),
		}

		totals := SumTransactions(transactions)

		if !totals.TotalIncome.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected income 100, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpense.Equal(decimal.RequireFromString("40")) {
			t.Errorf("expected expense 40, got %s", totals.TotalExpense)
		}
		if !totals.Balance.Equal(decimal.RequireFromString("60")) {
			t.Errorf("expected balance 60, got %s", totals.Balance)
		}
		if totals.TransactionCount != 3 {
			t.Errorf("expected count 3, got %d", totals.TransactionCount)
		}
	})

	t.Run("negative balance when expenses exceed income", func(t *testing.T) {
		transactions := []*Transaction{
			newTransaction("50", TransactionTypeIncome),
			newTransaction("80", TransactionTypeExpense),
		}

		totals := SumTransactions(transactions)

		if !totals.Balance.Equal(decimal.RequireFromString("-30")) {
			t.Errorf("expected balance -30, got %s", totals.Balance)
		}
	})
}

func TestCategoryType_IsValid(t *testing.T) {
	tests := []struct {
		categoryType CategoryType
		valid        bool
	}{
		{CategoryTypeExpense, true},
		{CategoryTypeIncome, true},
		{CategoryType("savings"), false},
		{CategoryType(""), false},
	}

	for _, tt := range tests {
		if got := tt.categoryType.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, expected %v", tt.categoryType, got, tt.valid)
		}
	}
}
