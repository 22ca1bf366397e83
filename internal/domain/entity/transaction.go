// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the two allowed values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single income or expense movement.
// PaymentMethodID is required for expenses and always nil for income.
type Transaction struct {
	ID              uuid.UUID
	Description     string
	Amount          decimal.Decimal
	Date            time.Time
	Type            TransactionType
	CategoryID      uuid.UUID
	PaymentMethodID *uuid.UUID
	UserID          uuid.UUID
	Notes           string
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	transactionType TransactionType,
	categoryID uuid.UUID,
	paymentMethodID *uuid.UUID,
	notes string,
) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		Description:     description,
		Amount:          amount,
		Date:            date,
		Type:            transactionType,
		CategoryID:      categoryID,
		PaymentMethodID: paymentMethodID,
		UserID:          userID,
		Notes:           notes,
	}
}

// TransactionWithRefs bundles a transaction with the names of its referenced
// category and payment method for serialization.
type TransactionWithRefs struct {
	Transaction       *Transaction
	CategoryName      string
	PaymentMethodName string
}

// TransactionTotals represents aggregated totals over a set of transactions.
type TransactionTotals struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// SumTransactions computes income, expense and balance totals.
func SumTransactions(transactions []*Transaction) TransactionTotals {
	totals := TransactionTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			totals.TotalIncome = totals.TotalIncome.Add(t.Amount)
		case TransactionTypeExpense:
			totals.TotalExpense = totals.TotalExpense.Add(t.Amount)
		}
	}
	totals.Balance = totals.TotalIncome.Sub(totals.TotalExpense)
	totals.TransactionCount = len(transactions)
	return totals
}
