package dto

import "github.com/finwise/backend/internal/domain/entity"

const dateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description     string   `json:"description"`
	Amount          *float64 `json:"amount"`
	Date            string   `json:"date"`
	TransactionType string   `json:"transaction_type"`
	CategoryID      *string  `json:"category_id"`
	PaymentMethodID *string  `json:"payment_method_id"`
	Notes           string   `json:"notes"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description     *string  `json:"description"`
	Amount          *float64 `json:"amount"`
	Date            *string  `json:"date"`
	TransactionType *string  `json:"transaction_type"`
	CategoryID      *string  `json:"category_id"`
	PaymentMethodID *string  `json:"payment_method_id"`
	Notes           *string  `json:"notes"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                string  `json:"id"`
	Description       string  `json:"description"`
	Amount            float64 `json:"amount"`
	Date              string  `json:"date"`
	TransactionType   string  `json:"transaction_type"`
	CategoryID        string  `json:"category_id"`
	PaymentMethodID   *string `json:"payment_method_id"`
	UserID            string  `json:"user_id"`
	Notes             string  `json:"notes"`
	CategoryName      string  `json:"category_name"`
	PaymentMethodName *string `json:"payment_method_name"`
}

// TransactionsSummaryResponse represents aggregated transaction totals.
type TransactionsSummaryResponse struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// ToTransactionResponse converts a transaction with its resolved references
// to a response DTO.
func ToTransactionResponse(withRefs *entity.TransactionWithRefs) TransactionResponse {
	transaction := withRefs.Transaction

	var paymentMethodID, paymentMethodName *string
	if transaction.PaymentMethodID != nil {
		id := transaction.PaymentMethodID.String()
		paymentMethodID = &id
		name := withRefs.PaymentMethodName
		paymentMethodName = &name
	}

	return TransactionResponse{
		ID:                transaction.ID.String(),
		Description:       transaction.Description,
		Amount:            transaction.Amount.InexactFloat64(),
		Date:              transaction.Date.Format(dateLayout),
		TransactionType:   string(transaction.Type),
		CategoryID:        transaction.CategoryID.String(),
		PaymentMethodID:   paymentMethodID,
		UserID:            transaction.UserID.String(),
		Notes:             transaction.Notes,
		CategoryName:      withRefs.CategoryName,
		PaymentMethodName: paymentMethodName,
	}
}

// ToTransactionListResponse converts a list of transactions to response DTOs.
func ToTransactionListResponse(transactions []*entity.TransactionWithRefs) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return responses
}

// ToTransactionsSummaryResponse converts transaction totals to a response DTO.
func ToTransactionsSummaryResponse(totals entity.TransactionTotals) TransactionsSummaryResponse {
	return TransactionsSummaryResponse{
		TotalIncome:      totals.TotalIncome.InexactFloat64(),
		TotalExpense:     totals.TotalExpense.InexactFloat64(),
		Balance:          totals.Balance.InexactFloat64(),
		TransactionCount: totals.TransactionCount,
	}
}
