package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// GetTransactionsSummaryInput represents the input for the summary.
type GetTransactionsSummaryInput struct {
	UserID uuid.UUID
	Year   *int
	Month  *int
}

// GetTransactionsSummaryOutput represents the aggregated totals.
type GetTransactionsSummaryOutput struct {
	Totals entity.TransactionTotals
}

// GetTransactionsSummaryUseCase computes income, expense and balance totals
// over a user's transactions.
type GetTransactionsSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionsSummaryUseCase creates a new GetTransactionsSummaryUseCase instance.
func NewGetTransactionsSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionsSummaryUseCase {
	return &GetTransactionsSummaryUseCase{transactionRepo: transactionRepo}
}

// Execute aggregates the user's transactions, optionally filtered by period.
func (uc *GetTransactionsSummaryUseCase) Execute(ctx context.Context, input GetTransactionsSummaryInput) (*GetTransactionsSummaryOutput, error) {
	filter := adapter.TransactionFilter{Year: input.Year, Month: input.Month}
	withRefs, err := uc.transactionRepo.ListByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, 0, len(withRefs))
	for _, t := range withRefs {
		transactions = append(transactions, t.Transaction)
	}

	return &GetTransactionsSummaryOutput{Totals: entity.SumTransactions(transactions)}, nil
}
