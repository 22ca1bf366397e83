package investment

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
)

// DeleteInvestmentInput represents the input for deleting an investment.
type DeleteInvestmentInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
}

// DeleteInvestmentUseCase handles investment deletion.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute deletes an investment owned by the user.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	return uc.investmentRepo.Delete(ctx, input.InvestmentID, input.UserID)
}
