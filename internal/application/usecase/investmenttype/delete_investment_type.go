package investmenttype

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
)

// DeleteInvestmentTypeInput represents the input for deleting an investment type.
type DeleteInvestmentTypeInput struct {
	UserID           uuid.UUID
	InvestmentTypeID uuid.UUID
}

// DeleteInvestmentTypeUseCase handles investment type deletion.
type DeleteInvestmentTypeUseCase struct {
	investmentTypeRepo adapter.InvestmentTypeRepository
}

// NewDeleteInvestmentTypeUseCase creates a new DeleteInvestmentTypeUseCase instance.
func NewDeleteInvestmentTypeUseCase(investmentTypeRepo adapter.InvestmentTypeRepository) *DeleteInvestmentTypeUseCase {
	return &DeleteInvestmentTypeUseCase{investmentTypeRepo: investmentTypeRepo}
}

// Execute deletes an investment type owned by the user.
func (uc *DeleteInvestmentTypeUseCase) Execute(ctx context.Context, input DeleteInvestmentTypeInput) error {
	return uc.investmentTypeRepo.Delete(ctx, input.InvestmentTypeID, input.UserID)
}
