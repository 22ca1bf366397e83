package investmenttype

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// GetInvestmentTypeInput represents the input for fetching an investment type.
type GetInvestmentTypeInput struct {
	UserID           uuid.UUID
	InvestmentTypeID uuid.UUID
}

// GetInvestmentTypeOutput represents the output of fetching an investment type.
type GetInvestmentTypeOutput struct {
	InvestmentType *entity.InvestmentType
}

// GetInvestmentTypeUseCase handles fetching a single investment type.
type GetInvestmentTypeUseCase struct {
	investmentTypeRepo adapter.InvestmentTypeRepository
}

// NewGetInvestmentTypeUseCase creates a new GetInvestmentTypeUseCase instance.
func NewGetInvestmentTypeUseCase(investmentTypeRepo adapter.InvestmentTypeRepository) *GetInvestmentTypeUseCase {
	return &GetInvestmentTypeUseCase{investmentTypeRepo: investmentTypeRepo}
}

// Execute fetches an investment type owned by the user.
func (uc *GetInvestmentTypeUseCase) Execute(ctx context.Context, input GetInvestmentTypeInput) (*GetInvestmentTypeOutput, error) {
	investmentType, err := uc.investmentTypeRepo.FindByID(ctx, input.InvestmentTypeID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetInvestmentTypeOutput{InvestmentType: investmentType}, nil
}
