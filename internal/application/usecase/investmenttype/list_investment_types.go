package investmenttype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// ListInvestmentTypesInput represents the input for listing investment types.
type ListInvestmentTypesInput struct {
	UserID uuid.UUID
}

// ListInvestmentTypesOutput represents the output of listing investment types.
type ListInvestmentTypesOutput struct {
	InvestmentTypes []*entity.InvestmentType
}

// ListInvestmentTypesUseCase handles listing a user's investment types.
type ListInvestmentTypesUseCase struct {
	investmentTypeRepo adapter.InvestmentTypeRepository
}

// NewListInvestmentTypesUseCase creates a new ListInvestmentTypesUseCase instance.
func NewListInvestmentTypesUseCase(investmentTypeRepo adapter.InvestmentTypeRepository) *ListInvestmentTypesUseCase {
	return &ListInvestmentTypesUseCase{investmentTypeRepo: investmentTypeRepo}
}

// Execute lists the user's investment types.
func (uc *ListInvestmentTypesUseCase) Execute(ctx context.Context, input ListInvestmentTypesInput) (*ListInvestmentTypesOutput, error) {
	investmentTypes, err := uc.investmentTypeRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investment types: %w", err)
	}
	return &ListInvestmentTypesOutput{InvestmentTypes: investmentTypes}, nil
}
