// Package investmenttype contains investment type use cases.
package investmenttype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// CreateInvestmentTypeInput represents the input for investment type creation.
type CreateInvestmentTypeInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateInvestmentTypeOutput represents the output of investment type creation.
type CreateInvestmentTypeOutput struct {
	InvestmentType *entity.InvestmentType
}

// CreateInvestmentTypeUseCase handles investment type creation.
type CreateInvestmentTypeUseCase struct {
	investmentTypeRepo adapter.InvestmentTypeRepository
	sanitizer          adapter.Sanitizer
}

// NewCreateInvestmentTypeUseCase creates a new CreateInvestmentTypeUseCase instance.
func NewCreateInvestmentTypeUseCase(investmentTypeRepo adapter.InvestmentTypeRepository, sanitizer adapter.Sanitizer) *CreateInvestmentTypeUseCase {
	return &CreateInvestmentTypeUseCase{
		investmentTypeRepo: investmentTypeRepo,
		sanitizer:          sanitizer,
	}
}

// Execute performs the investment type creation.
func (uc *CreateInvestmentTypeUseCase) Execute(ctx context.Context, input CreateInvestmentTypeInput) (*CreateInvestmentTypeOutput, error) {
	name := uc.sanitizer.Sanitize(input.Name)
	if name == "" {
		return nil, domainerror.NewValidationError("name", "Name is required")
	}

	investmentType := entity.NewInvestmentType(name, input.UserID)
	if err := uc.investmentTypeRepo.Create(ctx, investmentType); err != nil {
		return nil, fmt.Errorf("failed to create investment type: %w", err)
	}

	return &CreateInvestmentTypeOutput{InvestmentType: investmentType}, nil
}
