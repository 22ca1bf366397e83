package investmenttype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// UpdateInvestmentTypeInput represents the input for updating an investment type.
type UpdateInvestmentTypeInput struct {
	UserID           uuid.UUID
	InvestmentTypeID uuid.UUID
	Name             *string
}

// UpdateInvestmentTypeOutput represents the output of updating an investment type.
type UpdateInvestmentTypeOutput struct {
	InvestmentType *entity.InvestmentType
}

// UpdateInvestmentTypeUseCase handles investment type updates.
type UpdateInvestmentTypeUseCase struct {
	investmentTypeRepo adapter.InvestmentTypeRepository
	sanitizer          adapter.Sanitizer
}

// NewUpdateInvestmentTypeUseCase creates a new UpdateInvestmentTypeUseCase instance.
func NewUpdateInvestmentTypeUseCase(investmentTypeRepo adapter.InvestmentTypeRepository, sanitizer adapter.Sanitizer) *UpdateInvestmentTypeUseCase {
	return &UpdateInvestmentTypeUseCase{
		investmentTypeRepo: investmentTypeRepo,
		sanitizer:          sanitizer,
	}
}

// Execute applies a partial update to an investment type owned by the user.
func (uc *UpdateInvestmentTypeUseCase) Execute(ctx context.Context, input UpdateInvestmentTypeInput) (*UpdateInvestmentTypeOutput, error) {
	investmentType, err := uc.investmentTypeRepo.FindByID(ctx, input.InvestmentTypeID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := uc.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return nil, domainerror.NewValidationError("name", "Name is required")
		}
		investmentType.Name = name
	}

	if err := uc.investmentTypeRepo.Update(ctx, investmentType); err != nil {
		return nil, fmt.Errorf("failed to update investment type: %w", err)
	}

	return &UpdateInvestmentTypeOutput{InvestmentType: investmentType}, nil
}
