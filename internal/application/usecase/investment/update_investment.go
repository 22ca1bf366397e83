package investment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// UpdateInvestmentInput represents the input for updating an investment.
// Nil fields are left unchanged.
type UpdateInvestmentInput struct {
	UserID           uuid.UUID
	InvestmentID     uuid.UUID
	Name             *string
	Amount           *float64
	Date             *string
	CurrentValue     *float64
	InvestmentTypeID *uuid.UUID
}

// UpdateInvestmentOutput represents the output of updating an investment.
type UpdateInvestmentOutput struct {
	Investment *entity.InvestmentWithType
}

// UpdateInvestmentUseCase handles investment updates.
type UpdateInvestmentUseCase struct {
	investmentRepo     adapter.InvestmentRepository
	investmentTypeRepo adapter.InvestmentTypeRepository
	sanitizer          adapter.Sanitizer
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(
	investmentRepo adapter.InvestmentRepository,
	investmentTypeRepo adapter.InvestmentTypeRepository,
	sanitizer adapter.Sanitizer,
) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo:     investmentRepo,
		investmentTypeRepo: investmentTypeRepo,
		sanitizer:          sanitizer,
	}
}

// Execute applies a partial update to an investment owned by the user.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	existing, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID, input.UserID)
	if err != nil {
		return nil, err
	}
	investment := existing.Investment
	investmentType := existing.InvestmentType

	if input.Name != nil {
		name := uc.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return nil, domainerror.NewValidationError("name", "Name is required")
		}
		investment.Name = name
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerror.NewValidationError("amount", "Amount must be a positive number")
		}
		investment.Amount = *input.Amount
	}

	if input.CurrentValue != nil {
		if *input.CurrentValue < 0 {
			return nil, domainerror.NewValidationError("current_value", "Current value must be a non-negative number")
		}
		investment.CurrentValue = *input.CurrentValue
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		investment.Date = date
	}

	if input.InvestmentTypeID != nil {
		newType, err := uc.investmentTypeRepo.FindByID(ctx, *input.InvestmentTypeID, input.UserID)
		if err != nil {
			var notFound *domainerror.NotFoundError
			if errors.As(err, &notFound) {
				return nil, domainerror.NewReferenceNotFoundError("Investment type")
			}
			return nil, err
		}
		investment.InvestmentTypeID = *input.InvestmentTypeID
		investmentType = newType
	}

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &UpdateInvestmentOutput{Investment: &entity.InvestmentWithType{
		Investment:     investment,
		InvestmentType: investmentType,
	}}, nil
}
