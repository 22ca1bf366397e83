// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewValidationError("date", "Invalid date format. Use YYYY-MM-DD")
	}
	return date, nil
}

// CreateInvestmentInput represents the input for investment creation.
// Date is an optional YYYY-MM-DD string; empty means today. A nil
// CurrentValue defaults to the invested amount.
type CreateInvestmentInput struct {
	UserID           uuid.UUID
	Name             string
	Amount           *float64
	Date             string
	CurrentValue     *float64
	InvestmentTypeID *uuid.UUID
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.InvestmentWithType
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentRepo     adapter.InvestmentRepository
	investmentTypeRepo adapter.InvestmentTypeRepository
	sanitizer          adapter.Sanitizer
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(
	investmentRepo adapter.InvestmentRepository,
	investmentTypeRepo adapter.InvestmentTypeRepository,
	sanitizer adapter.Sanitizer,
) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo:     investmentRepo,
		investmentTypeRepo: investmentTypeRepo,
		sanitizer:          sanitizer,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	name := uc.sanitizer.Sanitize(input.Name)
	if name == "" {
		return nil, domainerror.NewValidationError("name", "Name is required")
	}
	if input.Amount == nil {
		return nil, domainerror.NewValidationError("amount", "Amount is required")
	}
	if input.InvestmentTypeID == nil {
		return nil, domainerror.NewValidationError("investment_type_id", "Investment type ID is required")
	}
	if *input.Amount <= 0 {
		return nil, domainerror.NewValidationError("amount", "Amount must be a positive number")
	}

	currentValue := *input.Amount
	if input.CurrentValue != nil {
		if *input.CurrentValue < 0 {
			return nil, domainerror.NewValidationError("current_value", "Current value must be a non-negative number")
		}
		currentValue = *input.CurrentValue
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	investmentType, err := uc.investmentTypeRepo.FindByID(ctx, *input.InvestmentTypeID, input.UserID)
	if err != nil {
		var notFound *domainerror.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domainerror.NewReferenceNotFoundError("Investment type")
		}
		return nil, err
	}

	investment := entity.NewInvestment(input.UserID, name, *input.Amount, date, currentValue, *input.InvestmentTypeID)
	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &CreateInvestmentOutput{Investment: &entity.InvestmentWithType{
		Investment:     investment,
		InvestmentType: investmentType,
	}}, nil
}
