package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	UserID           uuid.UUID
	InvestmentTypeID *uuid.UUID
	Year             *int
	Month            *int
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*entity.InvestmentWithType
}

// ListInvestmentsUseCase handles listing a user's investments.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{investmentRepo: investmentRepo}
}

// Execute lists the user's investments, newest date first, optionally
// filtered by type and calendar period.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	filter := adapter.InvestmentFilter{
		InvestmentTypeID: input.InvestmentTypeID,
		Year:             input.Year,
		Month:            input.Month,
	}
	investments, err := uc.investmentRepo.ListByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return &ListInvestmentsOutput{Investments: investments}, nil
}
