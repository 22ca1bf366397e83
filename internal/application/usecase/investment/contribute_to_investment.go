package investment

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// ContributeToInvestmentInput represents the input for a contribution.
type ContributeToInvestmentInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
	Amount       *float64
}

// ContributeToInvestmentOutput carries the updated investment.
type ContributeToInvestmentOutput struct {
	Investment *entity.InvestmentWithType
}

// ContributeToInvestmentUseCase adds funds to an investment's current value.
// The increment runs as a single update so concurrent contributions all land.
type ContributeToInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewContributeToInvestmentUseCase creates a new ContributeToInvestmentUseCase instance.
func NewContributeToInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *ContributeToInvestmentUseCase {
	return &ContributeToInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute applies the contribution.
func (uc *ContributeToInvestmentUseCase) Execute(ctx context.Context, input ContributeToInvestmentInput) (*ContributeToInvestmentOutput, error) {
	if input.Amount == nil {
		return nil, domainerror.NewValidationError("amount", "Amount is required")
	}
	if *input.Amount <= 0 {
		return nil, domainerror.NewValidationError("amount", "Contribution amount must be a positive number")
	}

	investment, err := uc.investmentRepo.AddToCurrentValue(ctx, input.InvestmentID, input.UserID, *input.Amount)
	if err != nil {
		return nil, err
	}
	return &ContributeToInvestmentOutput{Investment: investment}, nil
}
