package investment

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// GetInvestmentInput represents the input for fetching an investment.
type GetInvestmentInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
}

// GetInvestmentOutput represents the output of fetching an investment.
type GetInvestmentOutput struct {
	Investment *entity.InvestmentWithType
}

// GetInvestmentUseCase handles fetching a single investment.
type GetInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetInvestmentUseCase creates a new GetInvestmentUseCase instance.
func NewGetInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *GetInvestmentUseCase {
	return &GetInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute fetches an investment owned by the user.
func (uc *GetInvestmentUseCase) Execute(ctx context.Context, input GetInvestmentInput) (*GetInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetInvestmentOutput{Investment: investment}, nil
}
