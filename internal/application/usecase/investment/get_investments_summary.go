package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// GetInvestmentsSummaryInput represents the input for the summary.
type GetInvestmentsSummaryInput struct {
	UserID uuid.UUID
}

// GetInvestmentsSummaryOutput represents the portfolio-level totals.
type GetInvestmentsSummaryOutput struct {
	Totals entity.InvestmentTotals
}

// GetInvestmentsSummaryUseCase computes portfolio totals over a user's
// investments.
type GetInvestmentsSummaryUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetInvestmentsSummaryUseCase creates a new GetInvestmentsSummaryUseCase instance.
func NewGetInvestmentsSummaryUseCase(investmentRepo adapter.InvestmentRepository) *GetInvestmentsSummaryUseCase {
	return &GetInvestmentsSummaryUseCase{investmentRepo: investmentRepo}
}

// Execute aggregates the user's investments.
func (uc *GetInvestmentsSummaryUseCase) Execute(ctx context.Context, input GetInvestmentsSummaryInput) (*GetInvestmentsSummaryOutput, error) {
	withTypes, err := uc.investmentRepo.ListByUser(ctx, input.UserID, adapter.InvestmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize investments: %w", err)
	}

	investments := make([]*entity.Investment, 0, len(withTypes))
	for _, inv := range withTypes {
		investments = append(investments, inv.Investment)
	}

	return &GetInvestmentsSummaryOutput{Totals: entity.SumInvestments(investments)}, nil
}
