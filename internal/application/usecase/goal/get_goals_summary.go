package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// GetGoalsSummaryInput represents the input for the summary.
type GetGoalsSummaryInput struct {
	UserID uuid.UUID
}

// GetGoalsSummaryOutput represents the aggregated goal totals.
type GetGoalsSummaryOutput struct {
	Totals entity.GoalTotals
}

// GetGoalsSummaryUseCase computes totals over a user's goals. Monetary
// totals cover active goals only.
type GetGoalsSummaryUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalsSummaryUseCase creates a new GetGoalsSummaryUseCase instance.
func NewGetGoalsSummaryUseCase(goalRepo adapter.GoalRepository) *GetGoalsSummaryUseCase {
	return &GetGoalsSummaryUseCase{goalRepo: goalRepo}
}

// Execute aggregates the user's goals.
func (uc *GetGoalsSummaryUseCase) Execute(ctx context.Context, input GetGoalsSummaryInput) (*GetGoalsSummaryOutput, error) {
	goals, err := uc.goalRepo.ListByUser(ctx, input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize goals: %w", err)
	}
	return &GetGoalsSummaryOutput{Totals: entity.SumGoals(goals)}, nil
}
