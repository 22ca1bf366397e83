package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// ContributeToGoalInput represents the input for a goal contribution.
type ContributeToGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount *float64
}

// ContributeToGoalOutput carries the updated goal.
type ContributeToGoalOutput struct {
	Goal *entity.Goal
}

// ContributeToGoalUseCase adds funds toward a goal. The increment and the
// active-to-completed transition happen in one database transaction, so
// concurrent contributions cannot lose writes or complete a goal twice.
type ContributeToGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(goalRepo adapter.GoalRepository) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{goalRepo: goalRepo}
}

// Execute applies the contribution.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if input.Amount == nil {
		return nil, domainerror.NewValidationError("amount", "Amount is required")
	}
	if *input.Amount <= 0 {
		return nil, domainerror.NewValidationError("amount", "Contribution amount must be a positive number")
	}

	goal, err := uc.goalRepo.Contribute(ctx, input.GoalID, input.UserID, *input.Amount)
	if err != nil {
		return nil, err
	}
	return &ContributeToGoalOutput{Goal: goal}, nil
}
