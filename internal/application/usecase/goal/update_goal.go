package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for updating a goal. Nil fields are
// left unchanged.
type UpdateGoalInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	Name          *string
	Description   *string
	TargetAmount  *float64
	CurrentAmount *float64
	TargetDate    *string
	Status        *string
}

// UpdateGoalOutput represents the output of updating a goal.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal updates.
type UpdateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	sanitizer adapter.Sanitizer
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, sanitizer adapter.Sanitizer) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:  goalRepo,
		sanitizer: sanitizer,
	}
}

// Execute applies a partial update to a goal owned by the user.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := uc.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return nil, domainerror.NewValidationError("name", "Name is required")
		}
		goal.Name = name
	}

	if input.Description != nil {
		goal.Description = uc.sanitizer.Sanitize(*input.Description)
	}

	if input.TargetAmount != nil {
		if *input.TargetAmount < 0 {
			return nil, domainerror.NewValidationError("target_amount", "Target amount must be a positive number")
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.CurrentAmount != nil {
		if *input.CurrentAmount < 0 {
			return nil, domainerror.NewValidationError("current_amount", "Current amount must be a positive number")
		}
		goal.CurrentAmount = *input.CurrentAmount
	}

	if input.TargetDate != nil {
		date, err := parseTargetDate(*input.TargetDate)
		if err != nil {
			return nil, err
		}
		goal.TargetDate = &date
	}

	if input.Status != nil {
		status := entity.GoalStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerror.NewValidationError("status", "Invalid status. Must be 'active', 'completed', or 'paused'")
		}
		goal.Status = status
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
