// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

const dateLayout = "2006-01-02"

func parseTargetDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewValidationError("target_date", "Invalid target date format. Use YYYY-MM-DD")
	}
	return date, nil
}

// CreateGoalInput represents the input for goal creation. TargetDate is an
// optional YYYY-MM-DD string. An empty status defaults to active.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	Description   string
	TargetAmount  *float64
	CurrentAmount *float64
	TargetDate    string
	Status        string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	sanitizer adapter.Sanitizer
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, sanitizer adapter.Sanitizer) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:  goalRepo,
		sanitizer: sanitizer,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := uc.sanitizer.Sanitize(input.Name)
	description := uc.sanitizer.Sanitize(input.Description)

	if name == "" {
		return nil, domainerror.NewValidationError("name", "Name is required")
	}
	if input.TargetAmount == nil {
		return nil, domainerror.NewValidationError("target_amount", "Target amount is required")
	}
	if *input.TargetAmount < 0 {
		return nil, domainerror.NewValidationError("target_amount", "Target amount must be a positive number")
	}

	currentAmount := 0.0
	if input.CurrentAmount != nil {
		if *input.CurrentAmount < 0 {
			return nil, domainerror.NewValidationError("current_amount", "Current amount must be a positive number")
		}
		currentAmount = *input.CurrentAmount
	}

	var targetDate *time.Time
	if input.TargetDate != "" {
		parsed, err := parseTargetDate(input.TargetDate)
		if err != nil {
			return nil, err
		}
		targetDate = &parsed
	}

	status := entity.GoalStatusActive
	if input.Status != "" {
		status = entity.GoalStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerror.NewValidationError("status", "Invalid status. Must be 'active', 'completed', or 'paused'")
		}
	}

	goal := entity.NewGoal(input.UserID, name, description, *input.TargetAmount, currentAmount, targetDate, status)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
