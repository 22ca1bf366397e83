package dto

import "github.com/finwise/backend/internal/domain/entity"

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	TargetDate    string   `json:"target_date"`
	Status        string   `json:"status"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	TargetDate    *string  `json:"target_date"`
	Status        *string  `json:"status"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	TargetAmount       float64 `json:"target_amount"`
	CurrentAmount      float64 `json:"current_amount"`
	TargetDate         *string `json:"target_date"`
	CreatedDate        string  `json:"created_date"`
	Status             string  `json:"status"`
	UserID             string  `json:"user_id"`
	ProgressPercentage float64 `json:"progress_percentage"`
	RemainingAmount    float64 `json:"remaining_amount"`
}

// GoalsSummaryResponse represents aggregated goal totals.
type GoalsSummaryResponse struct {
	TotalGoals              int     `json:"total_goals"`
	ActiveGoals             int     `json:"active_goals"`
	CompletedGoals          int     `json:"completed_goals"`
	TotalTargetAmount       float64 `json:"total_target_amount"`
	TotalCurrentAmount      float64 `json:"total_current_amount"`
	TotalProgressPercentage float64 `json:"total_progress_percentage"`
}

// ToGoalResponse converts a domain Goal entity to a response DTO. Progress
// figures are computed here, never stored.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	var targetDate *string
	if goal.TargetDate != nil {
		formatted := goal.TargetDate.Format(dateLayout)
		targetDate = &formatted
	}

	return GoalResponse{
		ID:                 goal.ID.String(),
		Name:               goal.Name,
		Description:        goal.Description,
		TargetAmount:       goal.TargetAmount,
		CurrentAmount:      goal.CurrentAmount,
		TargetDate:         targetDate,
		CreatedDate:        goal.CreatedDate.Format(dateLayout),
		Status:             string(goal.Status),
		UserID:             goal.UserID.String(),
		ProgressPercentage: goal.ProgressPercentage(),
		RemainingAmount:    goal.RemainingAmount(),
	}
}

// ToGoalListResponse converts a list of goals to response DTOs.
func ToGoalListResponse(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(goal)
	}
	return responses
}

// ToGoalsSummaryResponse converts goal totals to a response DTO.
func ToGoalsSummaryResponse(totals entity.GoalTotals) GoalsSummaryResponse {
	return GoalsSummaryResponse{
		TotalGoals:              totals.TotalGoals,
		ActiveGoals:             totals.ActiveGoals,
		CompletedGoals:          totals.CompletedGoals,
		TotalTargetAmount:       totals.TotalTargetAmount,
		TotalCurrentAmount:      totals.TotalCurrentAmount,
		TotalProgressPercentage: totals.TotalProgressPercentage,
	}
}
