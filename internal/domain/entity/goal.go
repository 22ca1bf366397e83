package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// IsValid reports whether the status is one of the allowed values.
func (s GoalStatus) IsValid() bool {
	return s == GoalStatusActive || s == GoalStatusCompleted || s == GoalStatusPaused
}

// Goal represents a savings goal. Progress figures are derived at read time,
// never stored. A contribution that reaches the target flips an active goal
// to completed; the transition is one-way.
type Goal struct {
	ID            uuid.UUID
	Name          string
	Description   string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    *time.Time
	CreatedDate   time.Time
	Status        GoalStatus
	UserID        uuid.UUID
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	name, description string,
	targetAmount, currentAmount float64,
	targetDate *time.Time,
	status GoalStatus,
) *Goal {
	return &Goal{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedDate:   time.Now().UTC(),
		Status:        status,
		UserID:        userID,
	}
}

// ProgressPercentage returns how much of the target has been saved, as a
// percentage. Returns 0 when the target amount is zero.
func (g *Goal) ProgressPercentage() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// RemainingAmount returns the amount still needed to reach the target.
// Negative when the goal is overfunded.
func (g *Goal) RemainingAmount() float64 {
	return g.TargetAmount - g.CurrentAmount
}

// GoalTotals represents aggregated totals over a user's goals. Monetary
// totals cover active goals only.
type GoalTotals struct {
	TotalGoals              int
	ActiveGoals             int
	CompletedGoals          int
	TotalTargetAmount       float64
	TotalCurrentAmount      float64
	TotalProgressPercentage float64
}

// SumGoals computes goal summary totals. The progress percentage guards
// against a zero target total.
func SumGoals(goals []*Goal) GoalTotals {
	totals := GoalTotals{TotalGoals: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case GoalStatusActive:
			totals.ActiveGoals++
			totals.TotalTargetAmount += g.TargetAmount
			totals.TotalCurrentAmount += g.CurrentAmount
		case GoalStatusCompleted:
			totals.CompletedGoals++
		}
	}
	if totals.TotalTargetAmount > 0 {
		totals.TotalProgressPercentage = totals.TotalCurrentAmount / totals.TotalTargetAmount * 100
	}
	return totals
}
