package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestGoalStatus_IsValid(t *testing.T) {
	tests := []struct {
		status GoalStatus
		valid  bool
	}{
		{GoalStatusActive, true},
		{GoalStatusCompleted, true},
		{GoalStatusPaused, true},
		{GoalStatus("archived"), false},
		{GoalStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, expected %v", tt.status, got, tt.valid)
		}
	}
}

func TestGoal_Progress(t *testing.T) {
	tests := []struct {
		name              string
		targetAmount      float64
		currentAmount     float64
		expectedProgress  float64
		expectedRemaining float64
	}{
		{
			name:              "fresh goal",
			targetAmount:      1000,
			currentAmount:     0,
			expectedProgress:  0,
			expectedRemaining: 1000,
		},
		{
			name:              "quarter funded",
			targetAmount:      1000,
			currentAmount:     250,
			expectedProgress:  25,
			expectedRemaining: 750,
		},
		{
			name:              "overfunded goal goes negative remaining",
			targetAmount:      100,
			currentAmount:     150,
			expectedProgress:  150,
			expectedRemaining: -50,
		},
		{
			name:              "zero target guards progress",
			targetAmount:      0,
			currentAmount:     50,
			expectedProgress:  0,
			expectedRemaining: -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := NewGoal(uuid.New(), "Viagem", "", tt.targetAmount, tt.currentAmount, nil, GoalStatusActive)

			if got := goal.ProgressPercentage(); !almostEqual(got, tt.expectedProgress) {
				t.Errorf("expected progress %v, got %v", tt.expectedProgress, got)
			}
			if got := goal.RemainingAmount(); !almostEqual(got, tt.expectedRemaining) {
				t.Errorf("expected remaining %v, got %v", tt.expectedRemaining, got)
			}
		})
	}
}

func TestSumGoals(t *testing.T) {
	userID := uuid.New()

	t.Run("empty set yields zero totals", func(t *testing.T) {
		totals := SumGoals(nil)

		if totals.TotalGoals != 0 {
			t.Errorf("expected total 0, got %d", totals.TotalGoals)
		}
		if totals.TotalProgressPercentage != 0 {
			t.Errorf("expected progress 0, got %v", totals.TotalProgressPercentage)
		}
	})

	t.Run("monetary totals cover active goals only", func(t *testing.T) {
		goals := []*Goal{
			NewGoal(userID, "Viagem", "", 1000, 250, nil, GoalStatusActive),
			NewGoal(userID, "Notebook", "", 500, 500, nil, GoalStatusCompleted),
			NewGoal(userID, "Reserva", "", 2000, 100, nil, GoalStatusPaused),
		}

		totals := SumGoals(goals)

		if totals.TotalGoals != 3 {
			t.Errorf("expected total 3, got %d", totals.TotalGoals)
		}
		if totals.ActiveGoals != 1 {
			t.Errorf("expected 1 active, got %d", totals.ActiveGoals)
		}
		if totals.CompletedGoals != 1 {
			t.Errorf("expected 1 completed, got %d", totals.CompletedGoals)
		}
		if !almostEqual(totals.TotalTargetAmount, 1000) {
			t.Errorf("expected target total 1000, got %v", totals.TotalTargetAmount)
		}
		if !almostEqual(totals.TotalCurrentAmount, 250) {
			t.Errorf("expected current total 250, got %v", totals.TotalCurrentAmount)
		}
		if !almostEqual(totals.TotalProgressPercentage, 25) {
			t.Errorf("expected progress 25, got %v", totals.TotalProgressPercentage)
		}
	})
}
