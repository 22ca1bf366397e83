package entity

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInvestment_ProfitLoss(t *testing.T) {
	tests := []struct {
		name               string
		amount             float64
		currentValue       float64
		expectedProfitLoss float64
		expectedPercentage float64
	}{
		{
			name:               "gain",
			amount:             100,
			currentValue:       150,
			expectedProfitLoss: 50,
			expectedPercentage: 50,
		},
		{
			name:               "loss",
			amount:             200,
			currentValue:       150,
			expectedProfitLoss: -50,
			expectedPercentage: -25,
		},
		{
			name:               "flat",
			amount:             100,
			currentValue:       100,
			expectedProfitLoss: 0,
			expectedPercentage: 0,
		},
		{
			name:               "zero amount guards percentage",
			amount:             0,
			currentValue:       100,
			expectedProfitLoss: 100,
			expectedPercentage: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvestment(uuid.New(), "Tesouro Direto", tt.amount, time.Now(), tt.currentValue, uuid.New())

			if got := inv.ProfitLoss(); !almostEqual(got, tt.expectedProfitLoss) {
				t.Errorf("expected profit/loss %v, got %v", tt.expectedProfitLoss, got)
			}
			if got := inv.ProfitLossPercentage(); !almostEqual(got, tt.expectedPercentage) {
				t.Errorf("expected percentage %v, got %v", tt.expectedPercentage, got)
			}
		})
	}
}

func TestSumInvestments(t *testing.T) {
	userID := uuid.New()
	typeID := uuid.New()

	t.Run("empty portfolio yields zero totals", func(t *testing.T) {
		totals := SumInvestments(nil)

		if totals.InvestmentCount != 0 {
			t.Errorf("expected count 0, got %d", totals.InvestmentCount)
		}
		if totals.TotalProfitLossPercentage != 0 {
			t.Errorf("expected percentage 0, got %v", totals.TotalProfitLossPercentage)
		}
	})

	t.Run("aggregates invested and current values", func(t *testing.T) {
		investments := []*Investment{
			NewInvestment(userID, "CDB", 100, time.Now(), 150, typeID),
			NewInvestment(userID, "Ações", 200, time.Now(), 150, typeID),
		}

		totals := SumInvestments(investments)

		if !almostEqual(totals.TotalInvested, 300) {
			t.Errorf("expected total invested 300, got %v", totals.TotalInvested)
		}
		if !almostEqual(totals.TotalCurrentValue, 300) {
			t.Errorf("expected total current value 300, got %v", totals.TotalCurrentValue)
		}
		if !almostEqual(totals.TotalProfitLoss, 0) {
			t.Errorf("expected total profit/loss 0, got %v", totals.TotalProfitLoss)
		}
		if totals.InvestmentCount != 2 {
			t.Errorf("expected count 2, got %d", totals.InvestmentCount)
		}
	})

	t.Run("percentage reflects net gain", func(t *testing.T) {
		investments := []*Investment{
			NewInvestment(userID, "CDB", 100, time.Now(), 120, typeID),
			NewInvestment(userID, "FII", 100, time.Now(), 130, typeID),
		}

		totals := SumInvestments(investments)

		if !almostEqual(totals.TotalProfitLoss, 50) {
			t.Errorf("expected total profit/loss 50, got %v", totals.TotalProfitLoss)
		}
		if !almostEqual(totals.TotalProfitLossPercentage, 25) {
			t.Errorf("expected percentage 25, got %v", totals.TotalProfitLossPercentage)
		}
	})
}
