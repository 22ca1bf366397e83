package entity

import (
	"time"

	"github.com/google/uuid"
)

// Investment represents money placed into an investment, tracked against its
// current market value. Profit figures are derived at read time, never stored.
type Investment struct {
	ID               uuid.UUID
	Name             string
	Amount           float64
	Date             time.Time
	CurrentValue     float64
	InvestmentTypeID uuid.UUID
	UserID           uuid.UUID
}

// NewInvestment creates a new Investment entity.
func NewInvestment(
	userID uuid.UUID,
	name string,
	amount float64,
	date time.Time,
	currentValue float64,
	investmentTypeID uuid.UUID,
) *Investment {
	return &Investment{
		ID:               uuid.New(),
		Name:             name,
		Amount:           amount,
		Date:             date,
		CurrentValue:     currentValue,
		InvestmentTypeID: investmentTypeID,
		UserID:           userID,
	}
}

// ProfitLoss returns the absolute gain or loss over the invested amount.
func (i *Investment) ProfitLoss() float64 {
	return i.CurrentValue - i.Amount
}

// ProfitLossPercentage returns the gain or loss as a percentage of the
// invested amount. Returns 0 when the invested amount is zero.
func (i *Investment) ProfitLossPercentage() float64 {
	if i.Amount <= 0 {
		return 0
	}
	return i.ProfitLoss() / i.Amount * 100
}

// InvestmentWithType bundles an investment with its referenced type for
// serialization.
type InvestmentWithType struct {
	Investment     *Investment
	InvestmentType *InvestmentType
}

// InvestmentTotals represents aggregated totals over a set of investments.
type InvestmentTotals struct {
	TotalInvested             float64
	TotalCurrentValue         float64
	TotalProfitLoss           float64
	TotalProfitLossPercentage float64
	InvestmentCount           int
}

// SumInvestments computes portfolio-level totals. The percentage guards
// against a zero invested total.
func SumInvestments(investments []*Investment) InvestmentTotals {
	var totals InvestmentTotals
	for _, inv := range investments {
		totals.TotalInvested += inv.Amount
		totals.TotalCurrentValue += inv.CurrentValue
	}
	totals.TotalProfitLoss = totals.TotalCurrentValue - totals.TotalInvested
	if totals.TotalInvested > 0 {
		totals.TotalProfitLossPercentage = totals.TotalProfitLoss / totals.TotalInvested * 100
	}
	totals.InvestmentCount = len(investments)
	return totals
}
