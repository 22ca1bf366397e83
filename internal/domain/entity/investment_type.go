package entity

import "github.com/google/uuid"

// InvestmentType classifies investments (fixed income, stocks, real estate
// funds), owned by a single user.
type InvestmentType struct {
	ID     uuid.UUID
	Name   string
	UserID uuid.UUID
}

// NewInvestmentType creates a new InvestmentType entity.
func NewInvestmentType(name string, userID uuid.UUID) *InvestmentType {
	return &InvestmentType{
		ID:     uuid.New(),
		Name:   name,
		UserID: userID,
	}
}
