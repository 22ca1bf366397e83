package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(120);not null"`
	Amount           float64   `gorm:"not null"`
	Date             time.Time `gorm:"type:date;not null;index"`
	CurrentValue     float64   `gorm:"not null"`
	InvestmentTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:               m.ID,
		Name:             m.Name,
		Amount:           m.Amount,
		Date:             m.Date,
		CurrentValue:     m.CurrentValue,
		InvestmentTypeID: m.InvestmentTypeID,
		UserID:           m.UserID,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:               investment.ID,
		Name:             investment.Name,
		Amount:           investment.Amount,
		Date:             investment.Date,
		CurrentValue:     investment.CurrentValue,
		InvestmentTypeID: investment.InvestmentTypeID,
		UserID:           investment.UserID,
	}
}
