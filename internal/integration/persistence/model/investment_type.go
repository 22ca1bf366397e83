package model

import (
	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// InvestmentTypeModel represents the investment_types table in the database.
type InvestmentTypeModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(80);not null"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for the InvestmentTypeModel.
func (InvestmentTypeModel) TableName() string {
	return "investment_types"
}

// ToEntity converts an InvestmentTypeModel to a domain InvestmentType entity.
func (m *InvestmentTypeModel) ToEntity() *entity.InvestmentType {
	return &entity.InvestmentType{
		ID:     m.ID,
		Name:   m.Name,
		UserID: m.UserID,
	}
}

// InvestmentTypeFromEntity creates an InvestmentTypeModel from a domain entity.
func InvestmentTypeFromEntity(investmentType *entity.InvestmentType) *InvestmentTypeModel {
	return &InvestmentTypeModel{
		ID:     investmentType.ID,
		Name:   investmentType.Name,
		UserID: investmentType.UserID,
	}
}
