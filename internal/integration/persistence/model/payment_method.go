package model

import (
	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// PaymentMethodModel represents the payment_methods table in the database.
type PaymentMethodModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(80);not null"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for the PaymentMethodModel.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToEntity converts a PaymentMethodModel to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToEntity() *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:     m.ID,
		Name:   m.Name,
		UserID: m.UserID,
	}
}

// PaymentMethodFromEntity creates a PaymentMethodModel from a domain entity.
func PaymentMethodFromEntity(paymentMethod *entity.PaymentMethod) *PaymentMethodModel {
	return &PaymentMethodModel{
		ID:     paymentMethod.ID,
		Name:   paymentMethod.Name,
		UserID: paymentMethod.UserID,
	}
}
