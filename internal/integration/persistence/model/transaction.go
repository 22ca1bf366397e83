package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwise/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description     string          `gorm:"type:varchar(200);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Type            string          `gorm:"column:transaction_type;type:varchar(10);not null"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentMethodID *uuid.UUID      `gorm:"type:uuid;index"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Notes           string          `gorm:"type:text"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		Description:     m.Description,
		Amount:          m.Amount,
		Date:            m.Date,
		Type:            entity.TransactionType(m.Type),
		CategoryID:      m.CategoryID,
		PaymentMethodID: m.PaymentMethodID,
		UserID:          m.UserID,
		Notes:           m.Notes,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		Description:     transaction.Description,
		Amount:          transaction.Amount,
		Date:            transaction.Date,
		Type:            string(transaction.Type),
		CategoryID:      transaction.CategoryID,
		PaymentMethodID: transaction.PaymentMethodID,
		UserID:          transaction.UserID,
		Notes:           transaction.Notes,
	}
}
