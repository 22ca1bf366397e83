package entity

import "github.com/google/uuid"

// PaymentMethod represents a way of paying for expenses (cash, debit card,
// instant transfer), owned by a single user.
type PaymentMethod struct {
	ID     uuid.UUID
	Name   string
	UserID uuid.UUID
}

// NewPaymentMethod creates a new PaymentMethod entity.
func NewPaymentMethod(name string, userID uuid.UUID) *PaymentMethod {
	return &PaymentMethod{
		ID:     uuid.New(),
		Name:   name,
		UserID: userID,
	}
}
