// Package paymentmethod contains payment method use cases.
package paymentmethod

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// CreatePaymentMethodInput represents the input for payment method creation.
type CreatePaymentMethodInput struct {
	UserID uuid.UUID
	Name   string
}

// CreatePaymentMethodOutput represents the output of payment method creation.
type CreatePaymentMethodOutput struct {
	PaymentMethod *entity.PaymentMethod
}

// CreatePaymentMethodUseCase handles payment method creation.
type CreatePaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
	sanitizer         adapter.Sanitizer
}

// NewCreatePaymentMethodUseCase creates a new CreatePaymentMethodUseCase instance.
func NewCreatePaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository, sanitizer adapter.Sanitizer) *CreatePaymentMethodUseCase {
	return &CreatePaymentMethodUseCase{
		paymentMethodRepo: paymentMethodRepo,
		sanitizer:         sanitizer,
	}
}

// Execute performs the payment method creation.
func (uc *CreatePaymentMethodUseCase) Execute(ctx context.Context, input CreatePaymentMethodInput) (*CreatePaymentMethodOutput, error) {
	name := uc.sanitizer.Sanitize(input.Name)
	if name == "" {
		return nil, domainerror.NewValidationError("name", "Name is required")
	}

	paymentMethod := entity.NewPaymentMethod(name, input.UserID)
	if err := uc.paymentMethodRepo.Create(ctx, paymentMethod); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	return &CreatePaymentMethodOutput{PaymentMethod: paymentMethod}, nil
}
