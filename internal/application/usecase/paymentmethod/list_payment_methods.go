package paymentmethod

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// ListPaymentMethodsInput represents the input for listing payment methods.
type ListPaymentMethodsInput struct {
	UserID uuid.UUID
}

// ListPaymentMethodsOutput represents the output of listing payment methods.
type ListPaymentMethodsOutput struct {
	PaymentMethods []*entity.PaymentMethod
}

// ListPaymentMethodsUseCase handles listing a user's payment methods.
type ListPaymentMethodsUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewListPaymentMethodsUseCase creates a new ListPaymentMethodsUseCase instance.
func NewListPaymentMethodsUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *ListPaymentMethodsUseCase {
	return &ListPaymentMethodsUseCase{paymentMethodRepo: paymentMethodRepo}
}

// Execute lists the user's payment methods.
func (uc *ListPaymentMethodsUseCase) Execute(ctx context.Context, input ListPaymentMethodsInput) (*ListPaymentMethodsOutput, error) {
	paymentMethods, err := uc.paymentMethodRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return &ListPaymentMethodsOutput{PaymentMethods: paymentMethods}, nil
}
