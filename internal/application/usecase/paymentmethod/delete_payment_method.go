package paymentmethod

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
)

// DeletePaymentMethodInput represents the input for deleting a payment method.
type DeletePaymentMethodInput struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
}

// DeletePaymentMethodUseCase handles payment method deletion.
type DeletePaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewDeletePaymentMethodUseCase creates a new DeletePaymentMethodUseCase instance.
func NewDeletePaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *DeletePaymentMethodUseCase {
	return &DeletePaymentMethodUseCase{paymentMethodRepo: paymentMethodRepo}
}

// Execute deletes a payment method owned by the user.
func (uc *DeletePaymentMethodUseCase) Execute(ctx context.Context, input DeletePaymentMethodInput) error {
	return uc.paymentMethodRepo.Delete(ctx, input.PaymentMethodID, input.UserID)
}
