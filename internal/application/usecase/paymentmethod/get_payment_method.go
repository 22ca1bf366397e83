package paymentmethod

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// GetPaymentMethodInput represents the input for fetching a payment method.
type GetPaymentMethodInput struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
}

// GetPaymentMethodOutput represents the output of fetching a payment method.
type GetPaymentMethodOutput struct {
	PaymentMethod *entity.PaymentMethod
}

// GetPaymentMethodUseCase handles fetching a single payment method.
type GetPaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewGetPaymentMethodUseCase creates a new GetPaymentMethodUseCase instance.
func NewGetPaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *GetPaymentMethodUseCase {
	return &GetPaymentMethodUseCase{paymentMethodRepo: paymentMethodRepo}
}

// Execute fetches a payment method owned by the user.
func (uc *GetPaymentMethodUseCase) Execute(ctx context.Context, input GetPaymentMethodInput) (*GetPaymentMethodOutput, error) {
	paymentMethod, err := uc.paymentMethodRepo.FindByID(ctx, input.PaymentMethodID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetPaymentMethodOutput{PaymentMethod: paymentMethod}, nil
}
