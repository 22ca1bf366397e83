package paymentmethod

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// UpdatePaymentMethodInput represents the input for updating a payment method.
type UpdatePaymentMethodInput struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
	Name            *string
}

// UpdatePaymentMethodOutput represents the output of updating a payment method.
type UpdatePaymentMethodOutput struct {
	PaymentMethod *entity.PaymentMethod
}

// UpdatePaymentMethodUseCase handles payment method updates.
type UpdatePaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
	sanitizer         adapter.Sanitizer
}

// NewUpdatePaymentMethodUseCase creates a new UpdatePaymentMethodUseCase instance.
func NewUpdatePaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository, sanitizer adapter.Sanitizer) *UpdatePaymentMethodUseCase {
	return &UpdatePaymentMethodUseCase{
		paymentMethodRepo: paymentMethodRepo,
		sanitizer:         sanitizer,
	}
}

// Execute applies a partial update to a payment method owned by the user.
func (uc *UpdatePaymentMethodUseCase) Execute(ctx context.Context, input UpdatePaymentMethodInput) (*UpdatePaymentMethodOutput, error) {
	paymentMethod, err := uc.paymentMethodRepo.FindByID(ctx, input.PaymentMethodID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := uc.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return nil, domainerror.NewValidationError("name", "Name is required")
		}
		paymentMethod.Name = name
	}

	if err := uc.paymentMethodRepo.Update(ctx, paymentMethod); err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}

	return &UpdatePaymentMethodOutput{PaymentMethod: paymentMethod}, nil
}
