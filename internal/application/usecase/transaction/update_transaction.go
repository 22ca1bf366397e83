package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	UserID          uuid.UUID
	TransactionID   uuid.UUID
	Description     *string
	Amount          *decimal.Decimal
	Date            *string
	Type            *string
	CategoryID      *uuid.UUID
	PaymentMethodID *uuid.UUID
	Notes           *string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// UpdateTransactionUseCase handles transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	sanitizer         adapter.Sanitizer
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	sanitizer adapter.Sanitizer,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		sanitizer:         sanitizer,
	}
}

// Execute applies a partial update to a transaction owned by the user.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}
	transaction := existing.Transaction
	categoryName := existing.CategoryName
	paymentMethodName := existing.PaymentMethodName

	if input.Description != nil {
		transaction.Description = uc.sanitizer.Sanitize(*input.Description)
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewValidationError("amount", "Amount must be a positive number")
		}
		transaction.Amount = *input.Amount
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = date
	}

	if input.Type != nil {
		transactionType := entity.TransactionType(*input.Type)
		if !transactionType.IsValid() {
			return nil, domainerror.NewValidationError("transaction_type", "Invalid transaction type. Must be 'income' or 'expense'")
		}
		transaction.Type = transactionType
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			var notFound *domainerror.NotFoundError
			if errors.As(err, &notFound) {
				return nil, domainerror.NewReferenceNotFoundError("Category")
			}
			return nil, err
		}
		transaction.CategoryID = *input.CategoryID
		categoryName = category.Name
	}

	if input.PaymentMethodID != nil {
		paymentMethod, err := uc.paymentMethodRepo.FindByID(ctx, *input.PaymentMethodID, input.UserID)
		if err != nil {
			var notFound *domainerror.NotFoundError
			if errors.As(err, &notFound) {
				return nil, domainerror.NewReferenceNotFoundError("Payment method")
			}
			return nil, err
		}
		transaction.PaymentMethodID = input.PaymentMethodID
		paymentMethodName = paymentMethod.Name
	}

	if input.Notes != nil {
		transaction.Notes = uc.sanitizer.Sanitize(*input.Notes)
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: &entity.TransactionWithRefs{
		Transaction:       transaction,
		CategoryName:      categoryName,
		PaymentMethodName: paymentMethodName,
	}}, nil
}
