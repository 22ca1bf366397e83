// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD date string.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewValidationError("date", "Invalid date format. Use YYYY-MM-DD")
	}
	return date, nil
}

// CreateTransactionInput represents the input for transaction creation.
// Date is an optional YYYY-MM-DD string; empty means today.
type CreateTransactionInput struct {
	UserID          uuid.UUID
	Description     string
	Amount          *decimal.Decimal
	Date            string
	Type            string
	CategoryID      *uuid.UUID
	PaymentMethodID *uuid.UUID
	Notes           string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	sanitizer         adapter.Sanitizer
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	sanitizer adapter.Sanitizer,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		sanitizer:         sanitizer,
	}
}

// Execute performs the transaction creation. Income transactions never carry
// a payment method; expense transactions must.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description := uc.sanitizer.Sanitize(input.Description)
	notes := uc.sanitizer.Sanitize(input.Notes)

	if description == "" {
		return nil, domainerror.NewValidationError("description", "Description is required")
	}
	if input.Amount == nil {
		return nil, domainerror.NewValidationError("amount", "Amount is required")
	}
	if input.Type == "" {
		return nil, domainerror.NewValidationError("transaction_type", "Transaction type is required")
	}
	if input.CategoryID == nil {
		return nil, domainerror.NewValidationError("category_id", "Category ID is required")
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewValidationError("amount", "Amount must be a positive number")
	}

	transactionType := entity.TransactionType(input.Type)
	if !transactionType.IsValid() {
		return nil, domainerror.NewValidationError("transaction_type", "Invalid transaction type. Must be 'income' or 'expense'")
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != "" {
		parsed, err := parseDate(input.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	paymentMethodID := input.PaymentMethodID
	if transactionType == entity.TransactionTypeIncome {
		paymentMethodID = nil
	} else if paymentMethodID == nil {
		return nil, domainerror.NewValidationError("payment_method_id", "Payment method ID is required for expense transactions")
	}

	category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID, input.UserID)
	if err != nil {
		var notFound *domainerror.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domainerror.NewReferenceNotFoundError("Category")
		}
		return nil, err
	}

	paymentMethodName := ""
	if paymentMethodID != nil {
		paymentMethod, err := uc.paymentMethodRepo.FindByID(ctx, *paymentMethodID, input.UserID)
		if err != nil {
			var notFound *domainerror.NotFoundError
			if errors.As(err, &notFound) {
				return nil, domainerror.NewReferenceNotFoundError("Payment method")
			}
			return nil, err
		}
		paymentMethodName = paymentMethod.Name
	}

	transaction := entity.NewTransaction(
		input.UserID,
		description,
		*input.Amount,
		date,
		transactionType,
		*input.CategoryID,
		paymentMethodID,
		notes,
	)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: &entity.TransactionWithRefs{
		Transaction:       transaction,
		CategoryName:      category.Name,
		PaymentMethodName: paymentMethodName,
	}}, nil
}
