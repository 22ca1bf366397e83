package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// TransactionFilter narrows transaction queries by calendar period.
type TransactionFilter struct {
	Year  *int
	Month *int
}

// TransactionRepository defines the interface for transaction persistence
// operations, scoped to the owning user.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction owned by the given user, with the
	// names of its referenced category and payment method resolved.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error)

	// ListByUser retrieves the user's transactions, newest date first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.TransactionWithRefs, error)

	// Update persists changes to a transaction owned by the given user.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
