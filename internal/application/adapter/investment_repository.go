package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// InvestmentFilter narrows investment queries by type and calendar period.
type InvestmentFilter struct {
	InvestmentTypeID *uuid.UUID
	Year             *int
	Month            *int
}

// InvestmentRepository defines the interface for investment persistence
// operations, scoped to the owning user. Balance mutations are atomic
// single-statement updates so concurrent contributions cannot lose writes.
type InvestmentRepository interface {
	// Create persists a new investment.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment owned by the given user, with its
	// investment type resolved.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.InvestmentWithType, error)

	// ListByUser retrieves the user's investments, newest date first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter InvestmentFilter) ([]*entity.InvestmentWithType, error)

	// Update persists changes to an investment owned by the given user.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete removes an investment owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// AddToCurrentValue increments current_value by amount in a single
	// statement and returns the updated row.
	AddToCurrentValue(ctx context.Context, id, userID uuid.UUID, amount float64) (*entity.InvestmentWithType, error)

	// SubtractFromCurrentValue decrements current_value by amount, guarded
	// so the balance can never go negative. Returns InsufficientFundsError
	// when the guard rejects the update.
	SubtractFromCurrentValue(ctx context.Context, id, userID uuid.UUID, amount float64) (*entity.InvestmentWithType, error)
}
