package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations,
// scoped to the owning user.
type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal owned by the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// ListByUser retrieves the user's goals, newest created first,
	// optionally filtered by status.
	ListByUser(ctx context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error)

	// Update persists changes to a goal owned by the given user.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// Contribute increments current_amount by amount atomically and flips an
	// active goal to completed when the target is reached, all within one
	// database transaction. Returns the updated goal.
	Contribute(ctx context.Context, id, userID uuid.UUID, amount float64) (*entity.Goal, error)
}
