package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence
// operations. Every read and write is scoped to the owning user.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category owned by the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// ListByUser retrieves all categories for a user, optionally filtered by type.
	ListByUser(ctx context.Context, userID uuid.UUID, categoryType *entity.CategoryType) ([]*entity.Category, error)

	// Update persists changes to a category owned by the given user.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// CountByUser returns how many categories the user has.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
