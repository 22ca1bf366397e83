package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for updating a category.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       *string
	Type       *string
}

// UpdateCategoryOutput represents the output of updating a category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	sanitizer    adapter.Sanitizer
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, sanitizer adapter.Sanitizer) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
	}
}

// Execute applies a partial update to a category owned by the user.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := uc.sanitizer.Sanitize(*input.Name)
		if name == "" {
			return nil, domainerror.NewValidationError("name", "Name is required")
		}
		category.Name = name
	}

	if input.Type != nil {
		categoryType := entity.CategoryType(*input.Type)
		if !categoryType.IsValid() {
			return nil, domainerror.NewValidationError("category_type", "Invalid category type. Must be 'expense' or 'income'")
		}
		category.Type = categoryType
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
