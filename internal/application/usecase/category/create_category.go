// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Type   entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	sanitizer    adapter.Sanitizer
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, sanitizer adapter.Sanitizer) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
	}
}

// Execute performs the category creation. An empty type defaults to expense.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := uc.sanitizer.Sanitize(input.Name)
	if name == "" {
		return nil, domainerror.NewValidationError("name", "Name is required")
	}

	categoryType := input.Type
	if categoryType == "" {
		categoryType = entity.CategoryTypeExpense
	}
	if !categoryType.IsValid() {
		return nil, domainerror.NewValidationError("category_type", "Invalid category type. Must be 'expense' or 'income'")
	}

	category := entity.NewCategory(name, input.UserID, categoryType)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
