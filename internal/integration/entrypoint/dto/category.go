package dto

import "github.com/finwise/backend/internal/domain/entity"

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name         string `json:"name"`
	CategoryType string `json:"category_type"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	CategoryType *string `json:"category_type"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	UserID       string `json:"user_id"`
	CategoryType string `json:"category_type"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		UserID:       category.UserID.String(),
		CategoryType: string(category.Type),
	}
}

// ToCategoryListResponse converts a list of categories to response DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
