// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// IsValid reports whether the category type is one of the two allowed values.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category represents a transaction category owned by a single user.
type Category struct {
	ID     uuid.UUID
	Name   string
	UserID uuid.UUID
	Type   CategoryType
}

// NewCategory creates a new Category entity.
func NewCategory(name string, userID uuid.UUID, categoryType CategoryType) *Category {
	return &Category{
		ID:     uuid.New(),
		Name:   name,
		UserID: userID,
		Type:   categoryType,
	}
}
