package model

import (
	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(80);not null"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type   string    `gorm:"type:varchar(10);not null;default:'expense'"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:     m.ID,
		Name:   m.Name,
		UserID: m.UserID,
		Type:   entity.CategoryType(m.Type),
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:     category.ID,
		Name:   category.Name,
		UserID: category.UserID,
		Type:   string(category.Type),
	}
}
