package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"type:varchar(120);not null"`
	Description   string     `gorm:"type:text"`
	TargetAmount  float64    `gorm:"not null"`
	CurrentAmount float64    `gorm:"not null;default:0"`
	TargetDate    *time.Time `gorm:"type:date"`
	CreatedDate   time.Time  `gorm:"not null;index"`
	Status        string     `gorm:"type:varchar(10);not null;default:'active'"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		CreatedDate:   m.CreatedDate,
		Status:        entity.GoalStatus(m.Status),
		UserID:        m.UserID,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		CreatedDate:   goal.CreatedDate,
		Status:        string(goal.Status),
		UserID:        goal.UserID,
	}
}
