package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
	"github.com/finwise/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{db: db}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(goalModel).Error
}

// FindByID retrieves a goal owned by the given user.
func (r *goalRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewNotFoundError("Goal")
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// ListByUser retrieves the user's goals, newest created first.
func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var goalModels []model.GoalModel
	if err := query.Order("created_date DESC").Find(&goalModels).Error; err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates a goal owned by the given user.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]interface{}{
			"name":           goal.Name,
			"description":    goal.Description,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"target_date":    goal.TargetDate,
			"status":         string(goal.Status),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Goal")
	}
	return nil
}

// Delete removes a goal owned by the given user.
func (r *goalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&model.GoalModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Goal")
	}
	return nil
}

// Contribute increments current_amount atomically and flips an active goal
// to completed when the target is reached. Both statements run in one
// transaction, so concurrent contributions cannot lose writes and the
// completed transition stays one-way.
func (r *goalRepository) Contribute(ctx context.Context, id, userID uuid.UUID, amount float64) (*entity.Goal, error) {
	var goalModel model.GoalModel
	err := dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.GoalModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("current_amount", gorm.Expr("current_amount + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewNotFoundError("Goal")
		}

		if err := tx.Model(&model.GoalModel{}).
			Where("id = ? AND user_id = ? AND status = ? AND current_amount >= target_amount", id, userID, string(entity.GoalStatusActive)).
			Update("status", string(entity.GoalStatusCompleted)).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND user_id = ?", id, userID).First(&goalModel).Error
	})
	if err != nil {
		return nil, err
	}
	return goalModel.ToEntity(), nil
}
