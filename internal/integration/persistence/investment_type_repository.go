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

// investmentTypeRepository implements the adapter.InvestmentTypeRepository interface.
type investmentTypeRepository struct {
	db *gorm.DB
}

// NewInvestmentTypeRepository creates a new investment type repository instance.
func NewInvestmentTypeRepository(db *gorm.DB) adapter.InvestmentTypeRepository {
	return &investmentTypeRepository{db: db}
}

// Create creates a new investment type in the database.
func (r *investmentTypeRepository) Create(ctx context.Context, investmentType *entity.InvestmentType) error {
	investmentTypeModel := model.InvestmentTypeFromEntity(investmentType)
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(investmentTypeModel).Error
}

// FindByID retrieves an investment type owned by the given user.
func (r *investmentTypeRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.InvestmentType, error) {
	var investmentTypeModel model.InvestmentTypeModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&investmentTypeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewNotFoundError("Investment type")
		}
		return nil, result.Error
	}
	return investmentTypeModel.ToEntity(), nil
}

// ListByUser retrieves all investment types for a user.
func (r *investmentTypeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvestmentType, error) {
	var investmentTypeModels []model.InvestmentTypeModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&investmentTypeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investmentTypes := make([]*entity.InvestmentType, len(investmentTypeModels))
	for i, it := range investmentTypeModels {
		investmentTypes[i] = it.ToEntity()
	}
	return investmentTypes, nil
}

// Update updates an investment type owned by the given user.
func (r *investmentTypeRepository) Update(ctx context.Context, investmentType *entity.InvestmentType) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.InvestmentTypeModel{}).
		Where("id = ? AND user_id = ?", investmentType.ID, investmentType.UserID).
		Update("name", investmentType.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Investment type")
	}
	return nil
}

// Delete removes an investment type owned by the given user.
func (r *investmentTypeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&model.InvestmentTypeModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Investment type")
	}
	return nil
}

// CountByUser returns how many investment types the user has.
func (r *investmentTypeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.InvestmentTypeModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
