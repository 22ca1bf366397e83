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

// paymentMethodRepository implements the adapter.PaymentMethodRepository interface.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository instance.
func NewPaymentMethodRepository(db *gorm.DB) adapter.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

// Create creates a new payment method in the database.
func (r *paymentMethodRepository) Create(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	paymentMethodModel := model.PaymentMethodFromEntity(paymentMethod)
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(paymentMethodModel).Error
}

// FindByID retrieves a payment method owned by the given user.
func (r *paymentMethodRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.PaymentMethod, error) {
	var paymentMethodModel model.PaymentMethodModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&paymentMethodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewNotFoundError("Payment method")
		}
		return nil, result.Error
	}
	return paymentMethodModel.ToEntity(), nil
}

// ListByUser retrieves all payment methods for a user.
func (r *paymentMethodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var paymentMethodModels []model.PaymentMethodModel
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&paymentMethodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	paymentMethods := make([]*entity.PaymentMethod, len(paymentMethodModels))
	for i, pm := range paymentMethodModels {
		paymentMethods[i] = pm.ToEntity()
	}
	return paymentMethods, nil
}

// Update updates a payment method owned by the given user.
func (r *paymentMethodRepository) Update(ctx context.Context, paymentMethod *entity.PaymentMethod) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.PaymentMethodModel{}).
		Where("id = ? AND user_id = ?", paymentMethod.ID, paymentMethod.UserID).
		Update("name", paymentMethod.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Payment method")
	}
	return nil
}

// Delete removes a payment method owned by the given user.
func (r *paymentMethodRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&model.PaymentMethodModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Payment method")
	}
	return nil
}

// CountByUser returns how many payment methods the user has.
func (r *paymentMethodRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.PaymentMethodModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
