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

// investmentRow is an InvestmentModel joined with its type's name.
type investmentRow struct {
	model.InvestmentModel
	InvestmentTypeName string
}

func (row *investmentRow) toEntity() *entity.InvestmentWithType {
	investment := row.InvestmentModel.ToEntity()
	return &entity.InvestmentWithType{
		Investment: investment,
		InvestmentType: &entity.InvestmentType{
			ID:     investment.InvestmentTypeID,
			Name:   row.InvestmentTypeName,
			UserID: investment.UserID,
		},
	}
}

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) withType(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx).
		Table("investments").
		Select("investments.*, investment_types.name AS investment_type_name").
		Joins("JOIN investment_types ON investment_types.id = investments.investment_type_id")
}

// Create creates a new investment in the database.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(investmentModel).Error
}

// FindByID retrieves an investment owned by the given user.
func (r *investmentRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.InvestmentWithType, error) {
	var row investmentRow
	result := r.withType(ctx).
		Where("investments.id = ? AND investments.user_id = ?", id, userID).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewNotFoundError("Investment")
		}
		return nil, result.Error
	}
	return row.toEntity(), nil
}

// ListByUser retrieves the user's investments, newest date first.
func (r *investmentRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter adapter.InvestmentFilter) ([]*entity.InvestmentWithType, error) {
	query := r.withType(ctx).Where("investments.user_id = ?", userID)
	if filter.InvestmentTypeID != nil {
		query = query.Where("investments.investment_type_id = ?", *filter.InvestmentTypeID)
	}
	query = wherePeriod(query, "investments.date", filter.Year, filter.Month)

	var rows []investmentRow
	if err := query.Order("investments.date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	investments := make([]*entity.InvestmentWithType, len(rows))
	for i := range rows {
		investments[i] = rows[i].toEntity()
	}
	return investments, nil
}

// Update updates an investment owned by the given user.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Where("id = ? AND user_id = ?", investment.ID, investment.UserID).
		Updates(map[string]interface{}{
			"name":               investment.Name,
			"amount":             investment.Amount,
			"date":               investment.Date,
			"current_value":      investment.CurrentValue,
			"investment_type_id": investment.InvestmentTypeID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Investment")
	}
	return nil
}

// Delete removes an investment owned by the given user.
func (r *investmentRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&model.InvestmentModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Investment")
	}
	return nil
}

// AddToCurrentValue increments current_value in a single statement, so
// concurrent contributions cannot lose writes.
func (r *investmentRepository) AddToCurrentValue(ctx context.Context, id, userID uuid.UUID, amount float64) (*entity.InvestmentWithType, error) {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("current_value", gorm.Expr("current_value + ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.NewNotFoundError("Investment")
	}
	return r.FindByID(ctx, id, userID)
}

// SubtractFromCurrentValue decrements current_value, guarded so the balance
// never goes negative. A guard rejection leaves the row untouched and is
// reported as InsufficientFundsError.
func (r *investmentRepository) SubtractFromCurrentValue(ctx context.Context, id, userID uuid.UUID, amount float64) (*entity.InvestmentWithType, error) {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Where("id = ? AND user_id = ? AND current_value >= ?", id, userID, amount).
		Update("current_value", gorm.Expr("current_value - ?", amount))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from a rejected guard.
		if _, err := r.FindByID(ctx, id, userID); err != nil {
			return nil, err
		}
		return nil, domainerror.NewInsufficientFundsError()
	}
	return r.FindByID(ctx, id, userID)
}
