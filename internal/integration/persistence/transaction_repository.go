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

// transactionRow is a TransactionModel joined with the names of its
// referenced category and payment method.
type transactionRow struct {
	model.TransactionModel
	CategoryName      string
	PaymentMethodName string
}

func (row *transactionRow) toEntity() *entity.TransactionWithRefs {
	return &entity.TransactionWithRefs{
		Transaction:       row.TransactionModel.ToEntity(),
		CategoryName:      row.CategoryName,
		PaymentMethodName: row.PaymentMethodName,
	}
}

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{db: db}
}

// withRefs selects transactions joined with category and payment method
// names. The payment method join is left outer; income rows have none.
func (r *transactionRepository) withRefs(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx).
		Table("transactions").
		Select("transactions.*, categories.name AS category_name, COALESCE(payment_methods.name, '') AS payment_method_name").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Joins("LEFT JOIN payment_methods ON payment_methods.id = transactions.payment_method_id")
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(transactionModel).Error
}

// FindByID retrieves a transaction owned by the given user.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error) {
	var row transactionRow
	result := r.withRefs(ctx).
		Where("transactions.id = ? AND transactions.user_id = ?", id, userID).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewNotFoundError("Transaction")
		}
		return nil, result.Error
	}
	return row.toEntity(), nil
}

// ListByUser retrieves the user's transactions, newest date first.
func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.TransactionWithRefs, error) {
	query := r.withRefs(ctx).Where("transactions.user_id = ?", userID)
	query = wherePeriod(query, "transactions.date", filter.Year, filter.Month)

	var rows []transactionRow
	if err := query.Order("transactions.date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.TransactionWithRefs, len(rows))
	for i := range rows {
		transactions[i] = rows[i].toEntity()
	}
	return transactions, nil
}

// Update updates a transaction owned by the given user.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]interface{}{
			"description":       transaction.Description,
			"amount":            transaction.Amount,
			"date":              transaction.Date,
			"transaction_type":  string(transaction.Type),
			"category_id":       transaction.CategoryID,
			"payment_method_id": transaction.PaymentMethodID,
			"notes":             transaction.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Transaction")
	}
	return nil
}

// Delete removes a transaction owned by the given user.
func (r *transactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Delete(&model.TransactionModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewNotFoundError("Transaction")
	}
	return nil
}
