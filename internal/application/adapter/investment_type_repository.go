package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/domain/entity"
)

// InvestmentTypeRepository defines the interface for investment type
// persistence operations, scoped to the owning user.
type InvestmentTypeRepository interface {
	Create(ctx context.Context, investmentType *entity.InvestmentType) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.InvestmentType, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvestmentType, error)
	Update(ctx context.Context, investmentType *entity.InvestmentType) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
