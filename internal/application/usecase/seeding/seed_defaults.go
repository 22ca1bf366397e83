// Package seeding provisions starter data for user accounts.
package seeding

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
)

// Starter rows inserted for every new account. A resource type is only
// seeded while the user has zero rows of it, so repeated runs are no-ops.
var (
	defaultCategories = []struct {
		Name string
		Type entity.CategoryType
	}{
		{"Alimentação", entity.CategoryTypeExpense},
		{"Transporte", entity.CategoryTypeExpense},
		{"Salário", entity.CategoryTypeIncome},
		{"Freelance", entity.CategoryTypeIncome},
	}

	defaultPaymentMethods = []string{"Dinheiro", "Cartão de Débito", "PIX"}

	defaultInvestmentTypes = []string{"Renda Fixa", "Ações", "Fundos Imobiliários"}
)

// SeedDefaultsUseCase inserts the starter categories, payment methods and
// investment types for a user. It runs at registration and doubles as a
// backfill for pre-existing accounts that lack defaults.
type SeedDefaultsUseCase struct {
	categoryRepo       adapter.CategoryRepository
	paymentMethodRepo  adapter.PaymentMethodRepository
	investmentTypeRepo adapter.InvestmentTypeRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	investmentTypeRepo adapter.InvestmentTypeRepository,
) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo:       categoryRepo,
		paymentMethodRepo:  paymentMethodRepo,
		investmentTypeRepo: investmentTypeRepo,
	}
}

// Execute seeds every resource type the user has zero rows of.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	count, err := uc.categoryRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		for _, c := range defaultCategories {
			if err := uc.categoryRepo.Create(ctx, entity.NewCategory(c.Name, userID, c.Type)); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
			}
		}
	}

	count, err = uc.paymentMethodRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count payment methods: %w", err)
	}
	if count == 0 {
		for _, name := range defaultPaymentMethods {
			if err := uc.paymentMethodRepo.Create(ctx, entity.NewPaymentMethod(name, userID)); err != nil {
				return fmt.Errorf("failed to seed payment method %q: %w", name, err)
			}
		}
	}

	count, err = uc.investmentTypeRepo.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count investment types: %w", err)
	}
	if count == 0 {
		for _, name := range defaultInvestmentTypes {
			if err := uc.investmentTypeRepo.Create(ctx, entity.NewInvestmentType(name, userID)); err != nil {
				return fmt.Errorf("failed to seed investment type %q: %w", name, err)
			}
		}
	}

	return nil
}
