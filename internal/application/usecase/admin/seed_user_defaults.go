package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/application/usecase/seeding"
)

// SeedUserDefaultsInput identifies the user to backfill.
type SeedUserDefaultsInput struct {
	UserID uuid.UUID
}

// SeedUserDefaultsUseCase backfills starter categories, payment methods and
// investment types for a pre-existing user. Idempotent; resource types the
// user already has rows for are left untouched.
type SeedUserDefaultsUseCase struct {
	userRepo     adapter.UserRepository
	seedDefaults *seeding.SeedDefaultsUseCase
}

// NewSeedUserDefaultsUseCase creates a new SeedUserDefaultsUseCase instance.
func NewSeedUserDefaultsUseCase(userRepo adapter.UserRepository, seedDefaults *seeding.SeedDefaultsUseCase) *SeedUserDefaultsUseCase {
	return &SeedUserDefaultsUseCase{
		userRepo:     userRepo,
		seedDefaults: seedDefaults,
	}
}

// Execute runs the backfill after confirming the user exists.
func (uc *SeedUserDefaultsUseCase) Execute(ctx context.Context, input SeedUserDefaultsInput) error {
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return err
	}
	return uc.seedDefaults.Execute(ctx, input.UserID)
}
