// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/application/usecase/seeding"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic. Creating the user and
// seeding their default data run as one transaction.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	sanitizer       adapter.Sanitizer
	seedDefaults    *seeding.SeedDefaultsUseCase
	txManager       adapter.TxManager
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	sanitizer adapter.Sanitizer,
	seedDefaults *seeding.SeedDefaultsUseCase,
	txManager adapter.TxManager,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		sanitizer:       sanitizer,
		seedDefaults:    seedDefaults,
		txManager:       txManager,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	username := uc.sanitizer.Sanitize(input.Username)
	email := uc.sanitizer.Sanitize(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewValidationError("credentials", "Missing username, email or password")
	}

	if !isValidEmail(email) {
		return nil, domainerror.NewValidationError("email", "Invalid email format")
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Username is checked before email so a duplicate-username request never
	// reveals whether the email is taken too.
	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewConflictError("Username")
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewConflictError("Email")
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(username, email, passwordHash)

	// User creation and default seeding are a single all-or-nothing unit: a
	// seeding failure must not leave an account without starter data.
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := uc.seedDefaults.Execute(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{User: user}, nil
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
