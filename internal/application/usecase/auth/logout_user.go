package auth

import (
	"context"
	"fmt"

	"github.com/finwise/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	Token string
}

// LogoutUserUseCase revokes the presented session token so it can no longer
// be used, even before its natural expiry.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute performs the logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if err := uc.tokenService.Revoke(ctx, input.Token); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
