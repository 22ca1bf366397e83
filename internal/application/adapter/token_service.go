package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing, validating and revoking
// opaque session credentials.
type TokenService interface {
	// Generate issues a new session token for the user.
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// Validate parses and verifies a token, rejecting revoked tokens.
	Validate(ctx context.Context, token string) (*TokenClaims, error)

	// Revoke invalidates a token until its natural expiry.
	Revoke(ctx context.Context, token string) error
}
