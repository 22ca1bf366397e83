package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestTokenService(t *testing.T, secret string, expiry time.Duration) *tokenService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTokenService(secret, expiry, client).(*tokenService)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	service := newTestTokenService(t, "test-secret", time.Hour)

	userID := uuid.New()
	token, err := service.Generate(ctx, userID, "maria")
	if err != nil {
		t.Fatalf("expected generate to succeed, got %v", err)
	}

	claims, err := service.Validate(ctx, token)
	if err != nil {
		t.Fatalf("expected validate to succeed, got %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Username != "maria" {
		t.Errorf("expected username maria, got %s", claims.Username)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}
}

func TestTokenService_Validate_Rejections(t *testing.T) {
	ctx := context.Background()
	service := newTestTokenService(t, "test-secret", time.Hour)

	t.Run("rejects garbage token", func(t *testing.T) {
		if _, err := service.Validate(ctx, "not-a-token"); err == nil {
			t.Error("expected validation to fail for a malformed token")
		}
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := newTestTokenService(t, "other-secret", time.Hour)
		token, err := other.Generate(ctx, uuid.New(), "maria")
		if err != nil {
			t.Fatalf("expected generate to succeed, got %v", err)
		}

		if _, err := service.Validate(ctx, token); err == nil {
			t.Error("expected validation to fail for a foreign signature")
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTestTokenService(t, "test-secret", -time.Minute)
		token, err := expired.Generate(ctx, uuid.New(), "maria")
		if err != nil {
			t.Fatalf("expected generate to succeed, got %v", err)
		}

		if _, err := service.Validate(ctx, token); err == nil {
			t.Error("expected validation to fail for an expired token")
		}
	})
}

func TestTokenService_Revoke(t *testing.T) {
	ctx := context.Background()
	service := newTestTokenService(t, "test-secret", time.Hour)

	token, err := service.Generate(ctx, uuid.New(), "maria")
	if err != nil {
		t.Fatalf("expected generate to succeed, got %v", err)
	}

	if _, err := service.Validate(ctx, token); err != nil {
		t.Fatalf("expected token to be valid before revocation, got %v", err)
	}

	if err := service.Revoke(ctx, token); err != nil {
		t.Fatalf("expected revoke to succeed, got %v", err)
	}

	if _, err := service.Validate(ctx, token); err == nil {
		t.Error("expected validation to fail after revocation")
	}
}
