package adapters

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/finwise/backend/internal/domain/error"
)

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name            string
		password        string
		expectedMessage string
	}{
		{
			name:            "too short",
			password:        "short1!",
			expectedMessage: "Password must be at least 8 characters long",
		},
		{
			name:            "length counts runes not bytes",
			password:        "Señor1!",
			expectedMessage: "Password must be at least 8 characters long",
		},
		{
			name:            "longer than bcrypt can hash",
			password:        "Aa1!" + strings.Repeat("x", 69),
			expectedMessage: "Password must be at most 72 characters long",
		},
		{
			name:            "missing uppercase",
			password:        "alllowercase1!",
			expectedMessage: "Password must contain at least one uppercase letter",
		},
		{
			name:            "missing lowercase",
			password:        "ALLUPPERCASE1!",
			expectedMessage: "Password must contain at least one lowercase letter",
		},
		{
			name:            "missing number",
			password:        "NoNumbersHere!",
			expectedMessage: "Password must contain at least one number",
		},
		{
			name:            "missing special character",
			password:        "NoSpecials123",
			expectedMessage: "Password must contain at least one special character",
		},
		{
			name:     "valid password",
			password: "Password123!",
		},
		{
			name:     "tilde counts as special",
			password: "Password123~",
		},
		{
			name:     "slash counts as special",
			password: "Password123/",
		},
		{
			name:     "space counts as special",
			password: "Password123 ",
		},
		{
			name:     "non-ascii symbol counts as special",
			password: "Password123§",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.expectedMessage == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var validationErr *domainerror.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if validationErr.Reason != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, validationErr.Reason)
			}
		})
	}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("Password123!")
	if err != nil {
		t.Fatalf("expected hash to succeed, got %v", err)
	}
	if hash == "Password123!" {
		t.Fatal("expected hash to differ from the plain password")
	}

	t.Run("correct password verifies", func(t *testing.T) {
		if err := service.VerifyPassword(hash, "Password123!"); err != nil {
			t.Errorf("expected verification to succeed, got %v", err)
		}
	})

	t.Run("wrong password fails", func(t *testing.T) {
		if err := service.VerifyPassword(hash, "WrongPassword123!"); err == nil {
			t.Error("expected verification to fail for a wrong password")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		second, err := service.HashPassword("Password123!")
		if err != nil {
			t.Fatalf("expected hash to succeed, got %v", err)
		}
		if second == hash {
			t.Error("expected two hashes of the same password to differ")
		}
	})
}
