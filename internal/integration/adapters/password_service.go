// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/finwise/backend/internal/application/adapter"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// minPasswordLength is the minimum required password length in runes.
	minPasswordLength = 8
	// maxPasswordBytes is bcrypt's input limit; longer passwords are
	// rejected up front instead of failing inside GenerateFromPassword.
	maxPasswordBytes = 72
)

// passwordService implements the adapter.PasswordService interface.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password using bcrypt with cost 12.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength checks the password against the strength rules in
// order, failing on the first rule not met.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domainerror.NewValidationError("password", "Password must be at least 8 characters long")
	}
	if len(password) > maxPasswordBytes {
		return domainerror.NewValidationError("password", "Password must be at most 72 characters long")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return domainerror.NewValidationError("password", "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		return domainerror.NewValidationError("password", "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return domainerror.NewValidationError("password", "Password must contain at least one number")
	}
	if !strings.ContainsFunc(password, isSpecial) {
		return domainerror.NewValidationError("password", "Password must contain at least one special character")
	}
	return nil
}

// isSpecial reports whether the rune counts as a special character. Any
// non-alphanumeric character qualifies, spaces included.
func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
