package adapter

// PasswordService defines the interface for password hashing and strength
// validation.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a stored hash.
	// Returns an error when they do not match.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks the password against the strength
	// rules, failing fast with a rule-specific ValidationError.
	ValidatePasswordStrength(password string) error
}
