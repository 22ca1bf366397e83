package adapters

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/finwise/backend/internal/application/adapter"
)

// sanitizer implements adapter.Sanitizer with a strict bluemonday policy
// that strips all markup from free-text fields.
type sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new sanitizer instance.
func NewSanitizer() adapter.Sanitizer {
	return &sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips unsafe markup and surrounding whitespace.
func (s *sanitizer) Sanitize(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
