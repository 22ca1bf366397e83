package adapters

import "testing"

func TestSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewSanitizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "Mercado",
			expected: "Mercado",
		},
		{
			name:     "strips script tags",
			input:    "<script>alert('x')</script>Mercado",
			expected: "Mercado",
		},
		{
			name:     "strips markup but keeps text",
			input:    "<b>Aluguel</b>",
			expected: "Aluguel",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Salário  ",
			expected: "Salário",
		},
		{
			name:     "whitespace only collapses to empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizer.Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
