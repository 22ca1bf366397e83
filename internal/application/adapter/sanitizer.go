package adapter

// Sanitizer strips unsafe markup from user-supplied free text before it is
// stored (usernames, descriptions, notes).
type Sanitizer interface {
	Sanitize(input string) string
}
