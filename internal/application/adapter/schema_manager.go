package adapter

import "context"

// SchemaManager manages the database schema lifecycle. Used by the admin
// surface to wipe and recreate all tables.
type SchemaManager interface {
	// Reset drops and recreates every table.
	Reset(ctx context.Context) error
}
