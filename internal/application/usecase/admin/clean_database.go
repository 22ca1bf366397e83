// Package admin contains operator-facing maintenance use cases. The routes
// that invoke them are gated by an API key, not by user identity.
package admin

import (
	"context"
	"fmt"

	"github.com/finwise/backend/internal/application/adapter"
)

// CleanDatabaseUseCase drops and recreates every table. Destructive;
// intended for staging environments.
type CleanDatabaseUseCase struct {
	schemaManager adapter.SchemaManager
}

// NewCleanDatabaseUseCase creates a new CleanDatabaseUseCase instance.
func NewCleanDatabaseUseCase(schemaManager adapter.SchemaManager) *CleanDatabaseUseCase {
	return &CleanDatabaseUseCase{schemaManager: schemaManager}
}

// Execute wipes the schema.
func (uc *CleanDatabaseUseCase) Execute(ctx context.Context) error {
	if err := uc.schemaManager.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset database schema: %w", err)
	}
	return nil
}
