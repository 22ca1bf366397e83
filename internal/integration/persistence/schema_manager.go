package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/integration/persistence/model"
)

// schemaManager implements adapter.SchemaManager with GORM's migrator.
type schemaManager struct {
	db *gorm.DB
}

// NewSchemaManager creates a new schema manager instance.
func NewSchemaManager(db *gorm.DB) adapter.SchemaManager {
	return &schemaManager{db: db}
}

// Reset drops and recreates every table.
func (m *schemaManager) Reset(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	if err := db.Migrator().DropTable(model.AllModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("failed to recreate tables: %w", err)
	}
	return nil
}
