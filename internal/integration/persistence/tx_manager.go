// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finwise/backend/internal/application/adapter"
)

// txKey carries an open transaction through the context. Repositories join
// it via dbFromContext, so use cases compose into atomic units without
// knowing about GORM.
type txKey struct{}

// dbFromContext returns the transaction carried by ctx, or fallback when no
// transaction is open.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// txManager implements adapter.TxManager on a GORM connection.
type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager instance.
func NewTxManager(db *gorm.DB) adapter.TxManager {
	return &txManager{db: db}
}

// Do runs fn inside a single database transaction. Any error rolls back
// every write made through the context fn receives.
func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
