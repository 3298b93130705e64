package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"thyroidrisk/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db sqlx.ExecerContext) error
	Version() string
}

// step is one idempotent schema statement
type step struct {
	name string
	sql  string
}

// MigrationRunner creates the load-history schema
type MigrationRunner struct {
	version string
	steps   []step
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
		steps: []step{
			{name: "dataset_loads table", sql: createDatasetLoadsTable},
			{name: "dataset_loads indexes", sql: createDatasetLoadsIndexes},
		},
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in order. Every statement is safe to
// run against an already migrated database.
func (r *MigrationRunner) Run(ctx context.Context, db sqlx.ExecerContext) error {
	for _, s := range r.steps {
		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			return errors.DatabaseError("failed to create "+s.name, err)
		}
	}
	return nil
}

const createDatasetLoadsTable = `
	CREATE TABLE IF NOT EXISTS dataset_loads (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		column_count INTEGER NOT NULL,
		notices JSONB NOT NULL DEFAULT '[]'::jsonb,
		loaded_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)
`

const createDatasetLoadsIndexes = `
	CREATE INDEX IF NOT EXISTS idx_dataset_loads_loaded_at ON dataset_loads(loaded_at DESC)
`
