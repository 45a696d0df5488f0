package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the user_version Migrate brings a database to.
const ExpectedSchemaVersion = 2

// schemaStep moves the schema from version-1 to version.
type schemaStep struct {
	name       string
	statements []string
	version    int
}

var schemaSteps = []schemaStep{
	{
		version: 1,
		name:    "create transactions and milestones",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS transactions (
				id                TEXT PRIMARY KEY,
				phone_number      TEXT NOT NULL,
				amount            REAL NOT NULL,
				spent_category    TEXT NOT NULL,
				method_of_payment TEXT NOT NULL,
				receiver          TEXT NOT NULL,
				created_at        DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at)`,
			`CREATE TABLE IF NOT EXISTS milestones (
				id           TEXT PRIMARY KEY,
				saved_amount REAL NOT NULL,
				goal_amount  REAL NOT NULL,
				duration     TEXT NOT NULL,
				created_at   DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_milestones_created_at ON milestones(created_at)`,
		},
	},
	{
		version: 2,
		name:    "index transactions by category",
		statements: []string{
			`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(spent_category)`,
		},
	},
}

// Migrate applies every schema step newer than the database's user_version,
// one transaction per step.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, step := range schemaSteps {
		if step.version <= current {
			continue
		}
		if err := s.inTx(ctx, step.apply); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", step.version, step.name, err)
		}
		slog.Info("Applied migration", "version", step.version, "name", step.name)
		current = step.version
	}

	if current != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, current)
	}
	return nil
}

func (step schemaStep) apply(tx *sql.Tx) error {
	for _, stmt := range step.statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	_, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", step.version))
	return err
}

// SchemaVersion returns the database's user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
