// Package testutil provides shared test helpers for pockit packages.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/storage"
)

// TestDB is a migrated in-memory database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// TestDBOptions seeds a test database.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	Transactions   []model.Transaction
	Milestones     []model.Milestone
	SkipMigrations bool
}

// SetupTestDB creates a migrated in-memory database that is closed when the
// test finishes.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	chat := assistant.NewChat(client, db.Storage, assistant.Config{}, nil)
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	// Create in-memory SQLite storage
	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	ctx := context.Background()

	// Run migrations unless skipped
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	for _, txn := range opts.Transactions {
		if err := store.RecordTransaction(ctx, txn); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
	}
	for _, m := range opts.Milestones {
		if err := store.RecordMilestone(ctx, m); err != nil {
			t.Fatalf("failed to seed milestone: %v", err)
		}
	}

	// Run custom setup
	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustListTransactions returns every recorded transaction or fails the test.
func (db *TestDB) MustListTransactions() []model.TransactionRecord {
	db.t.Helper()
	records, err := db.Storage.ListTransactions(context.Background(), 0)
	if err != nil {
		db.t.Fatalf("failed to list transactions: %v", err)
	}
	return records
}

// MustListMilestones returns every recorded milestone or fails the test.
func (db *TestDB) MustListMilestones() []model.MilestoneRecord {
	db.t.Helper()
	records, err := db.Storage.ListMilestones(context.Background(), 0)
	if err != nil {
		db.t.Fatalf("failed to list milestones: %v", err)
	}
	return records
}
