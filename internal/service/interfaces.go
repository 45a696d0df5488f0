// Package service declares the storage contracts the assistant, the HTTP
// API and the command line share.
package service

import (
	"context"

	"github.com/Veraticus/pockit/internal/model"
)

// Recorder persists records extracted from chat replies.
type Recorder interface {
	RecordTransaction(ctx context.Context, txn model.Transaction) error
	RecordMilestone(ctx context.Context, milestone model.Milestone) error
}

// Ledger reads back what a Recorder stored, newest first.
type Ledger interface {
	ListTransactions(ctx context.Context, limit int) ([]model.TransactionRecord, error)
	ListMilestones(ctx context.Context, limit int) ([]model.MilestoneRecord, error)
	SpendingByCategory(ctx context.Context) ([]CategorySummary, error)
}

// Storage is a Recorder and Ledger backed by a migratable database.
type Storage interface {
	Recorder
	Ledger

	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// CategorySummary is the spending total for one category.
type CategorySummary struct {
	Category string
	Count    int
	Amount   float64
}
