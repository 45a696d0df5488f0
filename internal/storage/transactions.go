package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/service"
)

// RecordTransaction stores a spending record extracted from the chat.
func (s *SQLiteStorage) RecordTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, phone_number, amount, spent_category, method_of_payment, receiver, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), txn.PhoneNumber, txn.Amount, txn.SpentCategory, txn.MethodOfPayment, txn.Receiver, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the most recent transactions first.
// A limit of 0 returns every row.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, limit int) ([]model.TransactionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, phone_number, amount, spent_category, method_of_payment, receiver, created_at
		FROM transactions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TransactionRecord
	for rows.Next() {
		var rec model.TransactionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.PhoneNumber,
			&rec.Amount,
			&rec.SpentCategory,
			&rec.MethodOfPayment,
			&rec.Receiver,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// SpendingByCategory totals recorded transactions per category, largest first.
func (s *SQLiteStorage) SpendingByCategory(ctx context.Context) ([]service.CategorySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT spent_category, COUNT(*), COALESCE(SUM(amount), 0)
		FROM transactions
		GROUP BY spent_category
		ORDER BY SUM(amount) DESC, spent_category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []service.CategorySummary
	for rows.Next() {
		var summary service.CategorySummary
		if err := rows.Scan(&summary.Category, &summary.Count, &summary.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan category summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// CountTransactions returns the number of recorded transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// sqlLimit maps 0 to SQLite's "no limit".
func sqlLimit(limit int) int {
	if limit == 0 {
		return -1
	}
	return limit
}
