package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/pockit/internal/model"
)

// RecordMilestone stores a savings milestone extracted from the chat.
func (s *SQLiteStorage) RecordMilestone(ctx context.Context, milestone model.Milestone) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMilestone(milestone); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO milestones (id, saved_amount, goal_amount, duration, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), milestone.SavedAmount, milestone.GoalAmount, milestone.Duration, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record milestone: %w", err)
	}
	return nil
}

// ListMilestones returns the most recent milestones first.
// A limit of 0 returns every row.
func (s *SQLiteStorage) ListMilestones(ctx context.Context, limit int) ([]model.MilestoneRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, saved_amount, goal_amount, duration, created_at
		FROM milestones
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query milestones: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.MilestoneRecord
	for rows.Next() {
		var rec model.MilestoneRecord
		if err := rows.Scan(&rec.ID, &rec.SavedAmount, &rec.GoalAmount, &rec.Duration, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
