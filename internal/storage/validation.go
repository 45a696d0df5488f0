// Package storage keeps pockit's transactions and savings milestones in
// SQLite.
package storage

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Veraticus/pockit/internal/model"
)

// Errors returned when a call is rejected before reaching the database.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidLimit       = errors.New("limit cannot be negative")
	ErrInvalidAmount      = errors.New("amount must be a finite, non-negative number")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidMilestone   = errors.New("invalid milestone")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateLimit accepts zero, which means no limit.
func validateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return nil
}

func validateTransaction(txn model.Transaction) error {
	return checkAmounts(ErrInvalidTransaction, amount{"amount", txn.Amount})
}

func validateMilestone(m model.Milestone) error {
	return checkAmounts(ErrInvalidMilestone,
		amount{"savedAmount", m.SavedAmount},
		amount{"goalAmount", m.GoalAmount})
}

type amount struct {
	field string
	value float64
}

// checkAmounts rejects the first amount that is negative or not finite,
// wrapping both record and ErrInvalidAmount.
func checkAmounts(record error, amounts ...amount) error {
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) || a.value < 0 {
			return fmt.Errorf("%w: %w: %s is %v", record, ErrInvalidAmount, a.field, a.value)
		}
	}
	return nil
}
