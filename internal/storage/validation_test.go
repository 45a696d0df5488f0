package storage

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pockit/internal/model"
)

func TestValidateContext(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, validateContext(context.Background()))
	require.NoError(t, validateContext(canceled), "a canceled context is still a context")
	//nolint:staticcheck // nil context is what is being tested
	require.ErrorIs(t, validateContext(nil), ErrNilContext)
}

func TestValidateLimit(t *testing.T) {
	require.NoError(t, validateLimit(0))
	require.NoError(t, validateLimit(25))
	require.ErrorIs(t, validateLimit(-3), ErrInvalidLimit)
}

func TestValidateRecords(t *testing.T) {
	tests := []struct {
		err     error
		wantErr []error
		name    string
	}{
		{name: "transaction", err: validateTransaction(model.Transaction{Amount: 500})},
		{name: "free transaction", err: validateTransaction(model.Transaction{})},
		{
			name:    "negative transaction",
			err:     validateTransaction(model.Transaction{Amount: -1}),
			wantErr: []error{ErrInvalidTransaction, ErrInvalidAmount},
		},
		{
			name:    "NaN transaction",
			err:     validateTransaction(model.Transaction{Amount: math.NaN()}),
			wantErr: []error{ErrInvalidTransaction, ErrInvalidAmount},
		},
		{
			name:    "infinite transaction",
			err:     validateTransaction(model.Transaction{Amount: math.Inf(1)}),
			wantErr: []error{ErrInvalidAmount},
		},
		{name: "milestone", err: validateMilestone(model.Milestone{SavedAmount: 2000, GoalAmount: 10000})},
		{name: "milestone without goal", err: validateMilestone(model.Milestone{SavedAmount: 10})},
		{
			name:    "negative saved",
			err:     validateMilestone(model.Milestone{SavedAmount: -10}),
			wantErr: []error{ErrInvalidMilestone, ErrInvalidAmount},
		},
		{
			name:    "NaN goal",
			err:     validateMilestone(model.Milestone{GoalAmount: math.NaN()}),
			wantErr: []error{ErrInvalidMilestone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.wantErr) == 0 {
				assert.NoError(t, tt.err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, tt.err, want)
			}
		})
	}
}

func TestCheckAmounts_NamesField(t *testing.T) {
	err := checkAmounts(ErrInvalidMilestone, amount{"savedAmount", 1}, amount{"goalAmount", -2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goalAmount is -2")
}
