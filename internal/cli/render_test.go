package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/service"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{amount: 0, want: "₹0"},
		{amount: 500, want: "₹500"},
		{amount: 120.5, want: "₹120.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupees(tt.amount))
		})
	}
}

func TestDetails(t *testing.T) {
	tests := []struct {
		data model.Payload
		name string
		want []string
	}{
		{name: "no payload"},
		{
			name: "full transaction",
			data: model.Transaction{Amount: 500, SpentCategory: "groceries", Receiver: "BigBazaar"},
			want: []string{"Amount: ₹500", "Category: groceries", "Paid to: BigBazaar"},
		},
		{
			name: "transaction with defaults hides placeholders",
			data: model.Transaction{SpentCategory: model.NullString, Receiver: model.NullString},
		},
		{
			name: "milestone",
			data: model.Milestone{SavedAmount: 2000, GoalAmount: 10000, Duration: "3 months"},
			want: []string{"Saved: ₹2000", "Goal: ₹10000", "Duration: 3 months"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, d := range Details(tt.data, locale.English) {
				got = append(got, d.Label+": "+d.Value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderReply(t *testing.T) {
	plain := model.NewMessage("Hello there", false, nil)
	assert.Equal(t, "Hello there", RenderReply(plain, locale.English))

	withData := model.NewMessage("Nice!", false, model.Milestone{SavedAmount: 2000, GoalAmount: 10000})
	out := RenderReply(withData, locale.English)
	assert.True(t, strings.HasPrefix(out, "Nice!\n"))
	assert.Contains(t, out, "₹2000")
	assert.Contains(t, out, "₹10000")
}

func TestWriteTables(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("transactions", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteTransactions(&buf, []model.TransactionRecord{{
			ID:        "t1",
			CreatedAt: created,
			Transaction: model.Transaction{
				PhoneNumber: "+1234567890", Amount: 500, SpentCategory: "groceries",
				MethodOfPayment: "card", Receiver: "BigBazaar",
			},
		}})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "BigBazaar")
		assert.Contains(t, buf.String(), "₹500")
		assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 2)
	})

	t.Run("milestones", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteMilestones(&buf, []model.MilestoneRecord{{
			ID:        "m1",
			CreatedAt: created,
			Milestone: model.Milestone{SavedAmount: 2500, GoalAmount: 10000, Duration: "3 months"},
		}})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "25%")
		assert.Contains(t, buf.String(), "3 months")
	})

	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteSummary(&buf, []service.CategorySummary{
			{Category: "groceries", Count: 2, Amount: 700},
			{Category: "fuel", Count: 1, Amount: 300},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "groceries")
		assert.Contains(t, buf.String(), "₹1000")
	})
}

func TestNotices(t *testing.T) {
	tests := []struct {
		format func(string) string
		name   string
		icon   string
	}{
		{name: "success", format: FormatSuccess, icon: "✓"},
		{name: "warning", format: FormatWarning, icon: "!"},
		{name: "error", format: FormatError, icon: "✗"},
		{name: "info", format: FormatInfo, icon: "›"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("saved")
			assert.Contains(t, out, tt.icon+" saved")
		})
	}
	assert.Contains(t, FormatTitle("Transactions"), WalletIcon+" Transactions")
}
