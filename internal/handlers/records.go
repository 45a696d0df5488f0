package handlers

import (
	"net/http"
	"strconv"

	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// TransactionResponse is one recorded transaction.
type TransactionResponse struct {
	model.Transaction
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// MilestoneResponse is one recorded milestone.
type MilestoneResponse struct {
	model.Milestone
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// CategoryResponse is the spending total of one category.
type CategoryResponse struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Amount   float64 `json:"amount"`
}

// SummaryResponse totals spending across categories.
type SummaryResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      float64            `json:"total"`
}

// parseLimit reads ?limit=, defaulting and clamping it.
func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, false
	}
	return min(limit, maxListLimit), true
}

// ListTransactions returns recorded transactions, newest first.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		h.Error(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	records, err := h.store.ListTransactions(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list transactions", "error", err)
		h.Error(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	out := make([]TransactionResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, TransactionResponse{
			Transaction: rec.Transaction,
			ID:          rec.ID,
			CreatedAt:   rec.CreatedAt.UTC().Format(timeFormat),
		})
	}
	h.JSON(w, http.StatusOK, map[string]any{"transactions": out})
}

// ListMilestones returns recorded milestones, newest first.
func (h *Handler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		h.Error(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	records, err := h.store.ListMilestones(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list milestones", "error", err)
		h.Error(w, http.StatusInternalServerError, "failed to list milestones")
		return
	}

	out := make([]MilestoneResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, MilestoneResponse{
			Milestone: rec.Milestone,
			ID:        rec.ID,
			CreatedAt: rec.CreatedAt.UTC().Format(timeFormat),
		})
	}
	h.JSON(w, http.StatusOK, map[string]any{"milestones": out})
}

// Summary returns spending totals by category.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.SpendingByCategory(r.Context())
	if err != nil {
		h.logger.Error("Failed to summarize spending", "error", err)
		h.Error(w, http.StatusInternalServerError, "failed to summarize spending")
		return
	}
	h.JSON(w, http.StatusOK, summarize(summaries))
}

func summarize(summaries []service.CategorySummary) SummaryResponse {
	resp := SummaryResponse{Categories: make([]CategoryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Categories = append(resp.Categories, CategoryResponse{
			Category: s.Category,
			Count:    s.Count,
			Amount:   s.Amount,
		})
		resp.Total += s.Amount
	}
	return resp
}
