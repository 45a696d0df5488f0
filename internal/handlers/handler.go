// Package handlers implements the pockit HTTP API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/service"
)

// ChatFactory builds a fresh chat for a new session.
type ChatFactory func(lang locale.Language) *assistant.Chat

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	store    service.Storage
	sessions *Sessions
	newChat  ChatFactory
	logger   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(store service.Storage, sessions *Sessions, newChat ChatFactory, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, sessions: sessions, newChat: newChat, logger: logger}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to write response", "error", err)
	}
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(v)
}
