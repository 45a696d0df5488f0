package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/model"
)

// SessionResponse is the transcript of one session.
type SessionResponse struct {
	ID       string          `json:"id"`
	Language locale.Language `json:"language"`
	State    string          `json:"state"`
	Messages []model.Message `json:"messages"`
}

// MessageResponse is the assistant reply to a submission.
type MessageResponse struct {
	Message   model.Message `json:"message"`
	ErrorKind string        `json:"errorKind,omitempty"`
}

type createSessionRequest struct {
	Language string `json:"language"`
}

type messageRequest struct {
	Text string `json:"text"`
}

type languageRequest struct {
	Language string `json:"language"`
}

func sessionResponse(id string, chat *assistant.Chat) SessionResponse {
	return SessionResponse{
		ID:       id,
		Language: chat.Language(),
		State:    chat.State().String(),
		Messages: chat.Messages(),
	}
}

// CreateSession starts a new conversation.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decode(r, &req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	chat := h.newChat(locale.Parse(req.Language))
	id, err := h.sessions.Add(chat)
	if err != nil {
		h.Error(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	h.JSON(w, http.StatusCreated, sessionResponse(id, chat))
}

// GetSession returns the transcript of a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	chat, ok := h.sessions.Get(id)
	if !ok {
		h.Error(w, http.StatusNotFound, "session not found")
		return
	}
	h.JSON(w, http.StatusOK, sessionResponse(id, chat))
}

// DeleteSession discards a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Delete(chi.URLParam(r, "id")) {
		h.Error(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostMessage submits a user message and returns the assistant reply.
// Classification failures still answer 200 with the apology message.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	chat, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		h.Error(w, http.StatusNotFound, "session not found")
		return
	}

	var req messageRequest
	if err := decode(r, &req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg, err := chat.Submit(r.Context(), req.Text)
	switch {
	case errors.Is(err, assistant.ErrEmptyInput):
		h.Error(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, assistant.ErrBusy):
		h.Error(w, http.StatusConflict, err.Error())
		return
	}

	resp := MessageResponse{Message: msg}
	if err != nil {
		resp.ErrorKind = string(assistant.KindOf(err))
	}
	h.JSON(w, http.StatusOK, resp)
}

// SetLanguage switches a session's language.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	chat, ok := h.sessions.Get(id)
	if !ok {
		h.Error(w, http.StatusNotFound, "session not found")
		return
	}

	var req languageRequest
	if err := decode(r, &req); err != nil || req.Language == "" {
		h.Error(w, http.StatusBadRequest, "language is required")
		return
	}

	chat.SetLanguage(locale.Parse(req.Language))
	h.JSON(w, http.StatusOK, sessionResponse(id, chat))
}
