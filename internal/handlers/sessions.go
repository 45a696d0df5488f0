package handlers

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/metrics"
)

// DefaultMaxSessions bounds the number of live chats held in memory.
const DefaultMaxSessions = 1000

// DefaultSessionTTL is how long a session may sit unused before it can be
// evicted.
const DefaultSessionTTL = 30 * time.Minute

// ErrTooManySessions is returned when the registry is full of active chats.
var ErrTooManySessions = errors.New("too many active sessions")

type session struct {
	chat     *assistant.Chat
	lastUsed time.Time
}

// Sessions is an in-memory registry of chats keyed by session ID.
// Conversations are not persisted and are lost on restart. Sessions idle
// for longer than the TTL are evicted when room is needed; a chat with a
// submission in flight is never evicted.
type Sessions struct {
	now      func() time.Time
	sessions map[string]*session
	limit    int
	idleTTL  time.Duration
	mu       sync.Mutex
}

// NewSessions creates a registry holding at most limit chats, each evictable
// after idleTTL without use. Non-positive values take the defaults.
func NewSessions(limit int, idleTTL time.Duration) *Sessions {
	if limit <= 0 {
		limit = DefaultMaxSessions
	}
	if idleTTL <= 0 {
		idleTTL = DefaultSessionTTL
	}
	return &Sessions{
		now:      time.Now,
		sessions: make(map[string]*session),
		limit:    limit,
		idleTTL:  idleTTL,
	}
}

// Add stores chat under a new ID, evicting idle sessions first when the
// registry is full.
func (s *Sessions) Add(chat *assistant.Chat) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if len(s.sessions) >= s.limit {
		s.evictIdle(now)
	}
	if len(s.sessions) >= s.limit {
		return "", ErrTooManySessions
	}

	id := uuid.NewString()
	s.sessions[id] = &session{chat: chat, lastUsed: now}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return id, nil
}

// evictIdle must be called with mu held.
func (s *Sessions) evictIdle(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) < s.idleTTL || sess.chat.State() == assistant.StateSending {
			continue
		}
		delete(s.sessions, id)
		metrics.SessionsEvicted.Inc()
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
}

// Get returns the chat for id and marks the session as used.
func (s *Sessions) Get(id string) (*assistant.Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastUsed = s.now()
	return sess.chat, true
}

// Delete removes a session. It reports whether the session existed.
func (s *Sessions) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return true
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
