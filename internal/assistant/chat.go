package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Veraticus/pockit/internal/common"
	"github.com/Veraticus/pockit/internal/llm"
	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/metrics"
	"github.com/Veraticus/pockit/internal/model"
)

// DefaultTimeout bounds a single classifier round trip.
const DefaultTimeout = 60 * time.Second

// State is the submission state of a Chat.
type State int

// Chat states.
const (
	StateIdle State = iota
	StateSending
)

func (s State) String() string {
	if s == StateSending {
		return "sending"
	}
	return "idle"
}

// Config configures a Chat.
type Config struct {
	Language  locale.Language
	Timeout   time.Duration
	MaxTokens int
}

// Chat runs the submit, classify, interpret and dispatch cycle for one
// conversation. Only one submission may be in flight at a time.
type Chat struct {
	client       llm.Client
	dispatcher   *Dispatcher
	conversation *Conversation
	logger       *slog.Logger
	language     locale.Language
	config       Config
	langMu       sync.RWMutex
	busy         atomic.Bool
}

// NewChat creates a chat whose transcript starts with the localized welcome.
// recorder may be nil, in which case payloads are extracted but not stored.
func NewChat(client llm.Client, recorder Recorder, cfg Config, logger *slog.Logger) *Chat {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Language.Valid() {
		cfg.Language = locale.Default
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = llm.DefaultMaxTokens
	}

	return &Chat{
		client:       client,
		dispatcher:   NewDispatcher(recorder, logger),
		conversation: NewConversation(locale.T(cfg.Language, locale.KeyWelcome)),
		logger:       logger,
		language:     cfg.Language,
		config:       cfg,
	}
}

// Submit sends text to the classifier and appends the outcome to the
// transcript. It returns the assistant message that was appended.
//
// ErrEmptyInput and ErrBusy are returned without touching the transcript.
// A classification failure still appends the localized error message and
// returns it together with a *TurnError.
func (c *Chat) Submit(ctx context.Context, text string) (model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return model.Message{}, ErrEmptyInput
	}
	if !c.busy.CompareAndSwap(false, true) {
		return model.Message{}, ErrBusy
	}
	defer c.busy.Store(false)

	lang := c.Language()
	c.conversation.AppendUser(text)

	reply, err := c.classify(ctx, text, lang)
	if err != nil {
		turnErr := newTurnError(err)
		metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		metrics.ClassifierErrors.WithLabelValues(string(turnErr.Kind)).Inc()
		c.logger.Error("Classification failed",
			"error_kind", turnErr.Kind,
			"retryable", common.IsRetryable(err),
			"language", lang,
			"error", err)
		msg := c.conversation.AppendAssistant(locale.T(lang, locale.KeyError), nil)
		return msg, turnErr
	}

	msg := c.conversation.AppendAssistant(reply.Message, reply.Payload)
	kind := c.dispatcher.Dispatch(ctx, reply.Payload)
	metrics.SubmissionsTotal.WithLabelValues("success").Inc()
	c.logger.Debug("Classified message", "payload", kind, "language", lang)

	return msg, nil
}

func (c *Chat) classify(ctx context.Context, text string, lang locale.Language) (model.Reply, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	start := time.Now()
	raw, err := c.client.Complete(callCtx, llm.Request{
		System:    BuildSystemPrompt(lang),
		Prompt:    text,
		MaxTokens: c.config.MaxTokens,
	})
	metrics.ClassifierLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if ctxErr := callCtx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return model.Reply{}, err
	}

	return Interpret(raw, lang)
}

// SetLanguage switches the reply language and relocalizes the welcome message.
func (c *Chat) SetLanguage(lang locale.Language) {
	if !lang.Valid() {
		lang = locale.Default
	}
	c.langMu.Lock()
	c.language = lang
	c.langMu.Unlock()

	c.conversation.ResetWelcome(locale.T(lang, locale.KeyWelcome))
}

// Language returns the current reply language.
func (c *Chat) Language() locale.Language {
	c.langMu.RLock()
	defer c.langMu.RUnlock()
	return c.language
}

// State reports whether a submission is in flight.
func (c *Chat) State() State {
	if c.busy.Load() {
		return StateSending
	}
	return StateIdle
}

// Messages returns a snapshot of the transcript.
func (c *Chat) Messages() []model.Message {
	return c.conversation.Messages()
}
