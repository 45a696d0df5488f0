package assistant

import (
	"context"
	"log/slog"

	"github.com/Veraticus/pockit/internal/metrics"
	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/service"
)

// Recorder persists the structured data extracted from a reply.
type Recorder = service.Recorder

// Dispatcher routes a payload to the matching Recorder method.
type Dispatcher struct {
	recorder Recorder
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil logger uses slog.Default.
func NewDispatcher(recorder Recorder, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{recorder: recorder, logger: logger}
}

// Dispatch invokes at most one recorder method and returns which branch ran.
// Recorder failures are logged and counted but never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, payload model.Payload) model.PayloadKind {
	kind := model.KindOf(payload)
	metrics.DispatchTotal.WithLabelValues(string(kind)).Inc()

	if d.recorder == nil {
		return kind
	}

	var err error
	switch p := payload.(type) {
	case model.Milestone:
		err = d.recorder.RecordMilestone(ctx, p)
	case model.Transaction:
		err = d.recorder.RecordTransaction(ctx, p)
	default:
		return model.PayloadNone
	}

	if err != nil {
		metrics.RecorderErrors.WithLabelValues(string(kind)).Inc()
		d.logger.Error("Failed to record payload", "payload", kind, "error", err)
	}
	return kind
}
