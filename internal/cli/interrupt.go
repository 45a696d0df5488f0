package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// InterruptHandler turns SIGINT and SIGTERM into context cancellation.
// The first interrupt prints a notice; later ones only cancel.
type InterruptHandler struct {
	out         io.Writer
	cancel      context.CancelFunc
	notice      sync.Once
	interrupted atomic.Bool
}

// NewInterruptHandler writes its notice to out, or stderr when out is nil.
func NewInterruptHandler(out io.Writer) *InterruptHandler {
	if out == nil {
		out = os.Stderr
	}
	return &InterruptHandler{out: out}
}

// HandleInterrupts derives a context from parent that is canceled on the
// first interrupt. The signal subscription ends when that context is done.
func (h *InterruptHandler) HandleInterrupts(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	h.cancel = cancel

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go h.watch(ctx, signals)

	return ctx
}

func (h *InterruptHandler) watch(ctx context.Context, signals chan os.Signal) {
	defer signal.Stop(signals)
	select {
	case <-signals:
		h.interrupt()
	case <-ctx.Done():
	}
}

func (h *InterruptHandler) interrupt() {
	h.notice.Do(func() {
		h.interrupted.Store(true)
		_, _ = fmt.Fprint(h.out, "\n"+FormatWarning("Interrupted, shutting down...")+"\n")
	})
	if h.cancel != nil {
		h.cancel()
	}
}

// WasInterrupted reports whether a signal arrived.
func (h *InterruptHandler) WasInterrupted() bool {
	return h.interrupted.Load()
}
