package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pockit/internal/assistant"
)

// Run shows the chat screen until the user quits or ctx is canceled.
func Run(ctx context.Context, chat *assistant.Chat, opts ...Option) error {
	if chat == nil {
		return fmt.Errorf("chat is required")
	}

	m := NewModel(ctx, chat, opts...)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		// A canceled context is a normal shutdown.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
