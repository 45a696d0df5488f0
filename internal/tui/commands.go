package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// submitCmd runs one chat submission off the update loop.
func (m Model) submitCmd(ctx context.Context, text string) tea.Cmd {
	chat := m.chat
	return func() tea.Msg {
		msg, err := chat.Submit(ctx, text)
		return replyMsg{message: msg, err: err}
	}
}
