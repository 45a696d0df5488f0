package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/cli"
	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/model"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatus(),
		m.theme.Input.Width(max(m.width-2, 10)).Render(m.input.View()),
		m.theme.Help.Render(m.help.View(m.keymap)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	lang := m.chat.Language()
	title := m.theme.Title.Render(locale.T(lang, locale.KeyTitle))
	language := m.theme.Subtitle.Render(" " + lang.Name())
	return lipgloss.JoinHorizontal(lipgloss.Center, title, language)
}

func (m Model) renderStatus() string {
	switch {
	case m.sending:
		return m.spinner.View() + m.theme.StatusPending.Render(" Pockit…")
	case m.lastErr != nil:
		return m.theme.StatusError.Render(describeError(m.lastErr))
	default:
		return ""
	}
}

// describeError returns a short status line for a failed turn.
func describeError(err error) string {
	var turnErr *assistant.TurnError
	if errors.As(err, &turnErr) {
		return "request " + string(turnErr.Kind)
	}
	return err.Error()
}

func (m Model) renderTranscript(messages []model.Message) string {
	lang := m.chat.Language()
	bubbleWidth := max(m.width*3/4, 20)

	blocks := make([]string, 0, len(messages))
	for _, msg := range messages {
		blocks = append(blocks, m.renderMessage(msg, lang, bubbleWidth))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderMessage(msg model.Message, lang locale.Language, width int) string {
	if msg.IsUser {
		bubble := m.theme.UserBubble.MaxWidth(width).Width(min(lipgloss.Width(msg.Text)+2, width)).Render(msg.Text)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	}

	parts := []string{
		m.theme.BotLabel.Render("Pockit"),
		m.theme.BotBubble.Width(min(lipgloss.Width(msg.Text)+2, width)).Render(msg.Text),
	}
	if details := cli.Details(msg.Data, lang); len(details) > 0 {
		lines := make([]string, len(details))
		for i, d := range details {
			lines[i] = m.theme.DetailLabel.Render(d.Label+": ") + d.Value
		}
		parts = append(parts, m.theme.DetailBox.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
