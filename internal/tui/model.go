// Package tui implements the interactive chat screen.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/tui/themes"
)

// Rows used by everything except the transcript.
const chromeHeight = 7

// Model holds the chat screen state.
type Model struct {
	ctx           context.Context
	lastErr       error
	chat          *assistant.Chat
	cancel        context.CancelFunc
	theme         themes.Theme
	keymap        KeyMap
	help          help.Model
	spinner       spinner.Model
	input         textinput.Model
	viewport      viewport.Model
	transcriptLen int
	width         int
	height        int
	sending       bool
	quitting      bool
}

// NewModel creates a chat screen for chat. Submissions inherit ctx.
func NewModel(ctx context.Context, chat *assistant.Chat, opts ...Option) Model {
	cfg := newSettings(opts)

	input := textinput.New()
	input.CharLimit = cfg.inputLimit
	input.Placeholder = locale.T(chat.Language(), locale.KeyPlaceholder)
	input.Prompt = "› "
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = spin.Style.Foreground(cfg.theme.Primary)

	vp := viewport.New(cfg.width, max(cfg.height-chromeHeight, 1))
	// Only non-printing keys scroll so typing never moves the transcript.
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}

	m := Model{
		ctx:      ctx,
		chat:     chat,
		theme:    cfg.theme,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		spinner:  spin,
		input:    input,
		viewport: vp,
		width:    cfg.width,
		height:   cfg.height,
	}
	m.refreshTranscript(true)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.cancelRequest()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.CancelRequest):
			m.cancelRequest()
			return m, nil
		case key.Matches(msg, m.keymap.CycleLanguage):
			m.setLanguage(m.chat.Language().Next())
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil
		case key.Matches(msg, m.keymap.Send):
			return m.send()
		}

	case replyMsg:
		m.sending = false
		m.cancelRequest()
		m.lastErr = msg.err
		m.refreshTranscript(false)
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshTranscript(false)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// send starts a submission unless one is running or the input is blank.
func (m Model) send() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if m.sending || strings.TrimSpace(text) == "" {
		return m, nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.sending = true
	m.lastErr = nil
	m.input.Reset()

	return m, tea.Batch(m.spinner.Tick, m.submitCmd(ctx, text))
}

func (m *Model) cancelRequest() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) setLanguage(lang locale.Language) {
	m.chat.SetLanguage(lang)
	m.input.Placeholder = locale.T(lang, locale.KeyPlaceholder)
	m.refreshTranscript(true)
}

// refreshTranscript re-renders the viewport when the transcript changed.
func (m *Model) refreshTranscript(force bool) {
	messages := m.chat.Messages()
	if !force && len(messages) == m.transcriptLen {
		return
	}
	m.transcriptLen = len(messages)
	m.viewport.SetContent(m.renderTranscript(messages))
	m.viewport.GotoBottom()
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	chrome := chromeHeight
	if m.help.ShowAll {
		chrome += 2
	}
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
	m.input.Width = max(width-6, 10)
	m.help.Width = width
	m.refreshTranscript(true)
}

// Sending reports whether a submission is in flight.
func (m Model) Sending() bool {
	return m.sending
}
