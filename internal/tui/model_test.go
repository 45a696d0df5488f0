package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/llm"
	"github.com/Veraticus/pockit/internal/locale"
)

const transactionReply = `{"json":{"phoneNumber":"+1234567890","amount":500,"spentCategory":"groceries",` +
	`"methodeOfPayment":"card","receiver":"BigBazaar"},"message":"Got it!"}`

func newTestModel(t *testing.T, client llm.Client) Model {
	t.Helper()
	chat := assistant.NewChat(client, nil, assistant.Config{}, nil)
	m := NewModel(context.Background(), chat, WithSize(100, 30))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func press(t *testing.T, m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model), cmd
}

// runCmd executes cmd and returns every message it produces, expanding batches.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findReply(t *testing.T, msgs []tea.Msg) replyMsg {
	t.Helper()
	for _, msg := range msgs {
		if reply, ok := msg.(replyMsg); ok {
			return reply
		}
	}
	t.Fatal("no reply message produced")
	return replyMsg{}
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t, llm.NewMockClient())

	view := m.View()
	assert.Contains(t, view, locale.T(locale.English, locale.KeyTitle))
	assert.Contains(t, view, "English")
	assert.Equal(t, locale.T(locale.English, locale.KeyPlaceholder), m.input.Placeholder)
	assert.Equal(t, MaxInputLength, m.input.CharLimit)
	assert.False(t, m.Sending())
}

func TestModel_SendFlow(t *testing.T) {
	m := newTestModel(t, llm.NewMockClient(transactionReply))
	m = typeText(t, m, "I spent 500 on groceries")
	assert.Equal(t, "I spent 500 on groceries", m.input.Value())

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Sending())
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "Pockit…")

	reply := findReply(t, runCmd(cmd))
	require.NoError(t, reply.err)
	assert.Equal(t, "Got it!", reply.message.Text)

	updated, _ := m.Update(reply)
	m = updated.(Model)
	assert.False(t, m.Sending())

	view := m.viewport.View()
	assert.Contains(t, view, "I spent 500 on groceries")
	assert.Contains(t, view, "Got it!")
	assert.Contains(t, view, "₹500")
	assert.Contains(t, view, "groceries")
	assert.Contains(t, view, "BigBazaar")
}

func TestModel_SendIgnoredWhenBlankOrSending(t *testing.T) {
	client := &llm.MockClient{}
	release := make(chan struct{})
	defer close(release)
	client.Enqueue(llm.MockResponse{Block: release, Text: transactionReply})
	m := newTestModel(t, client)

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.Sending())

	m = typeText(t, m, "   ")
	m, cmd = press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)

	m = typeText(t, m, "hello")
	m, cmd = press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.True(t, m.Sending())

	m = typeText(t, m, "again")
	_, cmd = press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
}

func TestModel_EscCancelsRequest(t *testing.T) {
	client := &llm.MockClient{}
	client.Enqueue(llm.MockResponse{Block: make(chan struct{}), Text: transactionReply})
	m := newTestModel(t, client)

	m = typeText(t, m, "hello")
	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	done := make(chan []tea.Msg, 1)
	go func() { done <- runCmd(cmd) }()

	require.Eventually(t, func() bool {
		return len(client.Calls()) == 1
	}, time.Second, time.Millisecond)

	m, _ = press(t, m, tea.KeyEsc)

	var msgs []tea.Msg
	select {
	case msgs = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submission was not canceled")
	}

	reply := findReply(t, msgs)
	require.ErrorIs(t, reply.err, assistant.ErrCanceled)
	assert.Equal(t, locale.T(locale.English, locale.KeyError), reply.message.Text)

	updated, _ := m.Update(reply)
	m = updated.(Model)
	assert.False(t, m.Sending())
	assert.Contains(t, m.View(), "request canceled")
}

func TestModel_TabCyclesLanguage(t *testing.T) {
	m := newTestModel(t, llm.NewMockClient())

	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, locale.Gujarati, m.chat.Language())
	assert.Equal(t, locale.T(locale.Gujarati, locale.KeyPlaceholder), m.input.Placeholder)
	assert.Contains(t, m.viewport.View(), firstWords(locale.T(locale.Gujarati, locale.KeyWelcome)))

	for range 3 {
		m, _ = press(t, m, tea.KeyTab)
	}
	assert.Equal(t, locale.English, m.chat.Language())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t, llm.NewMockClient())

	m, cmd := press(t, m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

// firstWords keeps wrapped output matchable.
func firstWords(s string) string {
	fields := strings.Fields(s)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " ")
}

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantWidth  int
		wantHeight int
		wantLimit  int
	}{
		{name: "defaults", wantWidth: 80, wantHeight: 24, wantLimit: MaxInputLength},
		{name: "size", opts: []Option{WithSize(120, 40)}, wantWidth: 120, wantHeight: 40, wantLimit: MaxInputLength},
		{name: "zero size ignored", opts: []Option{WithSize(0, 40)}, wantWidth: 80, wantHeight: 24, wantLimit: MaxInputLength},
		{name: "lower limit", opts: []Option{WithInputLimit(140)}, wantWidth: 80, wantHeight: 24, wantLimit: 140},
		{name: "limit above max ignored", opts: []Option{WithInputLimit(MaxInputLength + 1)}, wantWidth: 80, wantHeight: 24, wantLimit: MaxInputLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSettings(tt.opts)
			assert.Equal(t, tt.wantWidth, s.width)
			assert.Equal(t, tt.wantHeight, s.height)
			assert.Equal(t, tt.wantLimit, s.inputLimit)
		})
	}
}
