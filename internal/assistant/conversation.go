package assistant

import (
	"sync"

	"github.com/Veraticus/pockit/internal/model"
)

// Conversation is the ordered, in-memory transcript of one chat.
// Index 0 is always the welcome message.
type Conversation struct {
	messages []model.Message
	mu       sync.RWMutex
}

// NewConversation starts a transcript with the given welcome text.
func NewConversation(welcome string) *Conversation {
	return &Conversation{
		messages: []model.Message{model.NewMessage(welcome, false, nil)},
	}
}

// AppendUser appends a user message and returns it.
func (c *Conversation) AppendUser(text string) model.Message {
	return c.append(model.NewMessage(text, true, nil))
}

// AppendAssistant appends an assistant message and returns it.
func (c *Conversation) AppendAssistant(text string, data model.Payload) model.Message {
	return c.append(model.NewMessage(text, false, data))
}

func (c *Conversation) append(msg model.Message) model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return msg
}

// ResetWelcome replaces the welcome message and keeps the rest of the history.
func (c *Conversation) ResetWelcome(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	welcome := model.NewMessage(text, false, nil)
	if len(c.messages) == 0 {
		c.messages = append(c.messages, welcome)
		return
	}
	c.messages[0] = welcome
}

// Messages returns a snapshot of the transcript.
func (c *Conversation) Messages() []model.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}
