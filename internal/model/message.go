package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a chat transcript.
type Message struct {
	CreatedAt time.Time
	Data      Payload
	ID        string
	Text      string
	IsUser    bool
}

// NewMessage creates a message with a fresh ID and timestamp.
func NewMessage(text string, isUser bool, data Payload) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    isUser,
		Data:      data,
		CreatedAt: time.Now(),
	}
}

// messageJSON is the wire form of Message. Data keeps the field names the
// mobile client already renders and adds a kind tag.
type messageJSON struct {
	CreatedAt time.Time       `json:"createdAt"`
	Data      json.RawMessage `json:"data,omitempty"`
	ID        string          `json:"id"`
	Kind      PayloadKind     `json:"kind"`
	Text      string          `json:"text"`
	IsUser    bool            `json:"isUser"`
}

// MarshalJSON implements json.Marshaler.
func (m Message) MarshalJSON() ([]byte, error) {
	out := messageJSON{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Kind:      KindOf(m.Data),
		Text:      m.Text,
		IsUser:    m.IsUser,
	}
	if m.Data != nil {
		data, err := json.Marshal(m.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
		out.Data = data
	}
	return json.Marshal(out)
}
