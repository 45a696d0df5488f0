package tui

import "github.com/Veraticus/pockit/internal/model"

// replyMsg carries the outcome of one submission back to the update loop.
type replyMsg struct {
	err     error
	message model.Message
}
