package engine

import (
	"time"

	"github.com/google/uuid"
)

// Add prepends a message to the inbox so newest entries come first.
func (in *Inbox) Add(title, content string, typ MessageType, now time.Time) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Type:      typ,
		CreatedAt: now,
	}
	in.Messages = append([]Message{msg}, in.Messages...)
	return msg
}

// MarkRead flags a message as read. Unknown ids are a no-op.
func (in *Inbox) MarkRead(id string) {
	for i := range in.Messages {
		if in.Messages[i].ID == id {
			in.Messages[i].Read = true
			return
		}
	}
}

// Unread returns the unread messages, newest first.
func (in *Inbox) Unread() []Message {
	var out []Message
	for _, m := range in.Messages {
		if !m.Read {
			out = append(out, m)
		}
	}
	return out
}

// Delete removes a message. Unknown ids are a no-op.
func (in *Inbox) Delete(id string) {
	for i := range in.Messages {
		if in.Messages[i].ID == id {
			in.Messages = append(in.Messages[:i], in.Messages[i+1:]...)
			return
		}
	}
}
