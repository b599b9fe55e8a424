// Package projection builds per-viewer views of the message log.
// It keeps original log positions so reports can reference them.
// Does not mutate state or interact with the UI directly.
package projection

import (
	"context"

	"portal-messaging/domain"
	"portal-messaging/domain/event"
)

// Entry pairs a visible message with its position in the full log.
// The position, not the content, is the message's identity.
type Entry struct {
	Position int
	Message  domain.Message
}

// Thread is the ordered sequence of messages a viewer may read.
type Thread struct {
	Viewer  domain.Session
	Entries []Entry
}

func NewThread(viewer domain.Session) *Thread {
	return &Thread{Viewer: viewer}
}

// BuildThread projects the full log for one viewer in log order.
func BuildThread(viewer domain.Session, log []domain.Message) *Thread {
	t := NewThread(viewer)
	for i, m := range log {
		if m.VisibleTo(viewer) {
			t.Entries = append(t.Entries, Entry{Position: i, Message: m})
		}
	}
	return t
}

// Consume extends the thread from delivery events, keeping the log
// position carried by the event.
func (t *Thread) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageDelivered:
		if evt.Message.VisibleTo(t.Viewer) {
			t.Entries = append(t.Entries, Entry{Position: evt.Position, Message: evt.Message})
		}
	}
	return nil
}
