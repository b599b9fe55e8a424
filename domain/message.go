// This file defines Message events and visibility rules.
// Messages are immutable; their identity is their position in the log.
package domain

import "time"

// Message is an immutable entry of the append-only message log.
// There is no ID field: moderation reports reference a message by its
// position in the log, so the log must never be reordered or compacted.
type Message struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	Text string    `json:"text"`
	At   time.Time `json:"timestamp"`
}

// VisibleTo reports whether the viewer may read this message.
// Admins see everything, participants see their own threads.
func (m Message) VisibleTo(viewer Session) bool {
	return viewer.Role == RoleAdmin || m.From == viewer.Username || m.To == viewer.Username
}
