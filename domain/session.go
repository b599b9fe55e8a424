package domain

import "time"

// SendCooldown is the minimum delay between two sends by the same session.
const SendCooldown = 20 * time.Second

// Session is the single authenticated identity of the running portal.
// A zero LastSentAt means the session never sent anything.
type Session struct {
	Username   string    `json:"username"`
	Role       Role      `json:"role"`
	LastSentAt time.Time `json:"lastSentAt"`
}

// CanSend reports whether the cooldown elapsed at the given instant.
// The boundary is inclusive: exactly cooldown elapsed is eligible.
func (s Session) CanSend(now time.Time, cooldown time.Duration) bool {
	if s.LastSentAt.IsZero() {
		return true
	}
	return now.Sub(s.LastSentAt) >= cooldown
}

// IsAdmin reports whether the session may use admin-only operations.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
