// Package moderation gates and censors message text before it reaches
// the log. Validation happens at write time only; already-recorded
// messages are never re-checked.
package moderation

import (
	"strings"

	"portal-messaging/errors"
)

// CheckPlainText enforces the plain-text contract of the message log:
// text must be non-empty after trimming and must not contain the markup
// characters '<' or '>'.
func CheckPlainText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.ErrInvalidContent
	}
	if strings.ContainsAny(trimmed, "<>") {
		return errors.ErrInvalidContent
	}
	return nil
}
