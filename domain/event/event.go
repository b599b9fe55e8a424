package event

import (
	"time"

	"portal-messaging/domain"

	"github.com/google/uuid"
)

// DomainEvent is emitted by the portal core after a state mutation has
// been persisted. Sinks consume events to re-render, audit, or index.
type DomainEvent interface {
	EventID() uuid.UUID
}

type base struct {
	ID uuid.UUID
	At time.Time
}

func (b base) EventID() uuid.UUID { return b.ID }

func newBase(at time.Time) base {
	return base{ID: uuid.New(), At: at}
}

type SessionStarted struct {
	base
	Username string
	Role     domain.Role
}

type SessionEnded struct {
	base
	Username string
}

// MessageDelivered carries the appended message together with its log
// position, which is the message identity for moderation.
// CensoredWords lists the dictionary words the censor replaced.
type MessageDelivered struct {
	base
	Position      int
	Message       domain.Message
	CensoredWords []string
}

type ReportFiled struct {
	base
	Report domain.Report
}

type AccountProvisioned struct {
	base
	Username string
	Role     domain.Role
}

func NewSessionStarted(s domain.Session, at time.Time) SessionStarted {
	return SessionStarted{base: newBase(at), Username: s.Username, Role: s.Role}
}

func NewSessionEnded(username string, at time.Time) SessionEnded {
	return SessionEnded{base: newBase(at), Username: username}
}

func NewMessageDelivered(position int, m domain.Message, censoredWords []string) MessageDelivered {
	return MessageDelivered{base: newBase(m.At), Position: position, Message: m, CensoredWords: censoredWords}
}

func NewReportFiled(r domain.Report) ReportFiled {
	return ReportFiled{base: newBase(r.At), Report: r}
}

func NewAccountProvisioned(a domain.Account, at time.Time) AccountProvisioned {
	return AccountProvisioned{base: newBase(at), Username: a.Username, Role: a.Role}
}
