package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portal-messaging/auth"
	"portal-messaging/contract"
	"portal-messaging/domain"
	"portal-messaging/domain/event"
	"portal-messaging/errors"
	"portal-messaging/moderation"
	"portal-messaging/projection"
	"portal-messaging/repositories"
)

type IPortalService interface {
	Authenticate(username, password string) (domain.Session, error)
	EndSession()
	Session() (domain.Session, bool)
	Accounts() []domain.Account
	AllowedRecipients() []domain.Account
	Send(recipient, text string, now time.Time) (*domain.Message, error)
	VisibleMessages() []projection.Entry
	Report(position int, now time.Time) (domain.Report, error)
	AdminView() (AdminView, error)
	CreateAccount(username, password, role string) (domain.Account, error)
}

// AdminView exposes both full logs verbatim for admin inspection.
type AdminView struct {
	Messages []domain.Message
	Reports  []domain.Report
}

// PortalService owns the four portal collections and the single live
// session, constructed once per process lifetime. Every operation runs
// to completion as a reaction to one user action; there is no
// overlapping execution and therefore no locking.
//
// After each successful mutation the service flushes all four records
// to the store and fans out a domain event to the registered sinks,
// which is how the presentation layer learns to re-render.
type PortalService struct {
	repository    repositories.IPortalRepository
	verifier      auth.Verifier
	moderator     *moderation.Moderator
	cooldown      time.Duration
	stampDuration time.Duration
	log           *slog.Logger
	sinks         []contract.EventSink

	accounts []domain.Account
	messages []domain.Message
	reports  []domain.Report
	session  *domain.Session
	stamp    string
}

func NewPortalService(
	repository repositories.IPortalRepository,
	verifier auth.Verifier,
	moderator *moderation.Moderator,
	cooldown, stampDuration time.Duration,
	log *slog.Logger,
) *PortalService {
	return &PortalService{
		repository:    repository,
		verifier:      verifier,
		moderator:     moderator,
		cooldown:      cooldown,
		stampDuration: stampDuration,
		log:           log,
	}
}

// RegisterSinks adds event consumers. Sinks are fed after the flush;
// their failures are logged and never surfaced to the user action.
func (s *PortalService) RegisterSinks(sinks ...contract.EventSink) {
	s.sinks = append(s.sinks, sinks...)
}

// Load restores the four records from the store. A persisted session
// whose stamp does not verify is discarded: the portal restores to
// logged-out rather than trusting a tampered slot.
func (s *PortalService) Load() error {
	state, err := s.repository.LoadState()
	if err != nil {
		return fmt.Errorf("load portal state: %w", err)
	}

	s.accounts = state.Accounts
	s.messages = state.Messages
	s.reports = state.Reports
	s.session = nil
	s.stamp = ""

	if state.Session != nil {
		claims, err := auth.VerifySessionStamp(state.Session.Stamp)
		if err != nil || claims.Username != state.Session.Username || claims.Role != state.Session.Role {
			s.log.Warn("Discarding persisted session with invalid stamp",
				"username", state.Session.Username)
			return nil
		}
		restored := state.Session.Session
		s.session = &restored
		s.stamp = state.Session.Stamp
	}
	return nil
}

// Authenticate opens a session for an exact username/password match.
// The failure is deliberately generic so usernames cannot be
// enumerated through distinct error messages.
func (s *PortalService) Authenticate(username, password string) (domain.Session, error) {
	account, ok := domain.FindAccount(s.accounts, username)
	if !ok {
		return domain.Session{}, errors.ErrInvalidCredentials
	}

	match, err := s.verifier.Verify(password, account.Password)
	if err != nil || !match {
		return domain.Session{}, errors.ErrInvalidCredentials
	}

	session := domain.Session{Username: account.Username, Role: account.Role}
	stamp, err := auth.StampSession(session.Username, session.Role, s.stampDuration)
	if err != nil {
		return domain.Session{}, fmt.Errorf("stamp session: %w", err)
	}

	s.session = &session
	s.stamp = stamp
	s.flush()
	s.emit(event.NewSessionStarted(session, time.Now().UTC()))
	return session, nil
}

// EndSession clears the live session. Idempotent.
func (s *PortalService) EndSession() {
	if s.session == nil {
		return
	}
	username := s.session.Username
	s.session = nil
	s.stamp = ""
	s.flush()
	s.emit(event.NewSessionEnded(username, time.Now().UTC()))
}

func (s *PortalService) Session() (domain.Session, bool) {
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

func (s *PortalService) Accounts() []domain.Account {
	return s.accounts
}

func (s *PortalService) AllowedRecipients() []domain.Account {
	if s.session == nil {
		return nil
	}
	return domain.AllowedRecipients(*s.session, s.accounts)
}

// Send validates, censors, and appends one message. Validation order:
// cooldown, content, recipient resolution, routing. An unknown
// recipient is a silent drop: the stale UI selection is tolerated and
// nothing is recorded or surfaced.
func (s *PortalService) Send(recipient, text string, now time.Time) (*domain.Message, error) {
	if s.session == nil {
		return nil, errors.ErrUnauthorized
	}

	if !s.session.CanSend(now, s.cooldown) {
		return nil, errors.ErrRateLimited
	}

	if err := moderation.CheckPlainText(text); err != nil {
		return nil, err
	}

	target, ok := domain.FindAccount(s.accounts, recipient)
	if !ok {
		s.log.Debug("Dropping message to unknown recipient", "recipient", recipient)
		return nil, nil
	}

	if !domain.RouteAllowed(s.session.Role, target.Role) {
		return nil, errors.ErrRouteDenied
	}

	content, censoredWords := s.moderator.Censor(strings.TrimSpace(text))
	message := domain.Message{
		From: s.session.Username,
		To:   target.Username,
		Text: content,
		At:   now,
	}

	s.messages = append(s.messages, message)
	s.session.LastSentAt = now
	s.flush()
	s.emit(event.NewMessageDelivered(len(s.messages)-1, message, censoredWords))
	return &message, nil
}

// VisibleMessages projects the log for the live session, keeping log
// positions so reports can reference them.
func (s *PortalService) VisibleMessages() []projection.Entry {
	if s.session == nil {
		return nil
	}
	return projection.BuildThread(*s.session, s.messages).Entries
}

// Report files a moderation report for the message at the given log
// position. Any viewer who can see the message may report it, any
// number of times; there is no deduplication.
func (s *PortalService) Report(position int, now time.Time) (domain.Report, error) {
	if s.session == nil {
		return domain.Report{}, errors.ErrUnauthorized
	}
	if position < 0 || position >= len(s.messages) {
		return domain.Report{}, errors.ErrUnknownMessage
	}
	if !s.messages[position].VisibleTo(*s.session) {
		return domain.Report{}, errors.ErrUnknownMessage
	}

	report := domain.Report{Index: position, ReportedBy: s.session.Username, At: now}
	s.reports = append(s.reports, report)
	s.flush()
	s.emit(event.NewReportFiled(report))
	return report, nil
}

// AdminView returns both full logs verbatim. Admin only.
func (s *PortalService) AdminView() (AdminView, error) {
	if s.session == nil || !s.session.IsAdmin() {
		return AdminView{}, errors.ErrUnauthorized
	}
	return AdminView{Messages: s.messages, Reports: s.reports}, nil
}

// CreateAccount provisions a new account. Admin only; the username
// must be unique (case-sensitive exact match). The new account is not
// logged in and the live session is untouched.
func (s *PortalService) CreateAccount(username, password, role string) (domain.Account, error) {
	if s.session == nil || !s.session.IsAdmin() {
		return domain.Account{}, errors.ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if err := auth.ValidateProvision(auth.ProvisionRequest{
		Username: username,
		Password: password,
		Role:     role,
	}); err != nil {
		return domain.Account{}, err
	}

	if _, exists := domain.FindAccount(s.accounts, username); exists {
		return domain.Account{}, errors.ErrDuplicateUsername
	}

	sealed, err := s.verifier.Seal(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("seal password: %w", err)
	}

	account := domain.Account{Username: username, Password: sealed, Role: domain.Role(role)}
	s.accounts = append(s.accounts, account)
	s.flush()
	s.emit(event.NewAccountProvisioned(account, time.Now().UTC()))
	return account, nil
}

// flush writes all four records together. Writes are fire-and-forget:
// a failure leaves memory and disk divergent until the next successful
// flush, which is a known gap of the portal, not an error surfaced to
// the user action.
func (s *PortalService) flush() {
	state := repositories.State{
		Accounts: s.accounts,
		Messages: s.messages,
		Reports:  s.reports,
	}
	if s.session != nil {
		state.Session = &repositories.StoredSession{Session: *s.session, Stamp: s.stamp}
	}
	if err := s.repository.SaveState(state); err != nil {
		s.log.Error("Failed to flush portal state", "err", err)
	}
}

func (s *PortalService) emit(e event.DomainEvent) {
	ctx := context.Background()
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			s.log.Error("Sink failed to consume event",
				"sink", contract.GetSinkName(sink), "err", err)
		}
	}
}
