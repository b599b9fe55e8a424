package sink

import (
	"context"
	"log/slog"

	"portal-messaging/domain/event"

	"github.com/abadojack/whatlanggo"
)

// AuditSink writes a structured trail of portal activity. Message
// deliveries are annotated with the detected language, which helps
// admins triage reports written in unexpected languages.
type AuditSink struct {
	log *slog.Logger
}

func NewAuditSink(log *slog.Logger) AuditSink {
	return AuditSink{log: log}
}

func (a AuditSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.SessionStarted:
		a.log.Info("Session started", "username", evt.Username, "role", evt.Role)
	case event.SessionEnded:
		a.log.Info("Session ended", "username", evt.Username)
	case event.MessageDelivered:
		info := whatlanggo.Detect(evt.Message.Text)
		a.log.Info("Message delivered",
			"position", evt.Position,
			"from", evt.Message.From,
			"to", evt.Message.To,
			"lang", info.Lang.Iso6391(),
			"censored_words", len(evt.CensoredWords))
	case event.ReportFiled:
		a.log.Warn("Message reported",
			"position", evt.Report.Index,
			"reported_by", evt.Report.ReportedBy)
	case event.AccountProvisioned:
		a.log.Info("Account provisioned", "username", evt.Username, "role", evt.Role)
	}
	return nil
}
