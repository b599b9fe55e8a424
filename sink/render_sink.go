// Package sink contains the event consumers fed by the portal core
// after every persisted mutation.
package sink

import (
	"context"

	"portal-messaging/contract"
	"portal-messaging/domain/event"
)

// RenderSink triggers the presentation layer's re-render hook on every
// event. The hook owns the actual drawing; the core only signals.
type RenderSink struct {
	hook contract.RenderHook
}

func NewRenderSink(hook contract.RenderHook) RenderSink {
	return RenderSink{hook: hook}
}

func (r RenderSink) Consume(_ context.Context, _ event.DomainEvent) error {
	if r.hook != nil {
		r.hook()
	}
	return nil
}
