//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"portal-messaging/domain/event"
)

// EventSink receives domain events after the portal core has persisted
// the mutation they describe. A sink must never block the user action;
// errors are logged by the dispatcher and not surfaced.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// RenderHook is the presentation layer's re-render trigger.
// The core fires it after every state-mutating operation.
type RenderHook func()

// GetSinkName uses reflection to retrieve the type name of the sink,
// avoiding a manual Name method on the EventSink interface.
func GetSinkName(s EventSink) string {
	if s == nil {
		return "NilSink"
	}
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
