package sink

import (
	"context"

	"portal-messaging/domain/event"
	"portal-messaging/search"

	"github.com/abadojack/whatlanggo"
)

// SearchSink feeds delivered messages into the admin search index.
type SearchSink struct {
	index *search.Index
}

func NewSearchSink(index *search.Index) SearchSink {
	return SearchSink{index: index}
}

func (s SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageDelivered:
		info := whatlanggo.Detect(evt.Message.Text)
		return s.index.IndexMessage(evt.Position, evt.Message, info.Lang.Iso6391())
	default:
		return nil
	}
}
