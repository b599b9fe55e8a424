package search

import (
	"context"
	"log/slog"
	"strconv"

	"portal-messaging/domain"

	"github.com/blugelabs/bluge"
)

// Index wraps a Bluge writer over the message log. Documents are keyed
// by log position, which is the message identity, so re-indexing the
// same position overwrites rather than duplicates.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// Hit is one search result, resolved back to a log position.
type Hit struct {
	Position int
	From     string
	To       string
	Text     string
	Lang     string
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

// IndexMessage adds one delivered message to the index.
func (i *Index) IndexMessage(position int, m domain.Message, lang string) error {
	doc := bluge.NewDocument(strconv.Itoa(position)).
		AddField(bluge.NewTextField("text", m.Text).StoreValue()).
		AddField(bluge.NewKeywordField("from", m.From).StoreValue()).
		AddField(bluge.NewKeywordField("to", m.To).StoreValue()).
		AddField(bluge.NewKeywordField("lang", lang).StoreValue()).
		AddField(bluge.NewDateTimeField("at", m.At))

	return i.writer.Update(doc.ID(), doc)
}

// Search runs a parsed query and returns matching log positions.
func (i *Index) Search(ctx context.Context, query *Query) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Error("Failed to close index reader", "err", err)
		}
	}()

	boolean := bluge.NewBooleanQuery()
	if query.Terms != "" {
		boolean.AddMust(bluge.NewMatchQuery(query.Terms).SetField("text"))
	} else {
		boolean.AddMust(bluge.NewMatchAllQuery())
	}
	if query.From != "" {
		boolean.AddMust(bluge.NewTermQuery(query.From).SetField("from"))
	}
	if query.Lang != "" {
		boolean.AddMust(bluge.NewTermQuery(query.Lang).SetField("lang"))
	}

	request := bluge.NewTopNSearch(query.Limit, boolean)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit Hit
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.Position, _ = strconv.Atoi(string(value))
			case "from":
				hit.From = string(value)
			case "to":
				hit.To = string(value)
			case "text":
				hit.Text = string(value)
			case "lang":
				hit.Lang = string(value)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
