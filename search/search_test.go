package search

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"portal-messaging/domain"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	req := require.New(t)

	t.Run("plain terms with defaults", func(t *testing.T) {
		q := ParseQuery("overdue homework")
		req.Equal("overdue homework", q.Terms)
		req.Empty(q.From)
		req.Equal(10, q.Limit)
	})

	t.Run("flags are stripped from the terms", func(t *testing.T) {
		q := ParseQuery("/find overdue --from student1 --limit 5 --lang en")
		req.Equal("overdue", q.Terms)
		req.Equal("student1", q.From)
		req.Equal("en", q.Lang)
		req.Equal(5, q.Limit)
	})

	t.Run("garbage limit keeps the default", func(t *testing.T) {
		q := ParseQuery("hello --limit many")
		req.Equal(10, q.Limit)
	})
}

func TestIndex_IndexAndSearch(t *testing.T) {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()

	index := NewIndex(writer, slog.Default())
	at := time.Now().UTC()
	messages := []domain.Message{
		{From: "student1", To: "teacher1", Text: "my homework is late", At: at},
		{From: "student2", To: "teacher1", Text: "homework question", At: at.Add(time.Minute)},
		{From: "teacher1", To: "student1", Text: "see me tomorrow", At: at.Add(2 * time.Minute)},
	}
	for i, m := range messages {
		req.NoError(index.IndexMessage(i, m, "en"))
	}

	ctx := context.Background()

	t.Run("terms match across senders", func(t *testing.T) {
		hits, err := index.Search(ctx, ParseQuery("homework"))
		req.NoError(err)
		req.Len(hits, 2)
	})

	t.Run("from flag narrows to one sender", func(t *testing.T) {
		hits, err := index.Search(ctx, ParseQuery("homework --from student1"))
		req.NoError(err)
		req.Len(hits, 1)
		req.Equal(0, hits[0].Position)
		req.Equal("my homework is late", hits[0].Text)
	})

	t.Run("re-indexing a position overwrites, not duplicates", func(t *testing.T) {
		req.NoError(index.IndexMessage(0, messages[0], "en"))
		hits, err := index.Search(ctx, ParseQuery("homework"))
		req.NoError(err)
		req.Len(hits, 2)
	})

	t.Run("no terms lists everything up to the limit", func(t *testing.T) {
		hits, err := index.Search(ctx, ParseQuery("--limit 2"))
		req.NoError(err)
		req.Len(hits, 2)
	})
}
