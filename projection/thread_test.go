package projection

import (
	"context"
	"testing"
	"time"

	"portal-messaging/domain"
	"portal-messaging/domain/event"

	"github.com/stretchr/testify/require"
)

func TestBuildThread_KeepsLogPositions(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()
	log := []domain.Message{
		{From: "student1", To: "teacher1", Text: "hello", At: at},
		{From: "student2", To: "teacher1", Text: "question", At: at.Add(time.Minute)},
		{From: "teacher1", To: "student1", Text: "hi back", At: at.Add(2 * time.Minute)},
	}

	t.Run("participant sees only its thread, positions intact", func(t *testing.T) {
		thread := BuildThread(domain.Session{Username: "student1", Role: domain.RoleStudent}, log)
		req.Len(thread.Entries, 2)
		req.Equal(0, thread.Entries[0].Position)
		req.Equal(2, thread.Entries[1].Position)
	})

	t.Run("admin sees the whole log", func(t *testing.T) {
		thread := BuildThread(domain.Session{Username: "admin1", Role: domain.RoleAdmin}, log)
		req.Len(thread.Entries, 3)
	})

	t.Run("uninvolved student sees nothing", func(t *testing.T) {
		thread := BuildThread(domain.Session{Username: "student3", Role: domain.RoleStudent}, log)
		req.Empty(thread.Entries)
	})
}

func TestThread_Consume_MessageDelivered(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	thread := NewThread(domain.Session{Username: "teacher1", Role: domain.RoleTeacher})

	visible := event.NewMessageDelivered(4,
		domain.Message{From: "student1", To: "teacher1", Text: "hello", At: time.Now()}, nil)
	hidden := event.NewMessageDelivered(5,
		domain.Message{From: "student1", To: "teacher2", Text: "other", At: time.Now()}, nil)

	req.NoError(thread.Consume(ctx, visible))
	req.NoError(thread.Consume(ctx, hidden))

	req.Len(thread.Entries, 1)
	req.Equal(4, thread.Entries[0].Position)
}
