package notify

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/clinic-dashboard/internal/model"
)

func TestNewMockFeed(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	feed := NewMockFeed(now)

	items := feed.Items()
	require.Len(t, items, 4)
	assert.Equal(t, 3, feed.Unread())
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt), "items must be newest first")
	}
	for _, n := range items {
		_, err := uuid.Parse(n.ID)
		assert.NoError(t, err)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	feed := NewMockFeed(time.Now())
	items := feed.Items()
	items[0].Title = "tampered"
	items[0].Read = true

	assert.NotEqual(t, "tampered", feed.Items()[0].Title)
	assert.Equal(t, 3, feed.Unread())
}

func TestPush(t *testing.T) {
	now := time.Now()
	feed := NewFeed(model.Notification{ID: "old", CreatedAt: now.Add(-time.Hour)})

	var updates int
	feed.SetUpdateCallback(func([]model.Notification) { updates++ })

	pushed := feed.Push(model.Notification{Title: "Lab results ready"})
	assert.NotEmpty(t, pushed.ID)
	assert.False(t, pushed.CreatedAt.IsZero())

	items := feed.Items()
	require.Len(t, items, 2)
	assert.Equal(t, pushed.ID, items[0].ID)
	assert.Equal(t, 1, updates)
}

func TestMarkAllRead(t *testing.T) {
	feed := NewMockFeed(time.Now())
	var updates int
	feed.SetUpdateCallback(func([]model.Notification) { updates++ })

	feed.MarkAllRead()
	feed.MarkAllRead()

	assert.Zero(t, feed.Unread())
	assert.Equal(t, 1, updates)
}
