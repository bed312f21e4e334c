package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/clinic-dashboard/internal/model"
)

// Feed holds the notifications shown in the tray, newest first.
type Feed struct {
	mu       sync.RWMutex
	items    []model.Notification
	onUpdate func([]model.Notification) // callback for UI updates
}

// NewFeed creates a feed from items, ordered newest first
func NewFeed(items ...model.Notification) *Feed {
	f := &Feed{}
	for _, n := range items {
		f.insert(n)
	}
	return f
}

// SetUpdateCallback sets the callback invoked after the feed changes
func (f *Feed) SetUpdateCallback(callback func([]model.Notification)) {
	f.mu.Lock()
	f.onUpdate = callback
	f.mu.Unlock()
}

// Items returns a copy of the notifications
func (f *Feed) Items() []model.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]model.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Unread counts notifications not yet read
func (f *Feed) Unread() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	count := 0
	for _, n := range f.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// Push adds a notification, assigning an id and timestamp when missing
func (f *Feed) Push(n model.Notification) model.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	f.mu.Lock()
	f.insert(n)
	f.mu.Unlock()
	f.notifyUpdate()
	return n
}

// MarkAllRead flags every notification as read
func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	changed := false
	for i := range f.items {
		if !f.items[i].Read {
			f.items[i].Read = true
			changed = true
		}
	}
	f.mu.Unlock()
	if changed {
		f.notifyUpdate()
	}
}

func (f *Feed) insert(n model.Notification) {
	i := 0
	for i < len(f.items) && !f.items[i].CreatedAt.Before(n.CreatedAt) {
		i++
	}
	f.items = append(f.items, model.Notification{})
	copy(f.items[i+1:], f.items[i:])
	f.items[i] = n
}

func (f *Feed) notifyUpdate() {
	f.mu.RLock()
	callback := f.onUpdate
	f.mu.RUnlock()
	if callback != nil {
		callback(f.Items())
	}
}

// NewMockFeed seeds a feed with sample clinic notifications relative to now
func NewMockFeed(now time.Time) *Feed {
	return NewFeed(
		model.Notification{
			ID:        uuid.NewString(),
			Kind:      model.NotificationAppointment,
			Title:     "New session booked",
			Body:      "Maria Silva booked a speech therapy session for tomorrow at 09:30.",
			CreatedAt: now.Add(-5 * time.Minute),
		},
		model.Notification{
			ID:        uuid.NewString(),
			Kind:      model.NotificationPayment,
			Title:     "Payment received",
			Body:      "Invoice #1042 was paid by card.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		model.Notification{
			ID:        uuid.NewString(),
			Kind:      model.NotificationAppointment,
			Title:     "Session cancelled",
			Body:      "Joao Pereira cancelled Thursday's occupational therapy session.",
			CreatedAt: now.Add(-26 * time.Hour),
		},
		model.Notification{
			ID:        uuid.NewString(),
			Kind:      model.NotificationSystem,
			Title:     "Backup completed",
			Body:      "The nightly backup finished without errors.",
			Read:      true,
			CreatedAt: now.Add(-50 * time.Hour),
		},
	)
}
