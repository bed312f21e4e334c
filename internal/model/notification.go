package model

import (
	"fmt"
	"time"
)

// NotificationKind drives the icon shown next to a notification.
type NotificationKind string

const (
	NotificationAppointment NotificationKind = "appointment"
	NotificationPayment     NotificationKind = "payment"
	NotificationSystem      NotificationKind = "system"
)

// Notification is a single entry of the notification tray.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// Age returns a compact relative age like "5m" or "3h", measured from now.
func (n Notification) Age(now time.Time) string {
	d := now.Sub(n.CreatedAt)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return formatUnit(int(d/time.Minute), "m")
	case d < 24*time.Hour:
		return formatUnit(int(d/time.Hour), "h")
	default:
		return formatUnit(int(d/(24*time.Hour)), "d")
	}
}

func formatUnit(n int, unit string) string {
	return fmt.Sprintf("%d%s", n, unit)
}
