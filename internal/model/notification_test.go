package model

import (
	"testing"
	"time"
)

func TestNotification_Age(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{10 * time.Second, "now"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
	}

	for _, test := range tests {
		n := Notification{CreatedAt: now.Add(-test.ago)}
		if got := n.Age(now); got != test.expected {
			t.Errorf("Age() for %v ago = %s, expected %s", test.ago, got, test.expected)
		}
	}
}
