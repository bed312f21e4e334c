package session

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		valid   bool
	}{
		{"valid", "admin123", "newpass42", "newpass42", true},
		{"too short", "admin123", "ab1", "ab1", false},
		{"no digit", "admin123", "onlyletters", "onlyletters", false},
		{"no letter", "admin123", "12345678", "12345678", false},
		{"mismatch", "admin123", "newpass42", "newpass43", false},
		{"same as current", "admin123", "admin123", "admin123", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidatePassword(test.current, test.next, test.confirm)
			if test.valid && err != nil {
				t.Fatalf("expected valid password, got %v", err)
			}
			if !test.valid && !errors.Is(err, ErrPasswordPolicy) {
				t.Fatalf("expected ErrPasswordPolicy, got %v", err)
			}
		})
	}
}
