package session

import (
	"errors"
	"fmt"
	"unicode"
)

// MinPasswordLength is the shortest password the policy accepts.
const MinPasswordLength = 8

// ErrPasswordPolicy wraps every password-change validation failure.
var ErrPasswordPolicy = errors.New("password policy violation")

// ValidatePassword checks a proposed password change against the local policy.
func ValidatePassword(current, next, confirm string) error {
	if len([]rune(next)) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordPolicy, MinPasswordLength)
	}

	var hasLetter, hasDigit bool
	for _, r := range next {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: must contain a letter and a digit", ErrPasswordPolicy)
	}
	if next != confirm {
		return fmt.Errorf("%w: confirmation does not match", ErrPasswordPolicy)
	}
	if next == current {
		return fmt.Errorf("%w: must differ from the current password", ErrPasswordPolicy)
	}
	return nil
}
