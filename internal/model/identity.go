package model

import (
	"fmt"
	"strings"
)

// Identity is the authenticated staff member. It never carries a secret.
type Identity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Department     string `json:"department,omitempty"`
}

// Validate checks the invariants a stored or freshly built identity must hold.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("identity id is empty")
	}
	if strings.TrimSpace(i.Email) == "" {
		return fmt.Errorf("identity %s has no email", i.ID)
	}
	if !i.Role.IsValid() {
		return fmt.Errorf("identity %s has unknown role %q", i.ID, i.Role)
	}
	return nil
}

// Initials returns up to two uppercase initials of the display name, used by
// the profile trigger in the header.
func (i Identity) Initials() string {
	fields := strings.Fields(i.Name)
	var initials []rune
	for _, f := range fields {
		initials = append(initials, []rune(f)[0])
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 && i.Email != "" {
		return strings.ToUpper(string([]rune(i.Email)[0]))
	}
	return strings.ToUpper(string(initials))
}

// ProfileUpdate carries the editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string
	Phone          *string
	Specialization *string
	Department     *string
}

// Apply returns a copy of i with the non-nil fields of u applied.
func (u ProfileUpdate) Apply(i Identity) Identity {
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		i.Name = strings.TrimSpace(*u.Name)
	}
	if u.Phone != nil {
		i.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Specialization != nil {
		i.Specialization = strings.TrimSpace(*u.Specialization)
	}
	if u.Department != nil {
		i.Department = strings.TrimSpace(*u.Department)
	}
	return i
}
