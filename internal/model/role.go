package model

// Role is the closed set of staff roles an identity may hold.
type Role string

const (
	// RoleAdministrator manages staff, settings and every clinical and billing surface
	RoleAdministrator Role = "administrator"

	// RoleClinician works with patients and therapy sessions
	RoleClinician Role = "clinician"

	// RoleFrontDesk handles reception: patients, scheduling and payments
	RoleFrontDesk Role = "front-desk"
)

// Roles returns every known role in display order.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleClinician, RoleFrontDesk}
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleClinician, RoleFrontDesk:
		return true
	default:
		return false
	}
}
