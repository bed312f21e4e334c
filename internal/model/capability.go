package model

import "sort"

// Capability names a permission checked by the UI before rendering a surface
// or enabling a command.
type Capability string

const (
	CapViewDashboard  Capability = "view-dashboard"
	CapViewPatients   Capability = "view-patients"
	CapManagePatients Capability = "manage-patients"
	CapViewSessions   Capability = "view-sessions"
	CapManageSessions Capability = "manage-sessions"
	CapViewPayments   Capability = "view-payments"
	CapModifyPayments Capability = "modify-payments"
	CapViewReports    Capability = "view-reports"
	CapManageUsers    Capability = "manage-users"
	CapManageSettings Capability = "manage-settings"
)

// allCapabilities fixes the bit position of every capability in a CapabilitySet.
var allCapabilities = []Capability{
	CapViewDashboard,
	CapViewPatients,
	CapManagePatients,
	CapViewSessions,
	CapManageSessions,
	CapViewPayments,
	CapModifyPayments,
	CapViewReports,
	CapManageUsers,
	CapManageSettings,
}

// Capabilities returns every known capability.
func Capabilities() []Capability {
	out := make([]Capability, len(allCapabilities))
	copy(out, allCapabilities)
	return out
}

func (c Capability) bit() (uint32, bool) {
	for i, known := range allCapabilities {
		if known == c {
			return 1 << uint(i), true
		}
	}
	return 0, false
}

// CapabilitySet is an immutable set of granted capabilities. The zero value
// grants nothing.
type CapabilitySet struct {
	bits uint32
}

// NewCapabilitySet builds a set granting caps. Unknown names are ignored.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		if b, ok := c.bit(); ok {
			s.bits |= b
		}
	}
	return s
}

// Has reports whether c is granted.
func (s CapabilitySet) Has(c Capability) bool {
	b, ok := c.bit()
	return ok && s.bits&b != 0
}

// Empty reports whether nothing is granted.
func (s CapabilitySet) Empty() bool {
	return s.bits == 0
}

// Granted lists the granted capabilities sorted by name.
func (s CapabilitySet) Granted() []Capability {
	var out []Capability
	for _, c := range allCapabilities {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Map returns a fresh name -> granted view covering every known capability.
func (s CapabilitySet) Map() map[Capability]bool {
	out := make(map[Capability]bool, len(allCapabilities))
	for _, c := range allCapabilities {
		out[c] = s.Has(c)
	}
	return out
}
