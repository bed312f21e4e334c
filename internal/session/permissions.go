package session

import "github.com/ytget/clinic-dashboard/internal/model"

// capabilityTable is the fixed role -> capability mapping.
var capabilityTable = map[model.Role]model.CapabilitySet{
	model.RoleAdministrator: model.NewCapabilitySet(model.Capabilities()...),
	model.RoleClinician: model.NewCapabilitySet(
		model.CapViewDashboard,
		model.CapViewPatients,
		model.CapManagePatients,
		model.CapViewSessions,
		model.CapManageSessions,
		model.CapViewReports,
	),
	model.RoleFrontDesk: model.NewCapabilitySet(
		model.CapViewDashboard,
		model.CapViewPatients,
		model.CapManagePatients,
		model.CapViewSessions,
		model.CapManageSessions,
		model.CapViewPayments,
		model.CapModifyPayments,
	),
}

// DerivePermissions maps a role to its capability set. Unknown roles get the
// empty set.
func DerivePermissions(role model.Role) model.CapabilitySet {
	return capabilityTable[role]
}
