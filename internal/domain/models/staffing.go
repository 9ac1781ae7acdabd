package models

// Role enumerates the six staffing roles scheduled at the dining commons.
type Role string

const (
	RoleFOHGeneral  Role = "foh_general"
	RoleFOHCashier  Role = "foh_cashier"
	RoleKitchenPrep Role = "kitchen_prep"
	RoleKitchenLine Role = "kitchen_line"
	RoleDishRoom    Role = "dish_room"
	RoleManagement  Role = "management"
)

// Roles lists every role in reporting order.
var Roles = []Role{
	RoleFOHGeneral,
	RoleFOHCashier,
	RoleKitchenPrep,
	RoleKitchenLine,
	RoleDishRoom,
	RoleManagement,
}

// StaffingEstimate maps each role to its required hours for one date.
type StaffingEstimate map[Role]float64

// TotalHours sums the hours across all roles, in the fixed Roles order so
// the float sum is identical across runs.
func (s StaffingEstimate) TotalHours() float64 {
	var total float64
	for _, role := range Roles {
		total += s[role]
	}
	return total
}
