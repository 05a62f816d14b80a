package constants

import "fmt"

const (
	RoleWorker = "worker"
	RolePM     = "pm"
	RoleAdmin  = "admin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
	ErrOnlyStaffCanAccess  = "❌ Only admins or project managers may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleWorker,
		RolePM,
		RoleAdmin,
	}

	StaffRoles = []string{
		RolePM,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
