package models

// Role represents dashboard operator roles
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Actions checked by the auth middleware
const (
	ActionViewServices   = "view_services"
	ActionUpdateTimeline = "update_timeline"
	ActionCreateInvoice  = "create_invoice"
)

// Claims represents JWT claims of a dashboard operator
type Claims struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
	Exp     int64  `json:"exp"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleViewer:
		return true
	default:
		return false
	}
}

// HasPermission checks if the role may perform an action
func (r Role) HasPermission(action string) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleViewer:
		return action == ActionViewServices
	default:
		return false
	}
}
