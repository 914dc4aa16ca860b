package models

import (
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"viewer role", RoleViewer, true},
		{"invalid role", "manager", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestRole_HasPermission(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		action   string
		expected bool
	}{
		// Admin can do everything
		{"admin can view services", RoleAdmin, ActionViewServices, true},
		{"admin can update timeline", RoleAdmin, ActionUpdateTimeline, true},
		{"admin can create invoice", RoleAdmin, ActionCreateInvoice, true},

		// Viewer is read-only
		{"viewer can view services", RoleViewer, ActionViewServices, true},
		{"viewer cannot update timeline", RoleViewer, ActionUpdateTimeline, false},
		{"viewer cannot create invoice", RoleViewer, ActionCreateInvoice, false},

		{"unknown role has no permissions", Role("guest"), ActionViewServices, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("Role %s HasPermission(%s) = %v, want %v",
					tt.role, tt.action, result, tt.expected)
			}
		})
	}
}
