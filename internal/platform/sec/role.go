// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an admin account.
type UserRole string

const (
	// Unrestricted access, including admin-user management
	RoleAdmin UserRole = "admin"

	// Can create and edit all site content but not manage users
	RoleEditor UserRole = "editor"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 20
	default:
		return 0
	}
}
