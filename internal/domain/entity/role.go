// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin passes every route policy.
	RoleAdmin Role = "admin"
	// RoleStoreOwner manages a store.
	RoleStoreOwner Role = "storeowner"
	// RoleInventoryManager manages candy stock.
	RoleInventoryManager Role = "inventoryManager"
	// RoleDriver delivers orders.
	RoleDriver Role = "driver"
	// RoleTemporary is the least-privileged role given to new accounts.
	RoleTemporary Role = "temporary"
)

// AllRoles lists every valid role.
var AllRoles = Roles{RoleAdmin, RoleStoreOwner, RoleInventoryManager, RoleDriver, RoleTemporary}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStoreOwner, RoleInventoryManager, RoleDriver, RoleTemporary:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether r is the admin role.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole converts s to a Role, reporting false for unknown values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Allows is the route policy predicate: admin always passes, any other role
// must be listed.
func (rs Roles) Allows(role Role) bool {
	return role.IsAdmin() || rs.Contains(role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
