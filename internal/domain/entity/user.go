// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is an account created on first Google login.
type User struct {
	ID            string    // Internal id; a Mongo ObjectID hex string or a UUID depending on the store.
	GoogleID      string    // The stable Google subject id. Unique and never changed after creation.
	Username      string    // Display name as last reported by Google.
	Email         string    // Email as last reported by Google.
	Role          Role      // Authorization role.
	PreferredName string    // Optional name chosen by the user.
	PhoneNumber   string    // Optional phone number in +1-XXX-XXX-XXXX form.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// UserFilter narrows a user listing. Zero values match everything.
type UserFilter struct {
	Role Role
	// Name is a case-insensitive substring match on Username.
	Name string
}

// UserChanges carries the fields an authorized update may touch. Nil means unchanged.
type UserChanges struct {
	Role          *Role
	PreferredName *string
	PhoneNumber   *string
}

// IsEmpty reports whether no field is set.
func (c UserChanges) IsEmpty() bool {
	return c.Role == nil && c.PreferredName == nil && c.PhoneNumber == nil
}

// Apply copies the set fields onto u.
func (c UserChanges) Apply(u *User) {
	if c.Role != nil {
		u.Role = *c.Role
	}
	if c.PreferredName != nil {
		u.PreferredName = *c.PreferredName
	}
	if c.PhoneNumber != nil {
		u.PhoneNumber = *c.PhoneNumber
	}
}

// Matches reports whether u passes the filter, with the same semantics stores apply.
func (f UserFilter) Matches(u *User) bool {
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(f.Name)) {
		return false
	}

	return true
}
