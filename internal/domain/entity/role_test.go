package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_Allows(t *testing.T) {
	policy := Roles{RoleStoreOwner, RoleDriver}

	for _, role := range AllRoles {
		t.Run(role.String(), func(t *testing.T) {
			want := role == RoleAdmin || role == RoleStoreOwner || role == RoleDriver
			assert.Equal(t, want, policy.Allows(role))
		})
	}
}

func TestRoles_AllowsEmptyPolicyOnlyAdmin(t *testing.T) {
	var policy Roles

	assert.True(t, policy.Allows(RoleAdmin))
	assert.False(t, policy.Allows(RoleTemporary))
	assert.False(t, policy.Allows(Role("")))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("inventoryManager")
	assert.True(t, ok)
	assert.Equal(t, RoleInventoryManager, role)

	_, ok = ParseRole("inventorymanager")
	assert.False(t, ok)
}

func TestRolesFromStrings_DropsUnknown(t *testing.T) {
	got := RolesFromStrings([]string{"driver", "root", "admin"})
	assert.Equal(t, Roles{RoleDriver, RoleAdmin}, got)
	assert.Equal(t, []string{"driver", "admin"}, got.ToStrings())
}
