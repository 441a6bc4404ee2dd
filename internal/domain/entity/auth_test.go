package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionClaims_Remaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      time.Duration
	}{
		{name: "full hour", expiresAt: now.Add(time.Hour), want: time.Hour},
		{name: "floors fractions", expiresAt: now.Add(90*time.Second + 700*time.Millisecond), want: 90 * time.Second},
		{name: "under a second", expiresAt: now.Add(400 * time.Millisecond), want: 0},
		{name: "exactly now", expiresAt: now, want: 0},
		{name: "expired", expiresAt: now.Add(-time.Minute), want: 0},
		{name: "missing exp", expiresAt: time.Time{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &SessionClaims{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, claims.Remaining(now))
		})
	}
}

func TestSessionClaims_RemainingUsesWholeSecondsOfNow(t *testing.T) {
	exp := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	now := exp.Add(-time.Hour).Add(400 * time.Millisecond)

	claims := &SessionClaims{ExpiresAt: exp}
	assert.Equal(t, time.Hour, claims.Remaining(now))
}

func TestUserChanges_Apply(t *testing.T) {
	user := &User{Role: RoleTemporary, PreferredName: "old", PhoneNumber: "+1-555-555-0000"}
	role := RoleDriver
	name := "Sam"

	changes := UserChanges{Role: &role, PreferredName: &name}
	assert.False(t, changes.IsEmpty())

	changes.Apply(user)
	assert.Equal(t, RoleDriver, user.Role)
	assert.Equal(t, "Sam", user.PreferredName)
	assert.Equal(t, "+1-555-555-0000", user.PhoneNumber)
	assert.True(t, UserChanges{}.IsEmpty())
}
