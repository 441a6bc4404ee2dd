package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserFilter_Matches(t *testing.T) {
	user := &User{Username: "Candy Fan", Role: RoleDriver}

	tests := []struct {
		name   string
		filter UserFilter
		want   bool
	}{
		{name: "empty filter", filter: UserFilter{}, want: true},
		{name: "role match", filter: UserFilter{Role: RoleDriver}, want: true},
		{name: "role mismatch", filter: UserFilter{Role: RoleAdmin}, want: false},
		{name: "name substring any case", filter: UserFilter{Name: "dy f"}, want: true},
		{name: "name mismatch", filter: UserFilter{Name: "gum"}, want: false},
		{name: "both", filter: UserFilter{Role: RoleDriver, Name: "CANDY"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(user))
		})
	}
}
