package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileBody struct {
	PreferredName *string `json:"preferred_name" validate:"omitnil,min=1"`
	PhoneNumber   *string `json:"phone_number" validate:"omitnil,us_phone"`
	Role          *string `json:"role" validate:"omitnil,oneof=admin driver"`
}

func ptr(s string) *string { return &s }

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		body    profileBody
		wantErr string
	}{
		{name: "empty body", body: profileBody{}},
		{name: "valid fields", body: profileBody{PreferredName: ptr("Dee"), PhoneNumber: ptr("+1-555-123-4567"), Role: ptr("driver")}},
		{name: "empty preferred name", body: profileBody{PreferredName: ptr("")}, wantErr: "preferred_name: min=1"},
		{name: "bad phone", body: profileBody{PhoneNumber: ptr("555-1234")}, wantErr: "phone_number: us_phone"},
		{name: "phone without dashes", body: profileBody{PhoneNumber: ptr("+15551234567")}, wantErr: "phone_number: us_phone"},
		{name: "unknown role", body: profileBody{Role: ptr("wizard")}, wantErr: "role: oneof=admin driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.body)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, Describe(err))
		})
	}
}
