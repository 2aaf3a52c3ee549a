package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		want     string
	}{
		{"both names", Identity{FirstName: "Priya", LastName: "Sharma"}, "Priya Sharma"},
		{"first only", Identity{FirstName: "Priya"}, "Priya"},
		{"last only", Identity{LastName: "Sharma"}, "Sharma"},
		{"neither", Identity{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.DisplayName())
		})
	}
}

func TestUserType_Valid(t *testing.T) {
	assert.True(t, RoleSeller.Valid())
	assert.True(t, RoleWalmart.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserType("buyer").Valid())
	assert.False(t, UserType("").Valid())
}
