package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("Known roles", func(t *testing.T) {
		for _, value := range []string{"doctor", "patient", "lab", "pharmacy"} {
			role, ok := ParseRole(value)
			assert.True(t, ok, value)
			assert.Equal(t, value, role.String())
		}
	})

	t.Run("Case and whitespace are ignored", func(t *testing.T) {
		role, ok := ParseRole("  Pharmacy ")
		assert.True(t, ok)
		assert.Equal(t, RolePharmacy, role)
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, ok := ParseRole("laboratory")
		assert.False(t, ok)
	})
}

func TestRolePath(t *testing.T) {
	assert.Equal(t, "/doctor/login", RoleDoctor.Path(ActionLogin))
	assert.Equal(t, "/lab/signup", RoleLab.Path(ActionSignup))
}
