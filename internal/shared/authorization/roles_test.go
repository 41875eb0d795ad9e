package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseUserRole("volunteer")
	require.NoError(t, err)
	assert.Equal(t, RoleVolunteer, role)
}

func TestParseUserRole_RejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "Admin", "superuser", "ADMIN "} {
		_, err := ParseUserRole(s)
		assert.Error(t, err, "role %q must not parse", s)
	}
}
