package permissions_test

import (
	"testing"

	"hotel/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.True(t, data.FindPermissions("/v1/auth/login", "POST").Skip)
	assert.True(t, data.FindPermissions("/v1/pages/about", "GET").Skip)
	assert.Equal(t, []string{"superadmin", "admin"}, data.FindPermissions("/v1/rooms/{id}", "DELETE").Permissions)
}

func TestFindPermissionsUnknownEndpoint(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/bookings", "GET"))
	assert.False(t, data.FindPermissions("/v1/auth/login", "GET").Skip)
}

func TestFindPermissionsIgnoresTrailingSlash(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.Equal(t, []string{"superadmin", "admin"}, data.FindPermissions("/v1/rooms/", "POST").Permissions)
	assert.Equal(t, []string{"superadmin", "admin"}, data.FindPermissions("/v1/rooms", "post").Permissions)
}

func TestFindPermissionsBuildsIndexLazily(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/bookings/{id}", Method: "DELETE", Permissions: []string{"admin"}},
			{Path: "/v1/bookings/{id}", Method: "DELETE", Permissions: []string{"staff"}},
		},
	}

	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/bookings/{id}", "DELETE").Permissions)
}
