package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSales.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestManagementTypeMapping(t *testing.T) {
	// Every declared type must map to a path and a title without panicking,
	// and paths must be unique (they become URL segments).
	seen := map[string]bool{}
	for _, mt := range ManagementTypes {
		path := mt.APIPath()
		assert.NotEmpty(t, path)
		assert.False(t, seen[path], "duplicate path %q", path)
		seen[path] = true
		assert.NotEmpty(t, mt.Title())
	}
}

func TestInlineCreatable(t *testing.T) {
	assert.True(t, ManagementBrands.InlineCreatable())
	assert.True(t, ManagementProducts.InlineCreatable())
	assert.True(t, ManagementLocations.InlineCreatable())
	assert.False(t, ManagementStatuses.InlineCreatable())
	assert.False(t, ManagementSources.InlineCreatable())
	assert.False(t, ManagementOwnership.InlineCreatable())
}
