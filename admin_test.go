package scopekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdminSuperAuthority(t *testing.T) {
	f := newTreeFixture()
	f.grantSuper("u-super")

	for _, level := range []ScopeType{ScopeRowiverse, ScopeSuperhub, ScopeTenant, ScopeHub} {
		ok, err := f.service.IsAdmin(testCtx, "u-super", level, "anything")
		require.NoError(t, err)
		assert.True(t, ok, level)
	}
}

// TestIsAdminGlobalLevels: rowiverse and superhub administration is
// inherently global, so the context id is ignored.
func TestIsAdminGlobalLevels(t *testing.T) {
	f := newTreeFixture()
	f.store.PutGrant(PermissionGrant{UserID: "u-ra", ScopeType: ScopeRowiverse, Role: "admin", ScopeID: strPtr("some-root")})
	f.store.PutGrant(PermissionGrant{UserID: "u-sha", ScopeType: ScopeSuperhub, Role: "admin", ScopeID: strPtr("sh-1")})

	ok, err := f.service.IsAdmin(testCtx, "u-ra", ScopeRowiverse, "ignored-context")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.IsAdmin(testCtx, "u-sha", ScopeSuperhub, "sh-2")
	require.NoError(t, err)
	assert.True(t, ok, "a superhub administrator governs the entire superhub")

	ok, err = f.service.IsAdmin(testCtx, "u-sha", ScopeRowiverse, "")
	require.NoError(t, err)
	assert.False(t, ok, "superhub administration does not imply rowiverse administration")
}

func TestIsAdminScopedLevels(t *testing.T) {
	f := newTreeFixture()
	f.store.PutGrant(PermissionGrant{UserID: "u-ta", ScopeType: ScopeTenant, Role: "owner", ScopeID: strPtr("ten-1")})

	ok, err := f.service.IsAdmin(testCtx, "u-ta", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.IsAdmin(testCtx, "u-ta", ScopeTenant, "ten-2")
	require.NoError(t, err)
	assert.False(t, ok, "tenant administration is per tenant")

	ok, err = f.service.IsAdmin(testCtx, "u-ta", ScopeHub, "ten-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsAdminWildcardGrant: a grant with no scope id makes its holder an
// administrator of every scope of the type.
func TestIsAdminWildcardGrant(t *testing.T) {
	f := newTreeFixture()
	f.store.PutGrant(PermissionGrant{UserID: "u-ha", ScopeType: ScopeHub, Role: "admin"})

	for _, hubID := range []string{"hub-1", "hub-2"} {
		ok, err := f.service.IsAdmin(testCtx, "u-ha", ScopeHub, hubID)
		require.NoError(t, err)
		assert.True(t, ok, hubID)
	}
}

// TestIsAdminIsStrict: non-admin standing (a plain role grant or a flat
// membership) never counts as administration. Visibility is CanAccess's
// business.
func TestIsAdminIsStrict(t *testing.T) {
	f := newTreeFixture()
	f.store.PutGrant(PermissionGrant{UserID: "u-viewer", ScopeType: ScopeTenant, Role: "viewer", ScopeID: strPtr("ten-1")})
	f.store.PutFlatMembership(ScopeTenant, "ten-2", "u-member", "member")

	ok, err := f.service.IsAdmin(testCtx, "u-viewer", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.False(t, ok, "a viewer grant covers the scope but is not administrative")

	ok, err = f.service.IsAdmin(testCtx, "u-member", ScopeTenant, "ten-2")
	require.NoError(t, err)
	assert.False(t, ok, "flat membership is standing, not administration")

	// Both still pass the gate.
	ok, err = f.service.CanAccess(testCtx, "u-viewer", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.CanAccess(testCtx, "u-member", ScopeTenant, "ten-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAdminInvalidLevel(t *testing.T) {
	f := newTreeFixture()

	_, err := f.service.IsAdmin(testCtx, f.admin, ScopeOrganization, f.R)
	require.Error(t, err)
	assert.True(t, IsInvalidScope(err), "organization is not an administrative level")

	_, err = f.service.IsAdmin(testCtx, f.admin, ScopeCommunity, "com-1")
	require.Error(t, err)
	assert.True(t, IsInvalidScope(err))
}

func TestIsAdminEmptyUser(t *testing.T) {
	f := newTreeFixture()

	ok, err := f.service.IsAdmin(testCtx, "", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAdminConfigurableRoles(t *testing.T) {
	f := newTreeFixture(WithAdminRoles(ScopeHub, "chief"))
	f.store.PutGrant(PermissionGrant{UserID: "u-chief", ScopeType: ScopeHub, Role: "chief", ScopeID: strPtr("hub-1")})
	f.store.PutGrant(PermissionGrant{UserID: "u-owner", ScopeType: ScopeHub, Role: "owner", ScopeID: strPtr("hub-1")})

	ok, err := f.service.IsAdmin(testCtx, "u-chief", ScopeHub, "hub-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.IsAdmin(testCtx, "u-owner", ScopeHub, "hub-1")
	require.NoError(t, err)
	assert.False(t, ok, "the configured set replaced the default")
}
