package scopekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperAuthority(t *testing.T) {
	f := newTreeFixture()
	f.grantSuper("u-super")

	ok, err := f.service.SuperAuthority(testCtx, "u-super")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.SuperAuthority(testCtx, f.admin)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.service.SuperAuthority(testCtx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestSuperAuthorityRequiresRegisteredRoot: a superadmin grant only confers
// super-authority when it names one of the configured root scope ids. A
// wildcard grant does not count, nor does one naming an arbitrary scope.
func TestSuperAuthorityRequiresRegisteredRoot(t *testing.T) {
	f := newTreeFixture()
	f.store.PutGrant(PermissionGrant{UserID: "u-wild", ScopeType: ScopeRowiverse, Role: RoleSuperadmin})
	f.store.PutGrant(PermissionGrant{UserID: "u-stray", ScopeType: ScopeRowiverse, Role: RoleSuperadmin, ScopeID: strPtr("not-a-root")})

	ok, err := f.service.SuperAuthority(testCtx, "u-wild")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.service.SuperAuthority(testCtx, "u-stray")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCanAccessSuperBypassesEverything: super-authority opens the gate for
// every scope type, including scope ids that do not exist anywhere.
func TestCanAccessSuperBypassesEverything(t *testing.T) {
	f := newTreeFixture()
	f.grantSuper("u-super")

	for _, scopeType := range ScopeTypes {
		ok, err := f.service.CanAccess(testCtx, "u-super", scopeType, "no-such-scope")
		require.NoError(t, err)
		assert.True(t, ok, scopeType)
	}
}

func TestCanAccessAdminGrant(t *testing.T) {
	f := newTreeFixture()
	f.store.PutGrant(PermissionGrant{UserID: "u-ta", ScopeType: ScopeTenant, Role: "admin", ScopeID: strPtr("ten-1")})

	ok, err := f.service.CanAccess(testCtx, "u-ta", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.CanAccess(testCtx, "u-ta", ScopeTenant, "ten-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAccessFlatMembership(t *testing.T) {
	f := newTreeFixture()
	f.store.PutFlatMembership(ScopeCommunity, "com-1", "u-member", "member")

	ok, err := f.service.CanAccess(testCtx, "u-member", ScopeCommunity, "com-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.CanAccess(testCtx, "u-member", ScopeCommunity, "com-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCanAccessOrgHierarchy: organization access flows through the tree, so
// the gate honors inherited memberships and the inherit break.
func TestCanAccessOrgHierarchy(t *testing.T) {
	f := newTreeFixture()

	ok, err := f.service.CanAccess(testCtx, f.admin, ScopeOrganization, f.M)
	require.NoError(t, err)
	assert.True(t, ok, "membership at R reaches M through the walk up")

	ok, err = f.service.CanAccess(testCtx, f.admin, ScopeOrganization, f.T)
	require.NoError(t, err)
	assert.False(t, ok, "T opted out of inheritance")
}

func TestCanAccessNobody(t *testing.T) {
	f := newTreeFixture()

	ok, err := f.service.CanAccess(testCtx, "u-nobody", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.service.CanAccess(testCtx, "", ScopeTenant, "ten-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAccessInvalidScopeType(t *testing.T) {
	f := newTreeFixture()

	_, err := f.service.CanAccess(testCtx, f.admin, ScopeType("planet"), "x")
	require.Error(t, err)
	assert.True(t, IsInvalidScope(err))
}
