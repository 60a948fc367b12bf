package scopekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceWithStore(t *testing.T) {
	store := NewMemoryStore()
	service := NewServiceWithStore(store, WithRootScopeIDs("root-1"))

	assert.Same(t, Store(store), service.Store())
	assert.Equal(t, []string{"root-1"}, service.Config().RootScopeIDs)
	assert.Equal(t, DefaultMaxAncestorDepth, service.Config().MaxAncestorDepth)
	assert.Equal(t, DefaultMaxDescendantNodes, service.Config().MaxDescendantNodes)
}

// A store-backed service has no database underneath: the administration
// surface refuses rather than panics.
func TestAdministrationRequiresDatabase(t *testing.T) {
	f := newTreeFixture()
	ctx := WithActorID(testCtx, f.admin)

	err := f.service.AssignOrgMembership(ctx, "u-new", f.R, RoleMember)
	require.Error(t, err)
	assert.True(t, IsDatabaseError(err))

	err = f.service.RevokeOrgMembership(ctx, f.admin, f.R)
	require.Error(t, err)
	assert.True(t, IsDatabaseError(err))

	err = f.service.AssignFlatMembership(ctx, ScopeHub, "hub-1", "u-new", "member")
	require.Error(t, err)
	assert.True(t, IsDatabaseError(err))

	err = f.service.CreateGrant(ctx, "u-new", ScopeHub, "admin", strPtr("hub-1"))
	require.Error(t, err)
	assert.True(t, IsDatabaseError(err))
}

func TestConfigOptions(t *testing.T) {
	config := DefaultConfig()
	for _, opt := range []Option{
		WithRootScopeIDs("a", "b"),
		WithMaxAncestorDepth(5),
		WithMaxDescendantNodes(100),
		WithAdminRoles(ScopeTenant, "chief"),
	} {
		opt(&config)
	}

	assert.Equal(t, []string{"a", "b"}, config.RootScopeIDs)
	assert.Equal(t, 5, config.MaxAncestorDepth)
	assert.Equal(t, 100, config.MaxDescendantNodes)
	assert.Equal(t, []string{"chief"}, config.AdminRoles[ScopeTenant])
	assert.Equal(t, []string{"owner", "admin"}, config.AdminRoles[ScopeHub], "other levels keep their defaults")
}
