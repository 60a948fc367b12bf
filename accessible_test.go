package scopekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessibleOrgIDs(t *testing.T) {
	f := newTreeFixture()

	// Direct at R plus R's inheriting descendants. T opts out, so neither
	// T nor C is reachable.
	orgIDs, err := f.service.AccessibleOrgIDs(testCtx, f.admin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{f.R, f.M}, orgIDs)
}

func TestAccessibleOrgIDsNoMemberships(t *testing.T) {
	f := newTreeFixture()

	orgIDs, err := f.service.AccessibleOrgIDs(testCtx, "u-nobody")
	require.NoError(t, err)
	assert.Empty(t, orgIDs)

	orgIDs, err = f.service.AccessibleOrgIDs(testCtx, "")
	require.NoError(t, err)
	assert.Empty(t, orgIDs)
}

// TestAccessibleOrgIDsBelowBreak: a direct membership below an inheritance
// break flows downward normally; the break only blocks what comes from
// above.
func TestAccessibleOrgIDsBelowBreak(t *testing.T) {
	f := newTreeFixture()
	f.store.PutOrgMembership(f.T, "u-team", RoleManager)

	orgIDs, err := f.service.AccessibleOrgIDs(testCtx, "u-team")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{f.T, f.C}, orgIDs)
}

func TestAccessibleOrgIDsUnionOfDirects(t *testing.T) {
	f := newTreeFixture()
	f.store.PutOrgMembership(f.W, "u-wide", RoleViewer)
	f.store.PutOrgMembership(f.T, "u-wide", RoleViewer)

	// W contributes R and M; T contributes C; duplicates collapse.
	orgIDs, err := f.service.AccessibleOrgIDs(testCtx, "u-wide")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{f.W, f.R, f.M, f.T, f.C}, orgIDs)
}
