package scopekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTreeSoundFixture(t *testing.T) {
	f := newTreeFixture()

	violations, err := f.service.VerifyTree(testCtx)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestVerifyTreeRootLevel(t *testing.T) {
	violations := verifyTree([]OrgUnit{
		{ID: "W", Level: 3},
	})
	require.Len(t, violations, 1)
	assert.Equal(t, "W", violations[0].UnitID)
	assert.Contains(t, violations[0].Reason, "root level")
}

func TestVerifyTreeMissingParent(t *testing.T) {
	violations := verifyTree([]OrgUnit{
		{ID: "W", Level: 0},
		{ID: "R", Level: 1, ParentID: strPtr("gone")},
	})
	require.Len(t, violations, 1)
	assert.Equal(t, "R", violations[0].UnitID)
	assert.Contains(t, violations[0].Reason, "does not exist")
}

func TestVerifyTreeLevelMismatch(t *testing.T) {
	violations := verifyTree([]OrgUnit{
		{ID: "W", Level: 0},
		{ID: "R", Level: 5, ParentID: strPtr("W")},
	})
	require.Len(t, violations, 1)
	assert.Equal(t, "R", violations[0].UnitID)
	assert.Contains(t, violations[0].Reason, "level is 5")
}

func TestVerifyTreeCycle(t *testing.T) {
	violations := verifyTree([]OrgUnit{
		{ID: "A", Level: 1, ParentID: strPtr("B")},
		{ID: "B", Level: 2, ParentID: strPtr("A")},
	})

	var cycles []string
	for _, v := range violations {
		if v.Reason == "parent chain forms a cycle" {
			cycles = append(cycles, v.UnitID)
		}
	}
	assert.ElementsMatch(t, []string{"A", "B"}, cycles)
}

func TestVerifyTreeEmpty(t *testing.T) {
	assert.Empty(t, verifyTree(nil))
}

func TestTreeViolationString(t *testing.T) {
	v := TreeViolation{UnitID: "X", Reason: "parent chain forms a cycle"}
	assert.Equal(t, "org unit X: parent chain forms a cycle", v.String())
}
