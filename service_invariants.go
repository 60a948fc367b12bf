package scopekit

import (
	"context"
	"fmt"
)

// The engine trusts the tree-management collaborator to keep the
// organization tree acyclic and its levels consistent, and stays defensive
// (traversal bounds) regardless. VerifyTree is the offline/periodic checker
// that makes violations visible instead of silently truncating around them.

// TreeViolation describes one broken tree invariant.
type TreeViolation struct {
	UnitID string
	Reason string
}

func (v TreeViolation) String() string {
	return fmt.Sprintf("org unit %s: %s", v.UnitID, v.Reason)
}

// VerifyTree loads the whole organization tree and reports every invariant
// violation: parents that don't exist, levels inconsistent with parent
// depth + 1, non-zero root levels, and parent-pointer cycles. An empty
// result means the tree is sound. Intended for periodic or post-migration
// runs, not for the request path.
func (s *Service) VerifyTree(ctx context.Context) ([]TreeViolation, error) {
	units, err := s.store.OrgUnits(ctx)
	if err != nil {
		return nil, err
	}
	return verifyTree(units), nil
}

func verifyTree(units []OrgUnit) []TreeViolation {
	byID := make(map[string]*OrgUnit, len(units))
	for i := range units {
		byID[units[i].ID] = &units[i]
	}

	var violations []TreeViolation
	for i := range units {
		unit := &units[i]

		if unit.ParentID == nil {
			if unit.Level != 0 {
				violations = append(violations, TreeViolation{
					UnitID: unit.ID,
					Reason: fmt.Sprintf("root level is %d, want 0", unit.Level),
				})
			}
			continue
		}

		parent, ok := byID[*unit.ParentID]
		if !ok {
			violations = append(violations, TreeViolation{
				UnitID: unit.ID,
				Reason: fmt.Sprintf("parent %s does not exist", *unit.ParentID),
			})
			continue
		}
		if unit.Level != parent.Level+1 {
			violations = append(violations, TreeViolation{
				UnitID: unit.ID,
				Reason: fmt.Sprintf("level is %d, want parent level %d + 1", unit.Level, parent.Level),
			})
		}
	}

	// Cycle detection over parent pointers. A walk that neither reaches a
	// root nor leaves the tree within len(units) hops is inside a cycle.
	for i := range units {
		unit := &units[i]
		current := unit
		for hops := 0; ; hops++ {
			if current.ParentID == nil {
				break
			}
			next, ok := byID[*current.ParentID]
			if !ok {
				break // dangling parent, reported above
			}
			if next.ID == unit.ID {
				violations = append(violations, TreeViolation{
					UnitID: unit.ID,
					Reason: "parent chain forms a cycle",
				})
				break
			}
			if hops > len(units) {
				break
			}
			current = next
		}
	}
	return violations
}
