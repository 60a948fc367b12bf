package scopekit

import "context"

// AncestorsOf walks the organization tree upward from orgID and returns the
// ancestor ids, nearest first.
//
// The result is a contiguous prefix of the true ancestor chain: the walk
// checks the *current* unit's inherit flag before appending its parent, so
// it ends at the first ancestor (inclusive) whose own flag is false and
// excludes everything above that point. The contract is "a unit that opts
// out of inheritance blocks everything above it from reaching anything
// below it", not "each unit independently decides for itself".
//
// The starting unit is never part of the result. A missing unit yields an
// empty result. The walk is capped at Config.MaxAncestorDepth hops so a
// violated tree invariant truncates the answer instead of looping.
func (s *Service) AncestorsOf(ctx context.Context, orgID string) ([]string, error) {
	if orgID == "" {
		return nil, nil
	}

	var ancestors []string
	currentID := orgID
	for depth := 0; depth < s.config.MaxAncestorDepth; depth++ {
		unit, err := s.store.OrgUnitByID(ctx, currentID)
		if err != nil {
			return nil, err
		}
		if unit == nil || unit.ParentID == nil {
			break
		}
		if !unit.InheritPermissions {
			// The current unit rejects inherited authority: stop without
			// including its parent.
			break
		}
		ancestors = append(ancestors, *unit.ParentID)
		currentID = *unit.ParentID
	}
	return ancestors, nil
}

// DescendantsOf returns the set of organization unit ids reachable from
// orgID through children whose own inherit flag is true.
//
// The traversal is breadth-first and filtered at every step: a child with
// the flag false is excluded from the result and its subtree is never
// expanded, mirroring the prefix-stop rule of AncestorsOf from the other
// direction. The two walks are deliberately separate named functions; their
// stopping rules are not interchangeable.
//
// The starting unit is never part of the result. The walk is capped at
// Config.MaxDescendantNodes collected units.
func (s *Service) DescendantsOf(ctx context.Context, orgID string) ([]string, error) {
	if orgID == "" {
		return nil, nil
	}

	seen := map[string]bool{orgID: true}
	var descendants []string
	frontier := []string{orgID}

	for len(frontier) > 0 && len(descendants) < s.config.MaxDescendantNodes {
		children, err := s.store.OrgChildren(ctx, frontier)
		if err != nil {
			return nil, err
		}

		frontier = frontier[:0]
		for _, child := range children {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			descendants = append(descendants, child.ID)
			frontier = append(frontier, child.ID)
			if len(descendants) >= s.config.MaxDescendantNodes {
				break
			}
		}
	}
	return descendants, nil
}
