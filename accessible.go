package scopekit

import "context"

// AccessibleOrgIDs computes every organization unit the user can reach:
// the units where they hold a direct membership, any role, plus the
// inheriting descendants of each.
//
// Accessibility flows downward from direct grants (you see everything you
// manage) while EffectiveRole flows upward (you borrow authority from
// ancestors). The two directions are deliberately different and never
// collapsed into one traversal.
func (s *Service) AccessibleOrgIDs(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, nil
	}

	direct, err := s.store.OrgMembershipOrgIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(direct) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(direct))
	accessible := make([]string, 0, len(direct))
	for _, orgID := range direct {
		if seen[orgID] {
			continue
		}
		seen[orgID] = true
		accessible = append(accessible, orgID)
	}

	for _, orgID := range direct {
		descendants, err := s.DescendantsOf(ctx, orgID)
		if err != nil {
			return nil, err
		}
		for _, id := range descendants {
			if seen[id] {
				continue
			}
			seen[id] = true
			accessible = append(accessible, id)
		}
	}
	return accessible, nil
}
