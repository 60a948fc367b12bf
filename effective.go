package scopekit

import "context"

// EffectiveRole resolves the role a user ultimately holds at an
// organization unit after permission inheritance.
//
// A direct membership at orgID always wins, regardless of what inheritance
// would otherwise produce. Without one, the user borrows the
// highest-ranked role among their memberships on the ancestor prefix of
// orgID; the maximum wins, not the nearest ancestor. RoleNone is returned
// when neither source yields a role.
func (s *Service) EffectiveRole(ctx context.Context, userID, orgID string) (OrgRole, error) {
	if userID == "" || orgID == "" {
		return RoleNone, nil
	}

	direct, err := s.store.OrgMembership(ctx, userID, orgID)
	if err != nil {
		return RoleNone, err
	}
	if direct != nil {
		return direct.Role, nil
	}

	ancestors, err := s.AncestorsOf(ctx, orgID)
	if err != nil {
		return RoleNone, err
	}
	if len(ancestors) == 0 {
		return RoleNone, nil
	}

	memberships, err := s.store.OrgMembershipsIn(ctx, userID, ancestors)
	if err != nil {
		return RoleNone, err
	}

	roles := make([]OrgRole, 0, len(memberships))
	for _, m := range memberships {
		roles = append(roles, m.Role)
	}
	return MaxOrgRole(roles), nil
}

// HasOrgRole reports whether the user's effective role at orgID ranks at or
// above the required role. RoleNone never satisfies a requirement.
func (s *Service) HasOrgRole(ctx context.Context, userID, orgID string, required OrgRole) (bool, error) {
	effective, err := s.EffectiveRole(ctx, userID, orgID)
	if err != nil {
		return false, err
	}
	return effective.AtLeast(required), nil
}
