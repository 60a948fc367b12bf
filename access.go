package scopekit

import "context"

// userGrants loads the user's full grant set in one store read. Grant
// matching after that is pure in-memory evaluation, so the ordered steps of
// HasScope never re-query for a cheaper predicate.
func (s *Service) userGrants(ctx context.Context, userID string) (*UserGrants, error) {
	grants, err := s.store.GrantsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewUserGrants(userID, grants), nil
}

// superAuthority evaluates the global bypass against a preloaded grant set.
func (s *Service) superAuthority(ug *UserGrants) bool {
	return ug.HasRoleGrantIn(ScopeRowiverse, RoleSuperadmin, s.config.RootScopeIDs)
}

// HasScope reports whether the user has any standing in the scope
// (type, id). Side-effect free. An empty scopeID is the whole-family query
// used for rowiverse and superhub administrators.
//
// Steps run in order and short-circuit:
//  1. super-authority bypasses everything;
//  2. a direct grant covering (scopeType, scopeID), with a nil grant scope
//     id matching any requested id of the type;
//  3. the family fallback: a flat membership row for tenant/hub/community,
//     the hierarchy check for organization;
//  4. for a whole-family query, any grant of the type;
//  5. otherwise false.
//
// A scope id that doesn't exist is indistinguishable from an absent grant
// and yields false, never an error. Store failures propagate.
func (s *Service) HasScope(ctx context.Context, userID string, scopeType ScopeType, scopeID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	if !scopeType.Valid() {
		return false, NewError(ErrInvalidScope, "unknown scope type").WithScope(scopeType, scopeID)
	}

	ug, err := s.userGrants(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.hasScope(ctx, ug, scopeType, scopeID)
}

// hasScope runs the ordered steps against a preloaded grant set.
func (s *Service) hasScope(ctx context.Context, ug *UserGrants, scopeType ScopeType, scopeID string) (bool, error) {
	if s.superAuthority(ug) {
		return true, nil
	}

	if scopeID == "" {
		// Whole-family query: any grant of the type counts, whatever its
		// own scope id.
		return ug.HasAnyGrant(scopeType), nil
	}

	if ug.HasScopeGrant(scopeType, scopeID) {
		return true, nil
	}

	switch scopeType {
	case ScopeTenant, ScopeHub, ScopeCommunity:
		return s.store.HasFlatMembership(ctx, scopeType, ug.UserID, scopeID)
	case ScopeOrganization:
		return s.HasOrgAccessWithHierarchy(ctx, ug.UserID, scopeID)
	case ScopeRowiverse, ScopeSuperhub:
		// No membership table backs these families; grants are the only
		// source of standing.
		return false, nil
	}
	return false, nil
}

// HasOrgAccessWithHierarchy reports whether the user can reach an
// organization unit: a direct membership at orgID, or a direct membership
// at any unit of orgID's ancestor prefix. A unit whose prefix is empty is
// reachable only through direct membership; authority above an
// inheritance break never leaks below it.
func (s *Service) HasOrgAccessWithHierarchy(ctx context.Context, userID, orgID string) (bool, error) {
	if userID == "" || orgID == "" {
		return false, nil
	}

	direct, err := s.store.OrgMembership(ctx, userID, orgID)
	if err != nil {
		return false, err
	}
	if direct != nil {
		return true, nil
	}

	ancestors, err := s.AncestorsOf(ctx, orgID)
	if err != nil {
		return false, err
	}
	if len(ancestors) == 0 {
		return false, nil
	}

	memberships, err := s.store.OrgMembershipsIn(ctx, userID, ancestors)
	if err != nil {
		return false, err
	}
	return len(memberships) > 0, nil
}
