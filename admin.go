package scopekit

import "context"

// IsAdmin reports whether the user administers the given level. It is the
// stricter sibling of HasScope, meant to gate administration actions rather
// than mere visibility, and only the four administrative levels are valid:
// rowiverse, superhub, tenant and hub.
//
// For the global levels (rowiverse, superhub) contextID is ignored: their
// administrators govern the entire family, not one sub-resource. For tenant
// and hub the grant must cover contextID, where a nil grant scope id covers
// every id of the type.
//
// IsAdmin never falls back to plain scope access: a non-admin grant that
// covers the scope is visibility, not administrative authority. Callers
// that want the permissive composite should use CanAccess, which runs
// HasScope after this check.
func (s *Service) IsAdmin(ctx context.Context, userID string, level ScopeType, contextID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	if !level.AdminLevel() {
		return false, NewError(ErrInvalidScope, "not an administrative level").WithScope(level, contextID)
	}

	ug, err := s.userGrants(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.isAdmin(ug, level, contextID), nil
}

// isAdmin evaluates the administrative check against a preloaded grant set.
func (s *Service) isAdmin(ug *UserGrants, level ScopeType, contextID string) bool {
	if s.superAuthority(ug) {
		return true
	}

	adminRoles := s.config.adminRolesFor(level)
	if len(adminRoles) == 0 {
		return false
	}

	switch level {
	case ScopeRowiverse, ScopeSuperhub:
		return ug.HasAdminRole(level, adminRoles)
	case ScopeTenant, ScopeHub:
		return ug.HasAdminGrant(level, contextID, adminRoles)
	case ScopeOrganization, ScopeCommunity:
		return false
	}
	return false
}
