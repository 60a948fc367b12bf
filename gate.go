package scopekit

import "context"

// SuperAuthority reports whether the user holds the global bypass: a
// superadmin grant of type rowiverse naming one of the registered root
// scope ids. Any registered root suffices. This is the cheapest predicate
// in the engine and every composite check evaluates it first.
func (s *Service) SuperAuthority(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ug, err := s.userGrants(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.superAuthority(ug), nil
}

// CanAccess is the single entry point the rest of the system calls: it
// composes SuperAuthority, then IsAdmin, then HasScope, short-circuiting on
// the first yes. The administrative check only runs for the four levels it
// supports; organization and community go straight to HasScope.
//
// An administrative grant therefore opens the gate, but so does ordinary
// standing in the scope. CanAccess answers "may the user act here at
// all", not "is the user an administrator here". Use IsAdmin directly to
// gate administration.
func (s *Service) CanAccess(ctx context.Context, userID string, scopeType ScopeType, scopeID string) (bool, error) {
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

	if s.superAuthority(ug) {
		return true, nil
	}
	if scopeType.AdminLevel() && s.isAdmin(ug, scopeType, scopeID) {
		return true, nil
	}
	return s.hasScope(ctx, ug, scopeType, scopeID)
}
