package scopekit

import "context"

// Checker is the query surface bound to one user. It is typically created
// by the Service and stored in context by middleware for use in handlers.
//
// A Checker holds nothing but the binding: every call reads the store at
// invocation time, so a grant revoked between two calls is observed by the
// second one.
type Checker struct {
	userID  string
	service *Service
}

// NewChecker creates a new Checker for a user.
func NewChecker(userID string, service *Service) *Checker {
	return &Checker{
		userID:  userID,
		service: service,
	}
}

// GetChecker creates a Checker for a user.
func (s *Service) GetChecker(userID string) *Checker {
	return NewChecker(userID, s)
}

// GetCheckerFromContext creates a Checker using the user ID from context.
func (s *Service) GetCheckerFromContext(ctx context.Context) (*Checker, error) {
	userID := GetUserID(ctx)
	if userID == "" {
		return nil, ErrNoUserID
	}
	return s.GetChecker(userID), nil
}

// UserID returns the user ID this checker is for.
func (c *Checker) UserID() string {
	return c.userID
}

// CanAccess answers the top-level gate for this user.
//
// Example:
//
//	if ok, err := checker.CanAccess(ctx, scopekit.ScopeHub, hubID); err == nil && ok {
//	    // user may act within this hub
//	}
func (c *Checker) CanAccess(ctx context.Context, scopeType ScopeType, scopeID string) (bool, error) {
	return c.service.CanAccess(ctx, c.userID, scopeType, scopeID)
}

// HasScope answers the general standing check for this user.
func (c *Checker) HasScope(ctx context.Context, scopeType ScopeType, scopeID string) (bool, error) {
	return c.service.HasScope(ctx, c.userID, scopeType, scopeID)
}

// IsAdmin answers the administrative check for this user.
func (c *Checker) IsAdmin(ctx context.Context, level ScopeType, contextID string) (bool, error) {
	return c.service.IsAdmin(ctx, c.userID, level, contextID)
}

// SuperAuthority reports whether this user holds the global bypass.
func (c *Checker) SuperAuthority(ctx context.Context) (bool, error) {
	return c.service.SuperAuthority(ctx, c.userID)
}

// EffectiveRole resolves this user's role at an organization unit.
func (c *Checker) EffectiveRole(ctx context.Context, orgID string) (OrgRole, error) {
	return c.service.EffectiveRole(ctx, c.userID, orgID)
}

// HasOrgRole reports whether this user's effective role at orgID ranks at
// or above the required role.
func (c *Checker) HasOrgRole(ctx context.Context, orgID string, required OrgRole) (bool, error) {
	return c.service.HasOrgRole(ctx, c.userID, orgID, required)
}

// AccessibleOrgIDs returns every organization unit this user can reach.
func (c *Checker) AccessibleOrgIDs(ctx context.Context) ([]string, error) {
	return c.service.AccessibleOrgIDs(ctx, c.userID)
}
