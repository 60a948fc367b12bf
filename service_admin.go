package scopekit

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fernandezvara/dbkit"
)

// The administration surface: the write half the engine's read-only
// contract refers to. Memberships, grants and org units are mutated here
// and only here; every request-time check reads whatever state these
// operations left behind. All writes require an actor in context and
// authorize the actor through the same engine they mutate.

// writable guards operations that need the dbkit database underneath.
func (s *Service) writable() error {
	if s.db == nil {
		return NewError(ErrDatabaseError, "administration surface requires a dbkit-backed service")
	}
	return nil
}

// requireActor resolves the acting user and verifies their standing using
// check. Assigning to yourself is allowed without standing so a fresh
// system can be bootstrapped, matching the read side's "absence means no"
// stance everywhere else.
func (s *Service) requireActor(ctx context.Context, targetUserID string, check func(actorID string) (bool, error)) (string, error) {
	actorID := GetActorID(ctx)
	if actorID == "" {
		return "", NewError(ErrNoActorID, "actor ID required for administration")
	}
	if actorID == targetUserID {
		return actorID, nil
	}
	ok, err := check(actorID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", NewError(ErrUnauthorized, "actor lacks administrative standing").WithActor(actorID)
	}
	return actorID, nil
}

// AssignOrgMembership binds a user to an organization unit with a role. The
// actor must hold an effective ADMIN role or better at the unit (direct or
// inherited), or the global bypass. At most one membership exists per
// (unit, user).
func (s *Service) AssignOrgMembership(ctx context.Context, userID, orgID string, role OrgRole) error {
	if err := s.writable(); err != nil {
		return err
	}
	if !role.Valid() {
		return NewError(ErrInvalidRole, "unknown organization role").WithRole(string(role))
	}

	actorID, err := s.requireActor(ctx, userID, func(actorID string) (bool, error) {
		if super, err := s.SuperAuthority(ctx, actorID); err != nil || super {
			return super, err
		}
		return s.HasOrgRole(ctx, actorID, orgID, RoleAdmin)
	})
	if err != nil {
		return err
	}

	membership := &OrgMembership{
		OrgID:  orgID,
		UserID: userID,
		Role:   role,
	}
	result, err := s.db.NewInsert().
		Model(membership).
		On("CONFLICT (org_id, user_id) DO NOTHING").
		Exec(ctx)
	err = dbkit.WithErr(result, err, "AssignOrgMembership").Err()
	if err != nil {
		return NewError(ErrDatabaseError, "failed to create org membership").
			WithScope(ScopeOrganization, orgID).
			WithRole(string(role)).
			WithUser(userID).
			WithActor(actorID)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return NewError(ErrAlreadyMember, "user already belongs to this unit").
			WithScope(ScopeOrganization, orgID).
			WithUser(userID)
	}
	return nil
}

// RevokeOrgMembership removes a user's membership at an organization unit.
func (s *Service) RevokeOrgMembership(ctx context.Context, userID, orgID string) error {
	if err := s.writable(); err != nil {
		return err
	}

	_, err := s.requireActor(ctx, userID, func(actorID string) (bool, error) {
		if super, err := s.SuperAuthority(ctx, actorID); err != nil || super {
			return super, err
		}
		return s.HasOrgRole(ctx, actorID, orgID, RoleAdmin)
	})
	if err != nil {
		return err
	}

	result, err := s.db.NewDelete().Table("org_memberships").
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Exec(ctx)
	err = dbkit.WithErr(result, err, "RevokeOrgMembership").Err()
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return NewError(ErrNotMember, "user does not belong to this unit").
			WithScope(ScopeOrganization, orgID).
			WithUser(userID)
	}
	return nil
}

// AssignFlatMembership binds a user to a flat scope (tenant, hub or
// community) with an access level. The actor must administer the family
// (for communities, hold the bypass or cover the community with a grant).
func (s *Service) AssignFlatMembership(ctx context.Context, scopeType ScopeType, scopeID, userID, accessLevel string) error {
	if err := s.writable(); err != nil {
		return err
	}

	actorID, err := s.requireActor(ctx, userID, func(actorID string) (bool, error) {
		if scopeType.AdminLevel() {
			return s.IsAdmin(ctx, actorID, scopeType, scopeID)
		}
		return s.SuperAuthority(ctx, actorID)
	})
	if err != nil {
		return err
	}

	exists, err := s.store.HasFlatMembership(ctx, scopeType, userID, scopeID)
	if err != nil {
		return err
	}
	if exists {
		return NewError(ErrAlreadyMember, "user already belongs to this scope").
			WithScope(scopeType, scopeID).
			WithUser(userID)
	}

	var model any
	switch scopeType {
	case ScopeTenant:
		model = &TenantMembership{TenantID: scopeID, UserID: userID, AccessLevel: accessLevel}
	case ScopeHub:
		model = &HubMembership{HubID: scopeID, UserID: userID, AccessLevel: accessLevel}
	case ScopeCommunity:
		model = &CommunityMembership{CommunityID: scopeID, UserID: userID, AccessLevel: accessLevel}
	default:
		return NewError(ErrInvalidScope, "scope family has no flat membership table").
			WithScope(scopeType, scopeID)
	}

	result, err := s.db.NewInsert().Model(model).Exec(ctx)
	err = dbkit.WithErr(result, err, "AssignFlatMembership").Err()
	if err != nil {
		if dbkit.IsDuplicate(err) {
			return NewError(ErrAlreadyMember, "user already belongs to this scope").
				WithScope(scopeType, scopeID).
				WithUser(userID)
		}
		return NewError(ErrDatabaseError, "failed to create membership").
			WithScope(scopeType, scopeID).
			WithUser(userID).
			WithActor(actorID)
	}
	return nil
}

// RevokeFlatMembership removes a user's flat membership.
func (s *Service) RevokeFlatMembership(ctx context.Context, scopeType ScopeType, scopeID, userID string) error {
	if err := s.writable(); err != nil {
		return err
	}

	_, err := s.requireActor(ctx, userID, func(actorID string) (bool, error) {
		if scopeType.AdminLevel() {
			return s.IsAdmin(ctx, actorID, scopeType, scopeID)
		}
		return s.SuperAuthority(ctx, actorID)
	})
	if err != nil {
		return err
	}

	var table, idColumn string
	switch scopeType {
	case ScopeTenant:
		table, idColumn = "tenant_memberships", "tenant_id"
	case ScopeHub:
		table, idColumn = "hub_memberships", "hub_id"
	case ScopeCommunity:
		table, idColumn = "community_memberships", "community_id"
	default:
		return NewError(ErrInvalidScope, "scope family has no flat membership table").
			WithScope(scopeType, scopeID)
	}

	result, err := s.db.NewDelete().Table(table).
		Where("user_id = ? AND "+idColumn+" = ?", userID, scopeID).
		Exec(ctx)
	err = dbkit.WithErr(result, err, "RevokeFlatMembership").Err()
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return NewError(ErrNotMember, "user does not belong to this scope").
			WithScope(scopeType, scopeID).
			WithUser(userID)
	}
	return nil
}

// AssignOrgMemberships creates several organization memberships in one
// transaction; either every row lands or none does. The actor must hold
// the global bypass, since the batch may span units with different
// administrators.
//
// Example:
//
//	memberships := []scopekit.OrgMembership{
//	    {OrgID: regionID, UserID: "user1", Role: scopekit.RoleAdmin},
//	    {OrgID: regionID, UserID: "user2", Role: scopekit.RoleMember},
//	}
//	err := service.AssignOrgMemberships(ctx, memberships)
func (s *Service) AssignOrgMemberships(ctx context.Context, memberships []OrgMembership) error {
	if err := s.writable(); err != nil {
		return err
	}
	for _, m := range memberships {
		if !m.Role.Valid() {
			return NewError(ErrInvalidRole, "unknown organization role").
				WithRole(string(m.Role)).
				WithUser(m.UserID)
		}
	}

	actorID := GetActorID(ctx)
	if actorID == "" {
		return NewError(ErrNoActorID, "actor ID required for administration")
	}
	super, err := s.SuperAuthority(ctx, actorID)
	if err != nil {
		return err
	}
	if !super {
		return NewError(ErrUnauthorized, "batch assignment requires super-authority").WithActor(actorID)
	}

	return s.Transaction(ctx, func(ctx context.Context) error {
		models := make([]*OrgMembership, len(memberships))
		for i := range memberships {
			models[i] = &memberships[i]
		}
		_, err := dbkit.BatchInsert(ctx, s.db, models, dbkit.BatchSize)
		return dbkit.WithErr1(err, "AssignOrgMemberships").Err()
	})
}

// CreateGrant writes a direct permission grant. A nil scopeID makes the
// grant cover every scope of its type; only the global families should use
// that form. The actor must hold the global bypass.
func (s *Service) CreateGrant(ctx context.Context, userID string, scopeType ScopeType, role string, scopeID *string) error {
	if err := s.writable(); err != nil {
		return err
	}
	if !scopeType.Valid() {
		return NewError(ErrInvalidScope, "unknown scope type").WithScope(scopeType, "")
	}

	actorID, err := s.requireActor(ctx, userID, func(actorID string) (bool, error) {
		return s.SuperAuthority(ctx, actorID)
	})
	if err != nil {
		return err
	}

	exists, err := s.grantExists(ctx, userID, scopeType, role, scopeID)
	if err != nil {
		return err
	}
	if exists {
		return NewError(ErrAlreadyGranted, "grant already exists").
			WithScope(scopeType, deref(scopeID)).
			WithRole(role).
			WithUser(userID)
	}

	grant := &PermissionGrant{
		UserID:    userID,
		ScopeType: scopeType,
		Role:      role,
		ScopeID:   scopeID,
	}
	result, err := s.db.NewInsert().Model(grant).Exec(ctx)
	err = dbkit.WithErr(result, err, "CreateGrant").Err()
	if err != nil {
		return NewError(ErrDatabaseError, "failed to create grant").
			WithScope(scopeType, deref(scopeID)).
			WithRole(role).
			WithUser(userID).
			WithActor(actorID)
	}
	return nil
}

// RevokeGrant removes a direct permission grant.
func (s *Service) RevokeGrant(ctx context.Context, userID string, scopeType ScopeType, role string, scopeID *string) error {
	if err := s.writable(); err != nil {
		return err
	}

	_, err := s.requireActor(ctx, userID, func(actorID string) (bool, error) {
		return s.SuperAuthority(ctx, actorID)
	})
	if err != nil {
		return err
	}

	q := s.db.NewDelete().Table("permission_grants").
		Where("user_id = ? AND scope_type = ? AND role = ?", userID, scopeType, role)
	if scopeID == nil {
		q = q.Where("scope_id IS NULL")
	} else {
		q = q.Where("scope_id = ?", *scopeID)
	}
	result, err := q.Exec(ctx)
	err = dbkit.WithErr(result, err, "RevokeGrant").Err()
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return NewError(ErrNotGranted, "user does not hold this grant").
			WithScope(scopeType, deref(scopeID)).
			WithRole(role).
			WithUser(userID)
	}
	return nil
}

func (s *Service) grantExists(ctx context.Context, userID string, scopeType ScopeType, role string, scopeID *string) (bool, error) {
	return dbkit.Exists[PermissionGrant](ctx, s.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("user_id = ? AND scope_type = ? AND role = ?", userID, scopeType, role)
		if scopeID == nil {
			return q.Where("scope_id IS NULL")
		}
		return q.Where("scope_id = ?", *scopeID)
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
