package scopekit

import (
	"time"

	"github.com/uptrace/bun"
)

// OrgUnit is a vertex in the tenant-scoped organization tree.
//
// InheritPermissions is owned by the child: it means "this unit accepts
// grants made on ancestors above it". A unit with the flag false blocks
// upward inheritance for itself and for everything below it, even when a
// descendant's own flag is true: propagation is a contiguous prefix walk,
// not a per-unit independent check.
type OrgUnit struct {
	bun.BaseModel `bun:"table:org_units,alias:ou"`

	ID                 string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name               string    `bun:"name,notnull"`
	Slug               string    `bun:"slug,notnull,unique"`
	Level              int       `bun:"level,notnull"`
	UnitType           string    `bun:"unit_type"` // advisory tag: world, region, country, division, team, community, client
	ParentID           *string   `bun:"parent_id,type:uuid"`
	InheritPermissions bool      `bun:"inherit_permissions,notnull,default:true"`
	CreatedAt          time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt          time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Root reports whether the unit is a tree root.
func (u *OrgUnit) Root() bool {
	return u.ParentID == nil
}

// OrgMembership binds a user to an organization unit with a role.
// At most one membership exists per (org unit, user).
type OrgMembership struct {
	bun.BaseModel `bun:"table:org_memberships,alias:om"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	OrgID     string    `bun:"org_id,notnull,type:uuid"`
	UserID    string    `bun:"user_id,notnull"`
	Role      OrgRole   `bun:"role,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// TenantMembership binds a user to a billing tenant. Flat: membership is
// binary per exact tenant id, with no inheritance.
type TenantMembership struct {
	bun.BaseModel `bun:"table:tenant_memberships,alias:tm"`

	ID          string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	TenantID    string    `bun:"tenant_id,notnull"`
	UserID      string    `bun:"user_id,notnull"`
	AccessLevel string    `bun:"access_level,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// HubMembership binds a user to a delivery hub. Flat, like TenantMembership.
type HubMembership struct {
	bun.BaseModel `bun:"table:hub_memberships,alias:hm"`

	ID          string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	HubID       string    `bun:"hub_id,notnull"`
	UserID      string    `bun:"user_id,notnull"`
	AccessLevel string    `bun:"access_level,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// CommunityMembership binds a user to a community. Flat, like TenantMembership.
type CommunityMembership struct {
	bun.BaseModel `bun:"table:community_memberships,alias:cm"`

	ID          string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	CommunityID string    `bun:"community_id,notnull"`
	UserID      string    `bun:"user_id,notnull"`
	AccessLevel string    `bun:"access_level,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// PermissionGrant is a direct, scope-typed grant independent of the
// membership tables. A nil ScopeID means the grant applies to every scope of
// its type (rowiverse- and superhub-wide administrators). Grants are written
// by the administration surface; the engine only reads them.
type PermissionGrant struct {
	bun.BaseModel `bun:"table:permission_grants,alias:pg"`

	ID        string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    string    `bun:"user_id,notnull"`
	ScopeType ScopeType `bun:"scope_type,notnull"`
	Role      string    `bun:"role,notnull"`
	ScopeID   *string   `bun:"scope_id"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Covers reports whether the grant covers the requested scope id. A nil
// grant scope id matches any requested id of the grant's type, including
// the whole-family query (empty requested id). An exact grant only matches
// its own id.
func (g *PermissionGrant) Covers(scopeID string) bool {
	if g.ScopeID == nil {
		return true
	}
	return scopeID != "" && *g.ScopeID == scopeID
}

// UserGrants holds all permission grants for one user, indexed by scope
// type. It is the per-request working set for grant matching: one store
// read, then pure in-memory evaluation.
type UserGrants struct {
	UserID string
	Grants []PermissionGrant

	byType map[ScopeType][]PermissionGrant
}

// NewUserGrants creates a UserGrants from a list of grants.
func NewUserGrants(userID string, grants []PermissionGrant) *UserGrants {
	ug := &UserGrants{
		UserID: userID,
		Grants: grants,
		byType: make(map[ScopeType][]PermissionGrant),
	}
	for _, g := range grants {
		ug.byType[g.ScopeType] = append(ug.byType[g.ScopeType], g)
	}
	return ug
}

// HasScopeGrant reports whether any grant covers (scopeType, scopeID),
// treating a nil grant scope id as a wildcard for the type.
func (ug *UserGrants) HasScopeGrant(scopeType ScopeType, scopeID string) bool {
	for _, g := range ug.byType[scopeType] {
		if g.Covers(scopeID) {
			return true
		}
	}
	return false
}

// HasAnyGrant reports whether the user holds any grant of the given type,
// regardless of its scope id. Used for whole-family queries.
func (ug *UserGrants) HasAnyGrant(scopeType ScopeType) bool {
	return len(ug.byType[scopeType]) > 0
}

// HasAdminGrant reports whether a grant of the given type covers scopeID
// with a role in adminRoles.
func (ug *UserGrants) HasAdminGrant(scopeType ScopeType, scopeID string, adminRoles []string) bool {
	for _, g := range ug.byType[scopeType] {
		if !g.Covers(scopeID) {
			continue
		}
		for _, r := range adminRoles {
			if g.Role == r {
				return true
			}
		}
	}
	return false
}

// HasAdminRole reports whether the user holds any grant of the given type
// with a role in adminRoles, regardless of the grant's scope id. Used for
// the global levels, whose administrators govern the whole family.
func (ug *UserGrants) HasAdminRole(scopeType ScopeType, adminRoles []string) bool {
	for _, g := range ug.byType[scopeType] {
		for _, r := range adminRoles {
			if g.Role == r {
				return true
			}
		}
	}
	return false
}

// HasRoleGrantIn reports whether a grant of the given type and role names
// one of scopeIDs exactly. Wildcard grants do not count here: the
// super-authority marker must name a registered root scope id.
func (ug *UserGrants) HasRoleGrantIn(scopeType ScopeType, role string, scopeIDs []string) bool {
	for _, g := range ug.byType[scopeType] {
		if g.Role != role || g.ScopeID == nil {
			continue
		}
		for _, id := range scopeIDs {
			if *g.ScopeID == id {
				return true
			}
		}
	}
	return false
}

// IsEmpty returns true if the user has no grants at all.
func (ug *UserGrants) IsEmpty() bool {
	return len(ug.Grants) == 0
}
