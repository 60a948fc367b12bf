package scopekit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Store is the narrow read surface the engine needs from the persistent
// records. The engine never writes through it; all four record families are
// owned and mutated by the administration surface.
//
// Not-found is not an error at this layer: lookups return nil (or false)
// for absent records and reserve the error return for infrastructure
// failures, which every caller propagates rather than folding into "no
// access".
type Store interface {
	// OrgUnitByID returns the organization unit, or nil when it doesn't
	// exist.
	OrgUnitByID(ctx context.Context, id string) (*OrgUnit, error)

	// OrgChildren returns the children of the given units whose own
	// inherit flag is true. Children with the flag false are invisible to
	// the downward walk entirely.
	OrgChildren(ctx context.Context, parentIDs []string) ([]OrgUnit, error)

	// OrgMembership returns the user's direct membership at an org unit,
	// or nil when there is none.
	OrgMembership(ctx context.Context, userID, orgID string) (*OrgMembership, error)

	// OrgMembershipsIn returns the user's direct memberships restricted to
	// the given org unit ids.
	OrgMembershipsIn(ctx context.Context, userID string, orgIDs []string) ([]OrgMembership, error)

	// OrgMembershipOrgIDs returns every org unit id where the user holds a
	// direct membership, any role.
	OrgMembershipOrgIDs(ctx context.Context, userID string) ([]string, error)

	// HasFlatMembership reports whether a flat membership row exists for
	// the exact scope id. Only the tenant, hub and community families are
	// flat; any other scope type is false.
	HasFlatMembership(ctx context.Context, scopeType ScopeType, userID, scopeID string) (bool, error)

	// GrantsFor returns every permission grant held by the user.
	GrantsFor(ctx context.Context, userID string) ([]PermissionGrant, error)

	// OrgUnits returns every organization unit. Used by the offline tree
	// invariant checker, not by request-time checks.
	OrgUnits(ctx context.Context) ([]OrgUnit, error)
}

// TransactionManager defines the transaction management interface.
type TransactionManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MigrationManager defines the migration management interface.
type MigrationManager interface {
	Migrations() []dbkit.Migration
}

// HealthMonitor defines the health monitoring interface.
type HealthMonitor interface {
	Health(ctx context.Context) dbkit.HealthStatus
	IsHealthy(ctx context.Context) bool
	Ping(ctx context.Context) error
	GetPoolStats() dbkit.PoolStats
}

// Authorizer is the inbound query surface the rest of the system consumes.
// Service implements it; callers that only decide access should depend on
// this interface rather than on the concrete Service.
type Authorizer interface {
	CanAccess(ctx context.Context, userID string, scopeType ScopeType, scopeID string) (bool, error)
	HasScope(ctx context.Context, userID string, scopeType ScopeType, scopeID string) (bool, error)
	IsAdmin(ctx context.Context, userID string, level ScopeType, contextID string) (bool, error)
	SuperAuthority(ctx context.Context, userID string) (bool, error)
	EffectiveRole(ctx context.Context, userID, orgID string) (OrgRole, error)
	HasOrgRole(ctx context.Context, userID, orgID string, required OrgRole) (bool, error)
	AccessibleOrgIDs(ctx context.Context, userID string) ([]string, error)
	AncestorsOf(ctx context.Context, orgID string) ([]string, error)
	DescendantsOf(ctx context.Context, orgID string) ([]string, error)
}
