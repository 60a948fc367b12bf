// Package scopekit is a hierarchical scoped authorization engine: it
// decides whether a principal may act within an administrative scope and,
// for organization-tree scopes, what role the principal effectively holds
// after permission inheritance is resolved.
//
// # Core Concepts
//
// Scope: a (type, id) pair identifying a unit of administration. The six
// families are closed: rowiverse, superhub, tenant, hub, organization and
// community. Tenant, hub and community are flat: membership is binary per
// exact id. Organization is a tree with permission inheritance.
//
// Grant: a direct permission record binding a user to a role at a scope,
// independent of the membership tables. A grant with no scope id covers
// every scope of its type.
//
// Inheritance: each organization unit owns an inherit flag meaning "this
// unit accepts authority flowing down from its ancestors". A unit that
// opts out blocks everything above it from reaching anything below it;
// the ancestor walk is a contiguous prefix, not a per-unit decision.
//
// Super-authority: a superadmin rowiverse grant on a registered root scope
// id. It satisfies every check unconditionally and is evaluated first
// everywhere.
//
// # Query Surface
//
// CanAccess is the one entry point the rest of a system calls; it composes
// SuperAuthority, IsAdmin and HasScope in that order. The finer-grained
// predicates (EffectiveRole, HasOrgRole, AccessibleOrgIDs, AncestorsOf,
// DescendantsOf) are exported for callers that need roles or reachable
// sets rather than a yes/no.
//
// Every check is a pure read of the store's current contents: no caching
// across requests, no locking, no side effects. Store failures propagate
// as errors and are never folded into "access denied".
//
// # Basic Usage
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := scopekit.NewService(db,
//	    scopekit.WithRootScopeIDs("rowiverse-root"),
//	)
//
//	// Run migrations
//	db.Migrate(ctx, scopekit.NewMigrationService(service).Migrations())
//
//	// The one call sites usually need:
//	ok, err := service.CanAccess(ctx, userID, scopekit.ScopeHub, hubID)
//
//	// Organization-tree questions:
//	role, err := service.EffectiveRole(ctx, userID, orgID)
//	ok, err = service.HasOrgRole(ctx, userID, orgID, scopekit.RoleManager)
//	orgIDs, err := service.AccessibleOrgIDs(ctx, userID)
//
// # Middleware Usage
//
//	mw := scopekit.NewMiddleware(service)
//
//	router.Handle("/hubs/{hubID}/members",
//	    mw.RequireAccess(scopekit.ScopeFromParam(scopekit.ScopeHub, "hubID"))(membersHandler))
//
//	router.Handle("/tenants/{tenantID}/settings",
//	    mw.RequireAdmin(scopekit.ScopeFromParam(scopekit.ScopeTenant, "tenantID"))(settingsHandler))
//
// # Administration Surface
//
// Memberships and grants are written through the Service's administration
// methods (AssignOrgMembership, AssignFlatMembership, CreateGrant and
// their revoke counterparts); the query surface never mutates anything.
// Writes authorize the acting user from context via the same engine.
package scopekit
