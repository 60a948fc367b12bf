package scopekit

// Traversal safety bounds. They guarantee termination when the tree
// invariants are violated (a cycle, an inconsistent level); exceeding one
// is not an error, the walk simply truncates. They are safety valves, not
// documented limits on legitimate tree size.
const (
	// DefaultMaxAncestorDepth bounds the upward walk.
	DefaultMaxAncestorDepth = 20

	// DefaultMaxDescendantNodes bounds the downward BFS.
	DefaultMaxDescendantNodes = 1000
)

// Config carries the tuning knobs of the engine. The zero value is not
// usable; build one through NewService options or DefaultConfig.
type Config struct {
	// RootScopeIDs are the registered root scope identifiers. A superadmin
	// rowiverse grant on any of them is the global bypass. More than one
	// root may legitimately be registered.
	RootScopeIDs []string

	// MaxAncestorDepth bounds AncestorsOf.
	MaxAncestorDepth int

	// MaxDescendantNodes bounds DescendantsOf.
	MaxDescendantNodes int

	// AdminRoles holds, per administrative level, the grant roles that
	// count as administration of that level.
	AdminRoles map[ScopeType][]string
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxAncestorDepth:   DefaultMaxAncestorDepth,
		MaxDescendantNodes: DefaultMaxDescendantNodes,
		AdminRoles: map[ScopeType][]string{
			ScopeRowiverse: {RoleSuperadmin, "admin"},
			ScopeSuperhub:  {RoleSuperadmin, "admin"},
			ScopeTenant:    {"owner", "admin"},
			ScopeHub:       {"owner", "admin"},
		},
	}
}

// Option configures a Service.
type Option func(*Config)

// WithRootScopeIDs registers the root scope identifiers recognized by the
// super-authority check.
func WithRootScopeIDs(ids ...string) Option {
	return func(c *Config) {
		c.RootScopeIDs = append(c.RootScopeIDs, ids...)
	}
}

// WithMaxAncestorDepth overrides the upward traversal bound.
func WithMaxAncestorDepth(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxAncestorDepth = n
		}
	}
}

// WithMaxDescendantNodes overrides the downward traversal bound.
func WithMaxDescendantNodes(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxDescendantNodes = n
		}
	}
}

// WithAdminRoles replaces the admin-role set for one administrative level.
func WithAdminRoles(level ScopeType, roles ...string) Option {
	return func(c *Config) {
		if c.AdminRoles == nil {
			c.AdminRoles = make(map[ScopeType][]string)
		}
		c.AdminRoles[level] = roles
	}
}

// adminRolesFor returns the admin-role set for a level, empty when the
// level has none configured.
func (c Config) adminRolesFor(level ScopeType) []string {
	return c.AdminRoles[level]
}
