package scopekit

import "fmt"

// ScopeType identifies one of the six access-control families. The set is
// closed: authorization questions are only answerable for these types, and
// an unknown type is rejected rather than silently denied.
type ScopeType string

const (
	// ScopeRowiverse is the platform root. Access at this level is held
	// only through permission grants, never through memberships.
	ScopeRowiverse ScopeType = "rowiverse"

	// ScopeSuperhub is the global aggregation layer directly under the
	// root. Like the root, it carries no membership table.
	ScopeSuperhub ScopeType = "superhub"

	// ScopeTenant is an isolated customer space with a flat membership
	// table.
	ScopeTenant ScopeType = "tenant"

	// ScopeHub is a collaboration space with a flat membership table.
	ScopeHub ScopeType = "hub"

	// ScopeOrganization is a node in the hierarchical org tree. It is the
	// only family whose access resolution walks a hierarchy.
	ScopeOrganization ScopeType = "organization"

	// ScopeCommunity is a public-facing space with a flat membership
	// table.
	ScopeCommunity ScopeType = "community"
)

// ScopeTypes lists every valid scope type.
var ScopeTypes = []ScopeType{
	ScopeRowiverse,
	ScopeSuperhub,
	ScopeTenant,
	ScopeHub,
	ScopeOrganization,
	ScopeCommunity,
}

// Valid reports whether t is one of the known scope types.
func (t ScopeType) Valid() bool {
	switch t {
	case ScopeRowiverse, ScopeSuperhub, ScopeTenant, ScopeHub, ScopeOrganization, ScopeCommunity:
		return true
	}
	return false
}

// AdminLevel reports whether t is an administrative level, i.e. a type
// IsAdmin accepts. Organizations answer role questions through
// EffectiveRole instead, and communities have no administrator concept.
func (t ScopeType) AdminLevel() bool {
	switch t {
	case ScopeRowiverse, ScopeSuperhub, ScopeTenant, ScopeHub:
		return true
	}
	return false
}

// Global reports whether administration of t is platform-wide. For global
// types IsAdmin ignores the context scope id.
func (t ScopeType) Global() bool {
	return t == ScopeRowiverse || t == ScopeSuperhub
}

// ParseScopeType converts a string to a ScopeType, rejecting unknown
// values.
func ParseScopeType(s string) (ScopeType, error) {
	t := ScopeType(s)
	if !t.Valid() {
		return "", NewError(ErrInvalidScope, fmt.Sprintf("unknown scope type %q", s))
	}
	return t, nil
}

// Scope is a (type, id) pair naming a concrete scope. An empty ID refers
// to the whole family rather than one instance.
type Scope struct {
	Type ScopeType
	ID   string
}

// NewScope creates a Scope.
func NewScope(scopeType ScopeType, scopeID string) Scope {
	return Scope{Type: scopeType, ID: scopeID}
}

// IsWildcard reports whether the scope refers to its whole family.
func (s Scope) IsWildcard() bool {
	return s.ID == ""
}

func (s Scope) String() string {
	if s.ID == "" {
		return string(s.Type)
	}
	return fmt.Sprintf("%s:%s", s.Type, s.ID)
}
