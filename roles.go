package scopekit

import "fmt"

// OrgRole is a role held at an organization unit. Roles are totally
// ordered; a higher role implies every capability of the roles below it.
type OrgRole string

const (
	RoleOwner   OrgRole = "OWNER"
	RoleAdmin   OrgRole = "ADMIN"
	RoleManager OrgRole = "MANAGER"
	RoleCoach   OrgRole = "COACH"
	RoleMember  OrgRole = "MEMBER"
	RoleViewer  OrgRole = "VIEWER"

	// RoleNone is the absence of a role. It satisfies no requirement,
	// including a requirement of itself.
	RoleNone OrgRole = ""
)

// RoleSuperadmin is the grant role that, attached to a rowiverse grant
// naming a registered root scope, confers super-authority. It is not an
// org role and never appears in org memberships.
const RoleSuperadmin = "superadmin"

var orgRoleRanks = map[OrgRole]int{
	RoleOwner:   60,
	RoleAdmin:   50,
	RoleManager: 40,
	RoleCoach:   30,
	RoleMember:  20,
	RoleViewer:  10,
}

// Rank returns the role's position in the total order. Unknown roles and
// RoleNone rank zero.
func (r OrgRole) Rank() int {
	return orgRoleRanks[r]
}

// Valid reports whether r is one of the six org roles.
func (r OrgRole) Valid() bool {
	_, ok := orgRoleRanks[r]
	return ok
}

// AtLeast reports whether r meets or exceeds required. RoleNone never
// satisfies a requirement.
func (r OrgRole) AtLeast(required OrgRole) bool {
	if r == RoleNone {
		return false
	}
	return r.Rank() >= required.Rank()
}

// ParseOrgRole converts a string to an OrgRole, rejecting unknown values.
func ParseOrgRole(s string) (OrgRole, error) {
	r := OrgRole(s)
	if !r.Valid() {
		return RoleNone, NewError(ErrInvalidRole, fmt.Sprintf("unknown org role %q", s))
	}
	return r, nil
}

// MaxOrgRole returns the highest-ranked role in roles, or RoleNone when
// the slice is empty.
func MaxOrgRole(roles []OrgRole) OrgRole {
	best := RoleNone
	for _, r := range roles {
		if r.Rank() > best.Rank() {
			best = r
		}
	}
	return best
}
