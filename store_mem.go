package scopekit

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store. It backs the engine's unit tests and
// is useful for embedding scopekit without a database, e.g. in local
// tooling. Seed it through the Put/Remove methods; the engine itself only
// reads.
//
// All methods are safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	units       map[string]OrgUnit
	memberships map[string]map[string]OrgMembership // orgID -> userID -> membership
	flat        map[ScopeType]map[string]map[string]string
	grants      map[string][]PermissionGrant // userID -> grants
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		units:       make(map[string]OrgUnit),
		memberships: make(map[string]map[string]OrgMembership),
		flat:        make(map[ScopeType]map[string]map[string]string),
		grants:      make(map[string][]PermissionGrant),
	}
}

// PutOrgUnit inserts or replaces an organization unit. A missing id is
// generated.
func (m *MemoryStore) PutOrgUnit(unit OrgUnit) OrgUnit {
	m.mu.Lock()
	defer m.mu.Unlock()
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}
	m.units[unit.ID] = unit
	return unit
}

// PutOrgMembership inserts or replaces a user's membership at an org unit.
func (m *MemoryStore) PutOrgMembership(orgID, userID string, role OrgRole) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.memberships[orgID] == nil {
		m.memberships[orgID] = make(map[string]OrgMembership)
	}
	m.memberships[orgID][userID] = OrgMembership{
		ID:     uuid.NewString(),
		OrgID:  orgID,
		UserID: userID,
		Role:   role,
	}
}

// RemoveOrgMembership deletes a user's membership at an org unit.
func (m *MemoryStore) RemoveOrgMembership(orgID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.memberships[orgID], userID)
}

// PutFlatMembership inserts a flat membership row.
func (m *MemoryStore) PutFlatMembership(scopeType ScopeType, scopeID, userID, accessLevel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flat[scopeType] == nil {
		m.flat[scopeType] = make(map[string]map[string]string)
	}
	if m.flat[scopeType][scopeID] == nil {
		m.flat[scopeType][scopeID] = make(map[string]string)
	}
	m.flat[scopeType][scopeID][userID] = accessLevel
}

// RemoveFlatMembership deletes a flat membership row.
func (m *MemoryStore) RemoveFlatMembership(scopeType ScopeType, scopeID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if byScope, ok := m.flat[scopeType]; ok {
		delete(byScope[scopeID], userID)
	}
}

// PutGrant appends a permission grant for a user. A missing id is
// generated.
func (m *MemoryStore) PutGrant(grant PermissionGrant) PermissionGrant {
	m.mu.Lock()
	defer m.mu.Unlock()
	if grant.ID == "" {
		grant.ID = uuid.NewString()
	}
	m.grants[grant.UserID] = append(m.grants[grant.UserID], grant)
	return grant
}

// RemoveGrant deletes a grant by id.
func (m *MemoryStore) RemoveGrant(userID, grantID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	grants := m.grants[userID]
	for i, g := range grants {
		if g.ID == grantID {
			m.grants[userID] = append(grants[:i], grants[i+1:]...)
			return
		}
	}
}

func (m *MemoryStore) OrgUnitByID(ctx context.Context, id string) (*OrgUnit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	unit, ok := m.units[id]
	if !ok {
		return nil, nil
	}
	return &unit, nil
}

func (m *MemoryStore) OrgChildren(ctx context.Context, parentIDs []string) ([]OrgUnit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	parents := make(map[string]bool, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = true
	}
	var children []OrgUnit
	for _, unit := range m.units {
		if unit.ParentID != nil && parents[*unit.ParentID] && unit.InheritPermissions {
			children = append(children, unit)
		}
	}
	return children, nil
}

func (m *MemoryStore) OrgMembership(ctx context.Context, userID, orgID string) (*OrgMembership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	membership, ok := m.memberships[orgID][userID]
	if !ok {
		return nil, nil
	}
	return &membership, nil
}

func (m *MemoryStore) OrgMembershipsIn(ctx context.Context, userID string, orgIDs []string) ([]OrgMembership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var memberships []OrgMembership
	for _, orgID := range orgIDs {
		if membership, ok := m.memberships[orgID][userID]; ok {
			memberships = append(memberships, membership)
		}
	}
	return memberships, nil
}

func (m *MemoryStore) OrgMembershipOrgIDs(ctx context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var orgIDs []string
	for orgID, byUser := range m.memberships {
		if _, ok := byUser[userID]; ok {
			orgIDs = append(orgIDs, orgID)
		}
	}
	return orgIDs, nil
}

func (m *MemoryStore) HasFlatMembership(ctx context.Context, scopeType ScopeType, userID, scopeID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.flat[scopeType][scopeID][userID]
	return ok, nil
}

func (m *MemoryStore) GrantsFor(ctx context.Context, userID string) ([]PermissionGrant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	grants := make([]PermissionGrant, len(m.grants[userID]))
	copy(grants, m.grants[userID])
	return grants, nil
}

func (m *MemoryStore) OrgUnits(ctx context.Context) ([]OrgUnit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	units := make([]OrgUnit, 0, len(m.units))
	for _, unit := range m.units {
		units = append(units, unit)
	}
	return units, nil
}
