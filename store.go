package scopekit

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fernandezvara/dbkit"
)

// dbStore is the dbkit-backed Store used by services created with
// NewService. One method is one query; the tree walks above it issue one
// call per hop, bounded by the traversal limits in Config.
type dbStore struct {
	db dbkit.IDB
}

var _ Store = (*dbStore)(nil)

func (st *dbStore) OrgUnitByID(ctx context.Context, id string) (*OrgUnit, error) {
	var unit OrgUnit
	err := dbkit.WithErr1(st.db.NewSelect().Model(&unit).Where("id = ?", id).Limit(1).Scan(ctx), "OrgUnitByID").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

func (st *dbStore) OrgChildren(ctx context.Context, parentIDs []string) ([]OrgUnit, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var units []OrgUnit
	err := dbkit.WithErr1(st.db.NewSelect().Model(&units).
		Where("parent_id IN (?)", bun.In(parentIDs)).
		Where("inherit_permissions = TRUE").
		Scan(ctx), "OrgChildren").Err()
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (st *dbStore) OrgMembership(ctx context.Context, userID, orgID string) (*OrgMembership, error) {
	var membership OrgMembership
	err := dbkit.WithErr1(st.db.NewSelect().Model(&membership).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Limit(1).Scan(ctx), "OrgMembership").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (st *dbStore) OrgMembershipsIn(ctx context.Context, userID string, orgIDs []string) ([]OrgMembership, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	var memberships []OrgMembership
	err := dbkit.WithErr1(st.db.NewSelect().Model(&memberships).
		Where("user_id = ? AND org_id IN (?)", userID, bun.In(orgIDs)).
		Scan(ctx), "OrgMembershipsIn").Err()
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

func (st *dbStore) OrgMembershipOrgIDs(ctx context.Context, userID string) ([]string, error) {
	var orgIDs []string
	err := dbkit.WithErr1(st.db.NewRaw("SELECT org_id FROM org_memberships WHERE user_id = ?", userID).Scan(ctx, &orgIDs), "OrgMembershipOrgIDs").Err()
	if err != nil {
		if dbkit.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return orgIDs, nil
}

func (st *dbStore) HasFlatMembership(ctx context.Context, scopeType ScopeType, userID, scopeID string) (bool, error) {
	switch scopeType {
	case ScopeTenant:
		return dbkit.Exists[TenantMembership](ctx, st.db, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("user_id = ? AND tenant_id = ?", userID, scopeID)
		})
	case ScopeHub:
		return dbkit.Exists[HubMembership](ctx, st.db, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("user_id = ? AND hub_id = ?", userID, scopeID)
		})
	case ScopeCommunity:
		return dbkit.Exists[CommunityMembership](ctx, st.db, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("user_id = ? AND community_id = ?", userID, scopeID)
		})
	case ScopeRowiverse, ScopeSuperhub, ScopeOrganization:
		// No flat membership table exists for these families.
		return false, nil
	}
	return false, nil
}

func (st *dbStore) GrantsFor(ctx context.Context, userID string) ([]PermissionGrant, error) {
	var grants []PermissionGrant
	err := dbkit.WithErr1(st.db.NewSelect().Model(&grants).Where("user_id = ?", userID).Scan(ctx), "GrantsFor").Err()
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func (st *dbStore) OrgUnits(ctx context.Context) ([]OrgUnit, error) {
	var units []OrgUnit
	err := dbkit.WithErr1(st.db.NewSelect().Model(&units).Scan(ctx), "OrgUnits").Err()
	if err != nil {
		return nil, err
	}
	return units, nil
}
