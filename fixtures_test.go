package scopekit

import "context"

// The canonical fixture tree:
//
//	World (W, root, inherit)
//	└── Region (R, inherit)
//	    └── Country (M, inherit)
//	        └── Team (T, opts out)
//	            └── Client (C, inherit)
//
// User "u-admin" holds a direct ADMIN membership at R.
type treeFixture struct {
	store   *MemoryStore
	service *Service

	W, R, M, T, C string
	admin         string
}

func newTreeFixture(opts ...Option) *treeFixture {
	store := NewMemoryStore()

	parent := func(id string) *string { return &id }

	store.PutOrgUnit(OrgUnit{ID: "W", Name: "World", Slug: "world", Level: 0, UnitType: "world", InheritPermissions: true})
	store.PutOrgUnit(OrgUnit{ID: "R", Name: "Region", Slug: "region", Level: 1, UnitType: "region", ParentID: parent("W"), InheritPermissions: true})
	store.PutOrgUnit(OrgUnit{ID: "M", Name: "Country", Slug: "country", Level: 2, UnitType: "country", ParentID: parent("R"), InheritPermissions: true})
	store.PutOrgUnit(OrgUnit{ID: "T", Name: "Team", Slug: "team", Level: 3, UnitType: "team", ParentID: parent("M"), InheritPermissions: false})
	store.PutOrgUnit(OrgUnit{ID: "C", Name: "Client", Slug: "client", Level: 4, UnitType: "client", ParentID: parent("T"), InheritPermissions: true})

	store.PutOrgMembership("R", "u-admin", RoleAdmin)

	opts = append([]Option{WithRootScopeIDs(TestRootScopeID)}, opts...)
	return &treeFixture{
		store:   store,
		service: NewServiceWithStore(store, opts...),
		W:       "W", R: "R", M: "M", T: "T", C: "C",
		admin: "u-admin",
	}
}

func (f *treeFixture) grantSuper(userID string) {
	root := TestRootScopeID
	f.store.PutGrant(PermissionGrant{
		UserID:    userID,
		ScopeType: ScopeRowiverse,
		Role:      RoleSuperadmin,
		ScopeID:   &root,
	})
}

func strPtr(s string) *string { return &s }

var testCtx = context.Background()
