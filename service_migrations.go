package scopekit

import (
	"github.com/fernandezvara/dbkit"
)

// MigrationService provides migration management functionality as an extension to Service
type MigrationService struct {
	*Service
}

// NewMigrationService creates a new migration service extension
func NewMigrationService(service *Service) *MigrationService {
	return &MigrationService{Service: service}
}

// Migrations returns all database migrations required for scopekit.
// Use db.Migrate(ctx, service.Migrations()) to run migrations.
func (ms *MigrationService) Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "scopekit-001",
			Description: "Create org_units table",
			SQL: `
                CREATE TABLE IF NOT EXISTS org_units (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    name TEXT NOT NULL,
                    slug TEXT NOT NULL UNIQUE,
                    level INTEGER NOT NULL,
                    unit_type TEXT,
                    parent_id UUID REFERENCES org_units(id),
                    inherit_permissions BOOLEAN NOT NULL DEFAULT TRUE,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
                );
                CREATE INDEX IF NOT EXISTS idx_org_units_parent ON org_units(parent_id)`,
		},
		{
			ID:          "scopekit-002",
			Description: "Create org_memberships table",
			SQL: `
                CREATE TABLE IF NOT EXISTS org_memberships (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    org_id UUID NOT NULL REFERENCES org_units(id),
                    user_id TEXT NOT NULL,
                    role TEXT NOT NULL,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    UNIQUE (org_id, user_id)
                );
                CREATE INDEX IF NOT EXISTS idx_org_memberships_user ON org_memberships(user_id)`,
		},
		{
			ID:          "scopekit-003",
			Description: "Create tenant_memberships table",
			SQL: `
                CREATE TABLE IF NOT EXISTS tenant_memberships (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    tenant_id TEXT NOT NULL,
                    user_id TEXT NOT NULL,
                    access_level TEXT NOT NULL,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    UNIQUE (tenant_id, user_id)
                )`,
		},
		{
			ID:          "scopekit-004",
			Description: "Create hub_memberships table",
			SQL: `
                CREATE TABLE IF NOT EXISTS hub_memberships (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    hub_id TEXT NOT NULL,
                    user_id TEXT NOT NULL,
                    access_level TEXT NOT NULL,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    UNIQUE (hub_id, user_id)
                )`,
		},
		{
			ID:          "scopekit-005",
			Description: "Create community_memberships table",
			SQL: `
                CREATE TABLE IF NOT EXISTS community_memberships (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    community_id TEXT NOT NULL,
                    user_id TEXT NOT NULL,
                    access_level TEXT NOT NULL,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    UNIQUE (community_id, user_id)
                )`,
		},
		{
			ID:          "scopekit-006",
			Description: "Create permission_grants table",
			SQL: `
                CREATE TABLE IF NOT EXISTS permission_grants (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    user_id TEXT NOT NULL,
                    scope_type TEXT NOT NULL,
                    role TEXT NOT NULL,
                    scope_id TEXT,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
                );
                CREATE INDEX IF NOT EXISTS idx_permission_grants_user ON permission_grants(user_id)`,
		},
	}
}
