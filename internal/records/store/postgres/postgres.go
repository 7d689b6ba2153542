// Package postgres provides the production Catalog implementation backed by
// PostgreSQL via database/sql and lib/pq.
//
// All lookup queries filter by tenant and active state in SQL, so a record
// belonging to another tenant and a record that does not exist are
// indistinguishable to callers, both reporting sentinel.ErrNotFound.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pulse/internal/records/models"
	"pulse/internal/tenancy"
	id "pulse/pkg/domain"
	"pulse/pkg/platform/sentinel"
)

//go:embed schema.sql
var schema string

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

// Catalog is a PostgreSQL-backed record catalog.
type Catalog struct {
	db *sql.DB
}

// NewCatalog constructs a catalog over db.
func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// EnsureSchema creates the record tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply records schema: %w", err)
	}
	return nil
}

func (c *Catalog) ContactByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Contact, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, name, is_active, created_at
		FROM contacts
		WHERE uuid = $1 AND tenant_id = $2 AND is_active`,
		u, uuid.UUID(scope.TenantID))

	var contact models.Contact
	var tenantID uuid.UUID
	err := row.Scan(&contact.UUID, &tenantID, &contact.Name, &contact.Active, &contact.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	contact.TenantID = id.TenantID(tenantID)
	return &contact, nil
}

// GroupByUUID sees only user groups.
func (c *Catalog) GroupByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.ContactGroup, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, name, group_type, is_active, created_at
		FROM contact_groups
		WHERE uuid = $1 AND tenant_id = $2 AND is_active AND group_type = 'user'`,
		u, uuid.UUID(scope.TenantID))

	var group models.ContactGroup
	var tenantID uuid.UUID
	err := row.Scan(&group.UUID, &tenantID, &group.Name, &group.Type, &group.Active, &group.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find contact group: %w", err)
	}
	group.TenantID = id.TenantID(tenantID)
	return &group, nil
}

func (c *Catalog) CampaignByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Campaign, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, name, is_active, created_at
		FROM campaigns
		WHERE uuid = $1 AND tenant_id = $2 AND is_active`,
		u, uuid.UUID(scope.TenantID))

	var campaign models.Campaign
	var tenantID uuid.UUID
	err := row.Scan(&campaign.UUID, &tenantID, &campaign.Name, &campaign.Active, &campaign.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	campaign.TenantID = id.TenantID(tenantID)
	return &campaign, nil
}

// EventByUUID joins through the parent campaign for tenant scoping.
func (c *Catalog) EventByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.CampaignEvent, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT e.uuid, e.campaign_uuid, e.name, e.is_active, e.created_at
		FROM campaign_events e
		JOIN campaigns c ON c.uuid = e.campaign_uuid
		WHERE e.uuid = $1 AND c.tenant_id = $2 AND e.is_active`,
		u, uuid.UUID(scope.TenantID))

	var event models.CampaignEvent
	err := row.Scan(&event.UUID, &event.CampaignUUID, &event.Name, &event.Active, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find campaign event: %w", err)
	}
	return &event, nil
}

func (c *Catalog) ChannelByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Channel, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, name, is_active, created_at
		FROM channels
		WHERE uuid = $1 AND tenant_id = $2 AND is_active`,
		u, uuid.UUID(scope.TenantID))

	var channel models.Channel
	var tenantID uuid.UUID
	err := row.Scan(&channel.UUID, &tenantID, &channel.Name, &channel.Active, &channel.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find channel: %w", err)
	}
	channel.TenantID = id.TenantID(tenantID)
	return &channel, nil
}

func (c *Catalog) FlowByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Flow, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, name, is_active, created_at
		FROM flows
		WHERE uuid = $1 AND tenant_id = $2 AND is_active`,
		u, uuid.UUID(scope.TenantID))

	var flow models.Flow
	var tenantID uuid.UUID
	err := row.Scan(&flow.UUID, &tenantID, &flow.Name, &flow.Active, &flow.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find flow: %w", err)
	}
	flow.TenantID = id.TenantID(tenantID)
	return &flow, nil
}

// LabelByUUID sees only labels proper.
func (c *Catalog) LabelByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Label, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, name, label_type, is_active, created_at
		FROM labels
		WHERE uuid = $1 AND tenant_id = $2 AND is_active AND label_type = 'label'`,
		u, uuid.UUID(scope.TenantID))

	var label models.Label
	var tenantID uuid.UUID
	err := row.Scan(&label.UUID, &tenantID, &label.Name, &label.Type, &label.Active, &label.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find label: %w", err)
	}
	label.TenantID = id.TenantID(tenantID)
	return &label, nil
}

func (c *Catalog) FieldByKey(ctx context.Context, scope tenancy.Scope, key string) (*models.FieldDef, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT uuid, tenant_id, key, label, is_active, created_at
		FROM field_defs
		WHERE key = $1 AND tenant_id = $2 AND is_active`,
		key, uuid.UUID(scope.TenantID))

	var def models.FieldDef
	var tenantID uuid.UUID
	err := row.Scan(&def.UUID, &tenantID, &def.Key, &def.Label, &def.Active, &def.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find field def: %w", err)
	}
	def.TenantID = id.TenantID(tenantID)
	return &def, nil
}

// isUniqueViolation reports whether err is a pq unique constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
