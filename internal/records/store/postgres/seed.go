package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pulse/internal/records/models"
	"pulse/pkg/platform/sentinel"
)

// Insert helpers. Record lifecycle belongs to the surrounding system, not to
// field resolution; these exist so integration tests and local tooling can
// seed the catalog without reaching around the store.

func (c *Catalog) InsertContact(ctx context.Context, contact models.Contact) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO contacts (uuid, tenant_id, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		contact.UUID, uuid.UUID(contact.TenantID), contact.Name, contact.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (c *Catalog) InsertGroup(ctx context.Context, group models.ContactGroup) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO contact_groups (uuid, tenant_id, name, group_type, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		group.UUID, uuid.UUID(group.TenantID), group.Name, string(group.Type), group.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert contact group: %w", err)
	}
	return nil
}

func (c *Catalog) InsertFieldDef(ctx context.Context, def models.FieldDef) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO field_defs (uuid, tenant_id, key, label, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		def.UUID, uuid.UUID(def.TenantID), def.Key, def.Label, def.Active)
	if err != nil {
		// key is unique per tenant
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert field def: %w", err)
	}
	return nil
}

func (c *Catalog) InsertCampaign(ctx context.Context, campaign models.Campaign) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO campaigns (uuid, tenant_id, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		campaign.UUID, uuid.UUID(campaign.TenantID), campaign.Name, campaign.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (c *Catalog) InsertEvent(ctx context.Context, event models.CampaignEvent) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO campaign_events (uuid, campaign_uuid, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		event.UUID, event.CampaignUUID, event.Name, event.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert campaign event: %w", err)
	}
	return nil
}

func (c *Catalog) InsertChannel(ctx context.Context, channel models.Channel) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO channels (uuid, tenant_id, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		channel.UUID, uuid.UUID(channel.TenantID), channel.Name, channel.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert channel: %w", err)
	}
	return nil
}

func (c *Catalog) InsertFlow(ctx context.Context, flow models.Flow) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO flows (uuid, tenant_id, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		flow.UUID, uuid.UUID(flow.TenantID), flow.Name, flow.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert flow: %w", err)
	}
	return nil
}

func (c *Catalog) InsertLabel(ctx context.Context, label models.Label) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO labels (uuid, tenant_id, name, label_type, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		label.UUID, uuid.UUID(label.TenantID), label.Name, string(label.Type), label.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert label: %w", err)
	}
	return nil
}

// DeactivateFieldDef soft-deletes a field definition. Exposed for the
// write path that owns field lifecycle; resolution never calls it.
func (c *Catalog) DeactivateFieldDef(ctx context.Context, tenantID uuid.UUID, key string) error {
	res, err := c.db.ExecContext(ctx, `
		UPDATE field_defs SET is_active = FALSE
		WHERE tenant_id = $1 AND key = $2`,
		tenantID, key)
	if err != nil {
		return fmt.Errorf("deactivate field def: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate field def: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
