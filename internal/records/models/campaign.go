package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
)

// Campaign schedules messages around a date field of its contacts.
type Campaign struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (c Campaign) RecordUUID() uuid.UUID { return c.UUID }
func (c Campaign) RecordName() string    { return c.Name }
func (c Campaign) IsActive() bool        { return c.Active }

// CampaignEvent is a single scheduled step within a campaign.
//
// Events carry no tenant column of their own; tenant ownership is derived
// from the parent campaign, and lookups must scope through it.
type CampaignEvent struct {
	UUID         uuid.UUID `json:"uuid"`
	CampaignUUID uuid.UUID `json:"campaign_uuid"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e CampaignEvent) RecordUUID() uuid.UUID { return e.UUID }
func (e CampaignEvent) RecordName() string    { return e.Name }
func (e CampaignEvent) IsActive() bool        { return e.Active }
