package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
)

// Channel is a messaging endpoint (phone line, social account) a tenant
// sends and receives through.
type Channel struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (c Channel) RecordUUID() uuid.UUID { return c.UUID }
func (c Channel) RecordName() string    { return c.Name }
func (c Channel) IsActive() bool        { return c.Active }
