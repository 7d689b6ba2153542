package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
)

// Flow is an interactive message sequence contacts can be run through.
type Flow struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (f Flow) RecordUUID() uuid.UUID { return f.UUID }
func (f Flow) RecordName() string    { return f.Name }
func (f Flow) IsActive() bool        { return f.Active }
