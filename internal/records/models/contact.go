// Package models defines the domain records that field-level resolution
// operates on.
//
// Every record is owned by exactly one tenant and carries an Active flag;
// inactive records are soft-deleted and invisible to resolution. Records are
// read-only from the field layer's perspective: this module looks records up
// and renders them, it never creates or destroys them.
package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
	"pulse/pkg/urns"
)

// Contact is a person reachable over one or more URN addresses.
type Contact struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	URNs      []urns.URN  `json:"urns,omitempty"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (c Contact) RecordUUID() uuid.UUID { return c.UUID }
func (c Contact) RecordName() string    { return c.Name }
func (c Contact) IsActive() bool        { return c.Active }
