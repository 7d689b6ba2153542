package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
)

// GroupType distinguishes user-created groups from the system status groups
// every tenant is provisioned with.
type GroupType string

const (
	GroupTypeUser   GroupType = "user"
	GroupTypeSystem GroupType = "system"
)

// ContactGroup is a named set of contacts.
//
// Only user groups are addressable by clients; system status groups exist in
// the same table but never resolve, regardless of tenant or active state.
type ContactGroup struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	Type      GroupType   `json:"type"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (g ContactGroup) RecordUUID() uuid.UUID { return g.UUID }
func (g ContactGroup) RecordName() string    { return g.Name }
func (g ContactGroup) IsActive() bool        { return g.Active }

// IsUserGroup reports whether the group is client-addressable.
func (g ContactGroup) IsUserGroup() bool { return g.Type == GroupTypeUser }
