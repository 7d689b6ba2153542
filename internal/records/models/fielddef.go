package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
)

// FieldDef defines a custom contact attribute, e.g. key "age", label "Age".
//
// Unlike the other records, field definitions are addressed by their business
// key rather than by UUID; the key is unique per tenant and stable across
// renames of the label.
type FieldDef struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Key       string      `json:"key"`
	Label     string      `json:"label"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (f FieldDef) IsActive() bool { return f.Active }
