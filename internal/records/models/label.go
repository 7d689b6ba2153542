package models

import (
	"time"

	"github.com/google/uuid"

	id "pulse/pkg/domain"
)

// LabelType distinguishes labels proper from the folders used to organize
// them in listing UIs.
type LabelType string

const (
	LabelTypeLabel  LabelType = "label"
	LabelTypeFolder LabelType = "folder"
)

// Label tags messages for later retrieval.
//
// Folders share the table but are organizational only; they never resolve
// as references.
type Label struct {
	UUID      uuid.UUID   `json:"uuid"`
	TenantID  id.TenantID `json:"tenant_id"`
	Name      string      `json:"name"`
	Type      LabelType   `json:"type"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func (l Label) RecordUUID() uuid.UUID { return l.UUID }
func (l Label) RecordName() string    { return l.Name }
func (l Label) IsActive() bool        { return l.Active }

// IsLabel reports whether the record is a label proper rather than a folder.
func (l Label) IsLabel() bool { return l.Type == LabelTypeLabel }
