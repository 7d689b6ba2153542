// Package fields converts untrusted wire tokens (record UUIDs, field keys,
// raw URN strings) into validated, tenant-scoped domain references, and
// renders references back to their stable wire shapes.
//
// The core abstraction is Reference, a resolver generic over the record type:
// it restricts visibility to the current tenant's active records, resolves a
// token to exactly one live record or fails with a precise validation error,
// and renders a record to its minimal {uuid, name} projection. ReferenceList
// composes a Reference with the list-size guard; URNField and KeyedField
// cover the two addressing schemes that are not UUID-based.
//
// All lookups go through the Catalog collaborator. Implementations live in
// internal/records/store; the interface is declared here, at the point of
// use.
package fields

import (
	"context"

	"github.com/google/uuid"

	"pulse/internal/records/models"
	"pulse/internal/tenancy"
)

//go:generate mockgen -source=fields.go -destination=mocks/mocks.go -package=mocks Catalog

// Catalog is the storage collaborator behind every reference lookup. Each
// method returns one record visible to the given tenant scope, or
// sentinel.ErrNotFound when no active, tenant-owned record matches; any other
// error is an infrastructure fault and is propagated verbatim.
//
// Two methods carry view restrictions beyond tenant and active state:
// GroupByUUID sees only user groups, LabelByUUID only labels proper.
// EventByUUID scopes through the parent campaign's tenant, since events have
// no tenant column of their own.
type Catalog interface {
	ContactByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Contact, error)
	GroupByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.ContactGroup, error)
	CampaignByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Campaign, error)
	EventByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.CampaignEvent, error)
	ChannelByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Channel, error)
	FlowByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Flow, error)
	LabelByUUID(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Label, error)
	FieldByKey(ctx context.Context, scope tenancy.Scope, key string) (*models.FieldDef, error)
}

// Record is the projection surface every UUID-addressed record exposes for
// rendering. Render performs no tenant check: holding a record implies it was
// legitimately obtained, through prior resolution or domain logic.
type Record interface {
	RecordUUID() uuid.UUID
	RecordName() string
}

// Ref is the stable wire shape of a resolved reference.
type Ref struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// FieldRef is the wire shape of a resolved field definition, which is
// addressed by business key rather than UUID.
type FieldRef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
