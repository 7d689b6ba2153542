// Package memory provides an in-memory Catalog implementation. It is the
// reference implementation for unit tests and local development; postgres is
// the production store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"pulse/internal/records/models"
	"pulse/internal/tenancy"
	id "pulse/pkg/domain"
	"pulse/pkg/platform/sentinel"
)

// Catalog holds all record collections behind a single RWMutex. Lookups
// return copies so callers can never mutate stored state.
//
// Every lookup fails closed: a zero tenant scope matches no records.
type Catalog struct {
	mu        sync.RWMutex
	contacts  map[uuid.UUID]models.Contact
	groups    map[uuid.UUID]models.ContactGroup
	fields    map[uuid.UUID]models.FieldDef
	campaigns map[uuid.UUID]models.Campaign
	events    map[uuid.UUID]models.CampaignEvent
	channels  map[uuid.UUID]models.Channel
	flows     map[uuid.UUID]models.Flow
	labels    map[uuid.UUID]models.Label
}

// NewCatalog constructs an empty in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		contacts:  make(map[uuid.UUID]models.Contact),
		groups:    make(map[uuid.UUID]models.ContactGroup),
		fields:    make(map[uuid.UUID]models.FieldDef),
		campaigns: make(map[uuid.UUID]models.Campaign),
		events:    make(map[uuid.UUID]models.CampaignEvent),
		channels:  make(map[uuid.UUID]models.Channel),
		flows:     make(map[uuid.UUID]models.Flow),
		labels:    make(map[uuid.UUID]models.Label),
	}
}

func visible(scope tenancy.Scope, owner id.TenantID, active bool) bool {
	return !scope.IsZero() && scope.TenantID == owner && active
}

// AddContact stores a contact.
func (c *Catalog) AddContact(contact models.Contact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contacts[contact.UUID] = contact
}

// AddGroup stores a contact group.
func (c *Catalog) AddGroup(group models.ContactGroup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups[group.UUID] = group
}

// AddFieldDef stores a field definition.
func (c *Catalog) AddFieldDef(def models.FieldDef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields[def.UUID] = def
}

// AddCampaign stores a campaign.
func (c *Catalog) AddCampaign(campaign models.Campaign) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.campaigns[campaign.UUID] = campaign
}

// AddEvent stores a campaign event.
func (c *Catalog) AddEvent(event models.CampaignEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[event.UUID] = event
}

// AddChannel stores a channel.
func (c *Catalog) AddChannel(channel models.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[channel.UUID] = channel
}

// AddFlow stores a flow.
func (c *Catalog) AddFlow(flow models.Flow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flows[flow.UUID] = flow
}

// AddLabel stores a label.
func (c *Catalog) AddLabel(label models.Label) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels[label.UUID] = label
}

func (c *Catalog) ContactByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Contact, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	contact, ok := c.contacts[u]
	if !ok || !visible(scope, contact.TenantID, contact.Active) {
		return nil, sentinel.ErrNotFound
	}
	return &contact, nil
}

// GroupByUUID sees only user groups; system status groups share the
// collection but never resolve.
func (c *Catalog) GroupByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.ContactGroup, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	group, ok := c.groups[u]
	if !ok || !group.IsUserGroup() || !visible(scope, group.TenantID, group.Active) {
		return nil, sentinel.ErrNotFound
	}
	return &group, nil
}

func (c *Catalog) CampaignByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Campaign, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	campaign, ok := c.campaigns[u]
	if !ok || !visible(scope, campaign.TenantID, campaign.Active) {
		return nil, sentinel.ErrNotFound
	}
	return &campaign, nil
}

// EventByUUID scopes through the parent campaign's tenant; events carry no
// tenant of their own.
func (c *Catalog) EventByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.CampaignEvent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	event, ok := c.events[u]
	if !ok || !event.Active {
		return nil, sentinel.ErrNotFound
	}
	parent, ok := c.campaigns[event.CampaignUUID]
	if !ok || !visible(scope, parent.TenantID, true) {
		return nil, sentinel.ErrNotFound
	}
	return &event, nil
}

func (c *Catalog) ChannelByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	channel, ok := c.channels[u]
	if !ok || !visible(scope, channel.TenantID, channel.Active) {
		return nil, sentinel.ErrNotFound
	}
	return &channel, nil
}

func (c *Catalog) FlowByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Flow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flow, ok := c.flows[u]
	if !ok || !visible(scope, flow.TenantID, flow.Active) {
		return nil, sentinel.ErrNotFound
	}
	return &flow, nil
}

// LabelByUUID sees only labels proper; folders share the collection but
// never resolve.
func (c *Catalog) LabelByUUID(_ context.Context, scope tenancy.Scope, u uuid.UUID) (*models.Label, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	label, ok := c.labels[u]
	if !ok || !label.IsLabel() || !visible(scope, label.TenantID, label.Active) {
		return nil, sentinel.ErrNotFound
	}
	return &label, nil
}

// FieldByKey looks a field definition up by exact key match within the
// tenant's active definitions.
func (c *Catalog) FieldByKey(_ context.Context, scope tenancy.Scope, key string) (*models.FieldDef, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if scope.IsZero() {
		return nil, sentinel.ErrNotFound
	}
	for _, def := range c.fields {
		if def.Key == key && visible(scope, def.TenantID, def.Active) {
			return &def, nil
		}
	}
	return nil, sentinel.ErrNotFound
}
