package fields

import (
	"pulse/internal/records/models"
)

// Per-entity resolver constructors. Each binds the Catalog method that
// carries that entity's scoping rules, so quirks like the group and label
// view restrictions or the event's parent-campaign scoping stay in the
// Catalog implementation as data, not as resolver subtypes.

// NewContactField resolves contacts by UUID.
func NewContactField(catalog Catalog, opts ...Option) *Reference[*models.Contact] {
	return NewReference("contact", catalog.ContactByUUID, opts...)
}

// NewGroupField resolves user-defined contact groups by UUID. System status
// groups never resolve.
func NewGroupField(catalog Catalog, opts ...Option) *Reference[*models.ContactGroup] {
	return NewReference("contact group", catalog.GroupByUUID, opts...)
}

// NewCampaignField resolves campaigns by UUID.
func NewCampaignField(catalog Catalog, opts ...Option) *Reference[*models.Campaign] {
	return NewReference("campaign", catalog.CampaignByUUID, opts...)
}

// NewEventField resolves campaign events by UUID, tenant-scoped through the
// parent campaign.
func NewEventField(catalog Catalog, opts ...Option) *Reference[*models.CampaignEvent] {
	return NewReference("campaign event", catalog.EventByUUID, opts...)
}

// NewChannelField resolves channels by UUID.
func NewChannelField(catalog Catalog, opts ...Option) *Reference[*models.Channel] {
	return NewReference("channel", catalog.ChannelByUUID, opts...)
}

// NewFlowField resolves flows by UUID.
func NewFlowField(catalog Catalog, opts ...Option) *Reference[*models.Flow] {
	return NewReference("flow", catalog.FlowByUUID, opts...)
}

// NewLabelField resolves labels by UUID. Folders never resolve.
func NewLabelField(catalog Catalog, opts ...Option) *Reference[*models.Label] {
	return NewReference("label", catalog.LabelByUUID, opts...)
}
