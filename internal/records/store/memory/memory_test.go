package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"pulse/internal/records/models"
	"pulse/internal/tenancy"
	id "pulse/pkg/domain"
	"pulse/pkg/platform/sentinel"
)

type MemoryCatalogSuite struct {
	suite.Suite
	catalog *Catalog
	ctx     context.Context
	scope   tenancy.Scope
}

func TestMemoryCatalogSuite(t *testing.T) {
	suite.Run(t, new(MemoryCatalogSuite))
}

func (s *MemoryCatalogSuite) SetupTest() {
	s.catalog = NewCatalog()
	s.ctx = context.Background()
	s.scope = tenancy.Scope{TenantID: id.NewTenantID()}
}

func (s *MemoryCatalogSuite) TestLookupsReturnSentinelNotFound() {
	u := uuid.New()

	_, err := s.catalog.ContactByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.GroupByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.CampaignByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.EventByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.ChannelByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.FlowByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.LabelByUUID(s.ctx, s.scope, u)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.catalog.FieldByKey(s.ctx, s.scope, "age")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryCatalogSuite) TestLookupsReturnCopies() {
	channel := models.Channel{UUID: uuid.New(), TenantID: s.scope.TenantID, Name: "SMS Line", Active: true}
	s.catalog.AddChannel(channel)

	first, err := s.catalog.ChannelByUUID(s.ctx, s.scope, channel.UUID)
	s.Require().NoError(err)
	first.Name = "mutated"

	second, err := s.catalog.ChannelByUUID(s.ctx, s.scope, channel.UUID)
	s.Require().NoError(err)
	s.Equal("SMS Line", second.Name, "stored state must not observe caller mutation")
}

func (s *MemoryCatalogSuite) TestVisibilityRules() {
	s.Run("inactive records are invisible", func() {
		flow := models.Flow{UUID: uuid.New(), TenantID: s.scope.TenantID, Name: "Old", Active: false}
		s.catalog.AddFlow(flow)

		_, err := s.catalog.FlowByUUID(s.ctx, s.scope, flow.UUID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("other tenants' records are invisible", func() {
		flow := models.Flow{UUID: uuid.New(), TenantID: id.NewTenantID(), Name: "Foreign", Active: true}
		s.catalog.AddFlow(flow)

		_, err := s.catalog.FlowByUUID(s.ctx, s.scope, flow.UUID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("zero scope matches nothing", func() {
		flow := models.Flow{UUID: uuid.New(), TenantID: s.scope.TenantID, Name: "Mine", Active: true}
		s.catalog.AddFlow(flow)

		_, err := s.catalog.FlowByUUID(s.ctx, tenancy.Scope{}, flow.UUID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryCatalogSuite) TestFieldByKey() {
	def := models.FieldDef{UUID: uuid.New(), TenantID: s.scope.TenantID, Key: "age", Label: "Age", Active: true}
	s.catalog.AddFieldDef(def)

	s.Run("matches exact key only", func() {
		found, err := s.catalog.FieldByKey(s.ctx, s.scope, "age")
		s.Require().NoError(err)
		s.Equal("Age", found.Label)

		_, err = s.catalog.FieldByKey(s.ctx, s.scope, "Age")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("inactive definitions are invisible", func() {
		retired := models.FieldDef{UUID: uuid.New(), TenantID: s.scope.TenantID, Key: "shoe_size", Label: "Shoe Size", Active: false}
		s.catalog.AddFieldDef(retired)

		_, err := s.catalog.FieldByKey(s.ctx, s.scope, "shoe_size")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryCatalogSuite) TestEventParentScoping() {
	campaign := models.Campaign{UUID: uuid.New(), TenantID: s.scope.TenantID, Name: "Drive", Active: true}
	s.catalog.AddCampaign(campaign)
	event := models.CampaignEvent{UUID: uuid.New(), CampaignUUID: campaign.UUID, Name: "Kickoff", Active: true}
	s.catalog.AddEvent(event)

	s.Run("resolves through the parent's tenant", func() {
		found, err := s.catalog.EventByUUID(s.ctx, s.scope, event.UUID)
		s.Require().NoError(err)
		s.Equal(campaign.UUID, found.CampaignUUID)
	})

	s.Run("orphaned events are invisible", func() {
		orphan := models.CampaignEvent{UUID: uuid.New(), CampaignUUID: uuid.New(), Name: "Orphan", Active: true}
		s.catalog.AddEvent(orphan)

		_, err := s.catalog.EventByUUID(s.ctx, s.scope, orphan.UUID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
