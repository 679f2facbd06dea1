package trigger_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/broker"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/tms"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/trigger"
	mock_broker "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/broker"
	mock_tms "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/tms"
	mock_trigger "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/trigger"
	"github.com/stretchr/testify/suite"
)

const targetURL = "http://127.0.0.1:9000/inbound"

type TriggerTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	shipments  *mock_tms.MockShipmentManager
	events     *mock_broker.MockEventManager
	dispatcher *mock_trigger.MockDispatcher
	factory    *factory.Factory
	trigger    trigger.Trigger
}

func TestTrigger(t *testing.T) {
	suite.Run(t, new(TriggerTestSuite))
}

func (s *TriggerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.shipments = mock_tms.NewMockShipmentManager(s.ctrl)
	s.events = mock_broker.NewMockEventManager(s.ctrl)
	s.dispatcher = mock_trigger.NewMockDispatcher(s.ctrl)
	s.factory = factory.New()
	s.trigger = trigger.NewTrigger(s.shipments, s.events, s.dispatcher)
}

func (s *TriggerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TriggerTestSuite) TestTriggerShipments() {
	ts := time.Now().Unix()
	shipments := s.factory.Shipments(2)

	gomock.InOrder(
		s.shipments.EXPECT().SeedShipments(gomock.Any(), ts, tms.SeedShipmentsRequest{Count: 2}).Return(shipments, nil),
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), targetURL, shipments).Return(nil),
	)

	result, err := s.trigger.TriggerShipments(s.ctx, ts, trigger.ShipmentTriggerRequest{TargetURL: targetURL, Count: 2})
	s.Require().NoError(err)
	s.Equal(shipments, result)
}

func (s *TriggerTestSuite) TestTriggerShipmentsUnreachable() {
	ts := time.Now().Unix()
	shipments := s.factory.Shipments(1)

	gomock.InOrder(
		s.shipments.EXPECT().SeedShipments(gomock.Any(), ts, gomock.Any()).Return(shipments, nil),
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), targetURL, shipments).Return(model.ErrTargetUnreachable),
	)

	_, err := s.trigger.TriggerShipments(s.ctx, ts, trigger.ShipmentTriggerRequest{TargetURL: targetURL, Count: 1})
	s.ErrorIs(err, model.ErrTargetUnreachable)
}

func (s *TriggerTestSuite) TestTriggerShipmentsInvalidURL() {
	_, err := s.trigger.TriggerShipments(s.ctx, time.Now().Unix(), trigger.ShipmentTriggerRequest{TargetURL: "not a url", Count: 1})
	s.ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.trigger.TriggerShipments(s.ctx, time.Now().Unix(), trigger.ShipmentTriggerRequest{Count: 1})
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *TriggerTestSuite) TestTriggerEvents() {
	ts := time.Now().Unix()
	shipment := s.factory.Shipment()
	events := []model.BrokerEventMessage{s.factory.BrokerEventFor(shipment, model.BrokerEventDelivered)}
	req := broker.SeedEventsRequest{EventType: model.BrokerEventDelivered, ShipmentIDs: []string{shipment.ID}}

	gomock.InOrder(
		s.events.EXPECT().SeedEvents(gomock.Any(), ts, req).Return(events, nil),
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), targetURL, events).Return(nil),
	)

	result, err := s.trigger.TriggerEvents(s.ctx, ts, trigger.EventTriggerRequest{
		TargetURL:   targetURL,
		EventType:   model.BrokerEventDelivered,
		ShipmentIDs: []string{shipment.ID},
	})
	s.Require().NoError(err)
	s.Equal(events, result)
}

func (s *TriggerTestSuite) TestTriggerEventsUnknownShipment() {
	s.events.EXPECT().SeedEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, model.ErrShipmentNotFound)

	_, err := s.trigger.TriggerEvents(s.ctx, time.Now().Unix(), trigger.EventTriggerRequest{
		TargetURL:   targetURL,
		EventType:   model.BrokerEventDelivered,
		ShipmentIDs: []string{"SHP-404"},
	})
	s.ErrorIs(err, model.ErrShipmentNotFound)
}
