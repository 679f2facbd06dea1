package api_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/api"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/auth"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/broker"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/reconcile"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/tms"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/trigger"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	mock_auth "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/auth"
	mock_broker "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/broker"
	mock_reconcile "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/reconcile"
	mock_tms "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/tms"
	mock_trigger "github.com/integrationsandbox/integrationsandbox/test/mock/sandbox_server/trigger"
	"github.com/stretchr/testify/suite"
)

type APITestSuite struct {
	suite.Suite

	ctx        context.Context
	ctrl       *gomock.Controller
	userMgr    *mock_auth.MockUserManager
	reconciler *mock_reconcile.MockReconciler
	shipments  *mock_tms.MockShipmentManager
	events     *mock_broker.MockEventManager
	trigger    *mock_trigger.MockTrigger

	basePortNumber int32
	localAddress   string
	api            *api.API

	token string
	user  auth.User
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupSuite() {
	s.basePortNumber = 9300
}

func (s *APITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.userMgr = mock_auth.NewMockUserManager(s.ctrl)
	s.reconciler = mock_reconcile.NewMockReconciler(s.ctrl)
	s.shipments = mock_tms.NewMockShipmentManager(s.ctrl)
	s.events = mock_broker.NewMockEventManager(s.ctrl)
	s.trigger = mock_trigger.NewMockTrigger(s.ctrl)

	portNum := atomic.AddInt32(&s.basePortNumber, 1)
	s.localAddress = fmt.Sprintf("localhost:%d", portNum)
	api, err := api.NewAPIWithController(s.userMgr, s.reconciler, s.shipments, s.events, s.trigger, s.localAddress)
	s.Require().NoError(err)
	s.api = api
	go func() {
		s.api.Run()
	}()
	time.Sleep(100 * time.Millisecond)

	s.token = "access-token"
	s.user = auth.User{Username: "adam"}
}

func (s *APITestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.api.Close(s.ctx)
}

func (s *APITestSuite) expectAuthorized() {
	s.userMgr.EXPECT().TokenAuthorization(gomock.Any(), gomock.Any(), s.token).Return(s.user, nil)
}

func (s *APITestSuite) do(method, path string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		reader = util.StructToJSONReader(body)
	}
	endPoint := fmt.Sprintf("http://%s%s", s.localAddress, path)
	httpRequest, err := http.NewRequestWithContext(s.ctx, method, endPoint, reader)
	s.Require().NoError(err)
	httpRequest.Header.Set("Authorization", "Bearer "+s.token)
	httpRequest.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBody
}

func (s *APITestSuite) TestHealthCheck() {
	endPoint := fmt.Sprintf("http://%s/health", s.localAddress)
	httpRequest, _ := http.NewRequestWithContext(s.ctx, http.MethodGet, endPoint, nil)
	resp, err := http.DefaultClient.Do(httpRequest)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.JSONEq(`{"status":"ok"}`, string(body))
}

func (s *APITestSuite) TestLogin() {
	endPoint := fmt.Sprintf("http://%s/token", s.localAddress)
	form := url.Values{"username": {"adam"}, "password": {"secret"}}
	expectedReq := auth.AuthenticateUserRequest{Username: "adam", Password: "secret"}
	token := auth.Token{AccessToken: s.token, TokenType: auth.TokenTypeBearer}

	s.userMgr.EXPECT().Authenticate(gomock.Any(), gomock.Any(), expectedReq).Return(token, nil)
	resp, err := http.Post(endPoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var received auth.Token
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&received))
	s.Equal(token, received)

	s.userMgr.EXPECT().Authenticate(gomock.Any(), gomock.Any(), expectedReq).Return(auth.Token{}, model.ErrUserAuthenticationFail)
	resp, err = http.Post(endPoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestMe() {
	s.expectAuthorized()
	status, body := s.do(http.MethodGet, "/users/me", nil)
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`{"username":"adam","disabled":false}`, string(body))

	endPoint := fmt.Sprintf("http://%s/users/me", s.localAddress)
	resp, err := http.Get(endPoint)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestValidateBrokerOrder() {
	order := model.BrokerOrderMessage{
		Meta:     model.BrokerOrderMeta{SenderID: "broker", MessageReference: "MSG-1", MessageFunction: 9},
		Shipment: model.BrokerShipment{Reference: "SHP-1", Carrier: "Carrier", TransportMode: "ROAD"},
	}

	// Accepted.
	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateBrokerOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(reconcile.ValidationResult{Valid: true, Stage: reconcile.StageAccepted, Processed: true}, nil)
	status, body := s.do(http.MethodPost, "/api/v1/broker/order", order)
	s.Require().Equal(http.StatusAccepted, status)
	s.JSONEq(`{"valid":true,"stage":"ACCEPTED","errors":null,"processed":true}`, string(body))

	// Rejected.
	fieldErrors := []compare.FieldError{{Field: "shipment_carrier", Expected: "Carrier A", Actual: "Carrier B"}}
	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateBrokerOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		reconcile.ValidationResult{Stage: reconcile.StageRejected, Errors: fieldErrors},
		&reconcile.ValidationError{Errors: fieldErrors},
	)
	status, body = s.do(http.MethodPost, "/api/v1/broker/order", order)
	s.Require().Equal(http.StatusBadRequest, status)
	var detail struct {
		Detail []map[string]any `json:"detail"`
	}
	s.Require().NoError(json.Unmarshal(body, &detail))
	s.Require().Len(detail.Detail, 1)
	s.Equal("shipment_carrier", detail.Detail[0]["field"])
	s.Equal("Carrier A", detail.Detail[0]["expected"])

	// Shipment unknown.
	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateBrokerOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(reconcile.ValidationResult{Stage: reconcile.StageReceived}, model.ErrShipmentNotFound)
	status, _ = s.do(http.MethodPost, "/api/v1/broker/order", order)
	s.Equal(http.StatusNotFound, status)

	// Code table gap.
	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateBrokerOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(reconcile.ValidationResult{}, model.ErrUnmappedCode)
	status, _ = s.do(http.MethodPost, "/api/v1/broker/order", order)
	s.Equal(http.StatusUnprocessableEntity, status)

	// Store failure.
	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateBrokerOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(reconcile.ValidationResult{}, fmt.Errorf("connection reset%w", model.ErrInfrastructure))
	status, body = s.do(http.MethodPost, "/api/v1/broker/order", order)
	s.Equal(http.StatusInternalServerError, status)
	s.Contains(string(body), "Internal server error")

	// Malformed body.
	s.expectAuthorized()
	status, _ = s.do(http.MethodPost, "/api/v1/broker/order", "not an order")
	s.Equal(http.StatusBadRequest, status)
}

func (s *APITestSuite) TestValidateTmsEvent() {
	event := model.TmsEvent{
		CreatedAt: model.NewDateTimeFromStringNoError("2025-07-22T09:00:00Z"),
		EventType: model.TmsEventPickedUp,
		OccuredAt: model.NewDateTimeFromStringNoError("2025-07-22T09:30:00Z"),
		Source:    "broker",
	}

	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateTmsEvent(gomock.Any(), gomock.Any(), "SHP-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, received model.TmsEvent) (reconcile.ValidationResult, error) {
			s.Equal(event.EventType, received.EventType)
			s.True(event.OccuredAt.GetTime().Equal(received.OccuredAt.GetTime()))
			return reconcile.ValidationResult{Valid: true, Stage: reconcile.StageAccepted}, nil
		},
	)
	status, _ := s.do(http.MethodPost, "/api/v1/tms/event/SHP-1", event)
	s.Equal(http.StatusAccepted, status)

	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateTmsEvent(gomock.Any(), gomock.Any(), "SHP-2", gomock.Any()).Return(reconcile.ValidationResult{}, fmt.Errorf("event_type: must be a valid value%w", model.ErrInvalidParameter))
	status, body := s.do(http.MethodPost, "/api/v1/tms/event/SHP-2", event)
	s.Equal(http.StatusBadRequest, status)
	s.Contains(string(body), "event_type")

	s.expectAuthorized()
	s.reconciler.EXPECT().ValidateTmsEvent(gomock.Any(), gomock.Any(), "SHP-3", gomock.Any()).Return(reconcile.ValidationResult{}, model.ErrBrokerEventNotFound)
	status, _ = s.do(http.MethodPost, "/api/v1/tms/event/SHP-3", event)
	s.Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestShipments() {
	shipment := model.TmsShipment{ID: "SHP-1", Mode: model.ModeFTL}

	s.expectAuthorized()
	s.shipments.EXPECT().CreateShipment(gomock.Any(), gomock.Any(), tms.CreateShipmentRequest{Mode: model.ModeFTL}).Return(shipment, nil)
	status, body := s.do(http.MethodPost, "/api/v1/tms/shipments", tms.CreateShipmentRequest{Mode: model.ModeFTL})
	s.Require().Equal(http.StatusCreated, status)
	var created model.TmsShipment
	s.Require().NoError(json.Unmarshal(body, &created))
	s.Equal("SHP-1", created.ID)

	s.expectAuthorized()
	s.shipments.EXPECT().SeedShipments(gomock.Any(), gomock.Any(), tms.SeedShipmentsRequest{Count: 2}).Return([]model.TmsShipment{shipment, shipment}, nil)
	status, body = s.do(http.MethodPost, "/api/v1/tms/shipments/seed", tms.SeedShipmentsRequest{Count: 2})
	s.Require().Equal(http.StatusCreated, status)
	var seeded []model.TmsShipment
	s.Require().NoError(json.Unmarshal(body, &seeded))
	s.Len(seeded, 2)

	s.expectAuthorized()
	s.shipments.EXPECT().SeedShipments(gomock.Any(), gomock.Any(), tms.SeedShipmentsRequest{Count: 5000}).Return(nil, fmt.Errorf("count: must be no greater than 1000%w", model.ErrInvalidParameter))
	status, _ = s.do(http.MethodPost, "/api/v1/tms/shipments/seed", tms.SeedShipmentsRequest{Count: 5000})
	s.Equal(http.StatusBadRequest, status)

	s.expectAuthorized()
	s.shipments.EXPECT().ListShipments(gomock.Any(), storage.ListShipmentsRequest{Offset: 10, Limit: 5}).Return(storage.ListShipmentsResult{Total: 11, Records: []model.TmsShipment{shipment}}, nil)
	status, body = s.do(http.MethodGet, "/api/v1/tms/shipments?offset=10&limit=5", nil)
	s.Require().Equal(http.StatusOK, status)
	var listed storage.ListShipmentsResult
	s.Require().NoError(json.Unmarshal(body, &listed))
	s.Equal(11, listed.Total)

	s.expectAuthorized()
	status, _ = s.do(http.MethodGet, "/api/v1/tms/shipments?limit=0", nil)
	s.Equal(http.StatusBadRequest, status)

	s.expectAuthorized()
	s.shipments.EXPECT().GetShipment(gomock.Any(), "SHP-1").Return(shipment, nil)
	status, _ = s.do(http.MethodGet, "/api/v1/tms/shipments/SHP-1", nil)
	s.Equal(http.StatusOK, status)

	s.expectAuthorized()
	s.shipments.EXPECT().GetShipment(gomock.Any(), "SHP-9").Return(model.TmsShipment{}, model.ErrShipmentNotFound)
	status, _ = s.do(http.MethodGet, "/api/v1/tms/shipments/SHP-9", nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestBrokerEvents() {
	event := model.BrokerEventMessage{ID: "evt-1", ShipmentID: "SHP-1", Owner: "Adam's logistics"}

	s.expectAuthorized()
	createReq := broker.CreateEventRequest{ShipmentID: "SHP-1", Owner: "Adam's logistics"}
	s.events.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req broker.CreateEventRequest) (model.BrokerEventMessage, error) {
			s.Equal(createReq.ShipmentID, req.ShipmentID)
			s.Equal(createReq.Owner, req.Owner)
			return event, nil
		},
	)
	status, _ := s.do(http.MethodPost, "/api/v1/broker/events", createReq)
	s.Equal(http.StatusCreated, status)

	s.expectAuthorized()
	seedReq := broker.SeedEventsRequest{EventType: model.BrokerEventOrderLoaded, ShipmentIDs: []string{"SHP-1"}}
	s.events.EXPECT().SeedEvents(gomock.Any(), gomock.Any(), seedReq).Return([]model.BrokerEventMessage{event}, nil)
	status, _ = s.do(http.MethodPost, "/api/v1/broker/events/seed", seedReq)
	s.Equal(http.StatusCreated, status)

	s.expectAuthorized()
	s.events.EXPECT().SeedEvents(gomock.Any(), gomock.Any(), seedReq).Return(nil, model.ErrShipmentNotFound)
	status, _ = s.do(http.MethodPost, "/api/v1/broker/events/seed", seedReq)
	s.Equal(http.StatusNotFound, status)

	s.expectAuthorized()
	listReq := storage.ListBrokerEventsRequest{
		Offset:     1,
		Limit:      2,
		IDs:        []string{"evt-1", "evt-2"},
		ShipmentID: "SHP-1",
		EventType:  model.BrokerEventOrderLoaded,
	}
	s.events.EXPECT().ListEvents(gomock.Any(), listReq).Return(storage.ListBrokerEventsResult{Total: 1, Records: []model.BrokerEventMessage{event}}, nil)
	status, _ = s.do(http.MethodGet, "/api/v1/broker/events?offset=1&limit=2&id=evt-1&id=evt-2&shipment_id=SHP-1&event=ORDER_LOADED", nil)
	s.Equal(http.StatusOK, status)

	s.expectAuthorized()
	s.events.EXPECT().ListNewEvents(gomock.Any(), storage.ListBrokerEventsRequest{}).Return(storage.ListBrokerEventsResult{Total: 1, Records: []model.BrokerEventMessage{event}}, nil)
	status, body := s.do(http.MethodGet, "/api/v1/broker/events/new", nil)
	s.Require().Equal(http.StatusOK, status)
	var listed storage.ListBrokerEventsResult
	s.Require().NoError(json.Unmarshal(body, &listed))
	s.Require().Len(listed.Records, 1)
	s.Equal("evt-1", listed.Records[0].ID)

	s.expectAuthorized()
	s.events.EXPECT().MarkEventProcessed(gomock.Any(), gomock.Any(), "evt-1").Return(true, nil)
	status, body = s.do(http.MethodPost, "/api/v1/broker/events/evt-1/processed", nil)
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"processed":true}`, string(body))
}

func (s *APITestSuite) TestTrigger() {
	shipmentReq := trigger.ShipmentTriggerRequest{TargetURL: "http://tms.local/shipments", Count: 1}
	s.expectAuthorized()
	s.trigger.EXPECT().TriggerShipments(gomock.Any(), gomock.Any(), shipmentReq).Return([]model.TmsShipment{{ID: "SHP-1"}}, nil)
	status, _ := s.do(http.MethodPost, "/api/v1/trigger/shipments", shipmentReq)
	s.Equal(http.StatusOK, status)

	s.expectAuthorized()
	s.trigger.EXPECT().TriggerShipments(gomock.Any(), gomock.Any(), shipmentReq).Return(nil, model.ErrTargetUnreachable)
	status, _ = s.do(http.MethodPost, "/api/v1/trigger/shipments", shipmentReq)
	s.Equal(http.StatusBadGateway, status)

	eventReq := trigger.EventTriggerRequest{TargetURL: "http://broker.local/events", EventType: model.BrokerEventDelivered, ShipmentIDs: []string{"SHP-1"}}
	s.expectAuthorized()
	s.trigger.EXPECT().TriggerEvents(gomock.Any(), gomock.Any(), eventReq).Return([]model.BrokerEventMessage{{ID: "evt-1"}}, nil)
	status, _ = s.do(http.MethodPost, "/api/v1/trigger/events", eventReq)
	s.Equal(http.StatusOK, status)
}
