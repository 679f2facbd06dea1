package trigger

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/broker"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/tms"
	"github.com/sirupsen/logrus"
)

// Trigger generates data, stores it and sends it to a system under test.
type Trigger interface {
	TriggerShipments(ctx context.Context, ts int64, req ShipmentTriggerRequest) ([]model.TmsShipment, error)
	TriggerEvents(ctx context.Context, ts int64, req EventTriggerRequest) ([]model.BrokerEventMessage, error)
}

// Dispatcher delivers generated data to a target URL.
type Dispatcher interface {
	Dispatch(ctx context.Context, targetURL string, payload any) error
}

type ShipmentTriggerRequest struct {
	TargetURL string `json:"target_url"`
	Count     int    `json:"count"`
}

type EventTriggerRequest struct {
	TargetURL   string                `json:"target_url"`
	EventType   model.BrokerEventType `json:"event"`
	ShipmentIDs []string              `json:"shipment_ids"`
}

type _Trigger struct {
	shipments  tms.ShipmentManager
	events     broker.EventManager
	dispatcher Dispatcher
}

func NewTrigger(shipments tms.ShipmentManager, events broker.EventManager, dispatcher Dispatcher) Trigger {
	return &_Trigger{
		shipments:  shipments,
		events:     events,
		dispatcher: dispatcher,
	}
}

// TriggerShipments seeds the shipments before dispatching them. They stay
// stored when the target cannot be reached.
func (t *_Trigger) TriggerShipments(ctx context.Context, ts int64, req ShipmentTriggerRequest) ([]model.TmsShipment, error) {
	if err := validateTargetURL(req.TargetURL); err != nil {
		return nil, err
	}

	shipments, err := t.shipments.SeedShipments(ctx, ts, tms.SeedShipmentsRequest{Count: req.Count})
	if err != nil {
		return nil, err
	}
	if err := t.dispatcher.Dispatch(ctx, req.TargetURL, shipments); err != nil {
		logrus.Warnf("failed to dispatch %d shipments: %v", len(shipments), err)
		return nil, err
	}

	logrus.Debugf("dispatched %d shipments to %s", len(shipments), req.TargetURL)
	return shipments, nil
}

func (t *_Trigger) TriggerEvents(ctx context.Context, ts int64, req EventTriggerRequest) ([]model.BrokerEventMessage, error) {
	if err := validateTargetURL(req.TargetURL); err != nil {
		return nil, err
	}

	events, err := t.events.SeedEvents(ctx, ts, broker.SeedEventsRequest{EventType: req.EventType, ShipmentIDs: req.ShipmentIDs})
	if err != nil {
		return nil, err
	}
	if err := t.dispatcher.Dispatch(ctx, req.TargetURL, events); err != nil {
		logrus.Warnf("failed to dispatch %d broker events: %v", len(events), err)
		return nil, err
	}

	logrus.Debugf("dispatched %d broker events to %s", len(events), req.TargetURL)
	return events, nil
}

func validateTargetURL(targetURL string) error {
	err := validation.Validate(targetURL, validation.Required, is.URL)
	if err != nil {
		return fmt.Errorf("target_url: %s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
