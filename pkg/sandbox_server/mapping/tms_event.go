package mapping

import (
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/codetable"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

// EventSource is the source label the TMS records for events coming from the broker.
const EventSource = "broker"

// ExpectedTmsEvent applies the event mapping rules to a broker event.
func ExpectedTmsEvent(event model.BrokerEventMessage) (TmsEventFields, error) {
	eventType, err := codetable.TmsEventTypeOf(event.Situation.Event)
	if err != nil {
		return TmsEventFields{}, err
	}

	fields := TmsEventFields{
		EventType: eventType,
		CreatedAt: event.Situation.RegistrationDate,
		OccuredAt: event.Situation.ActualDate,
		Source:    EventSource,
	}
	if pos := event.Situation.Position; pos != nil {
		fields.Location = &EventLocation{
			Code:      pos.LocationReference,
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}
	}
	return fields, nil
}

// ActualTmsEvent reads the same fields from a submitted TMS event.
func ActualTmsEvent(event model.TmsEvent) TmsEventFields {
	fields := TmsEventFields{
		EventType: event.EventType,
		CreatedAt: event.CreatedAt,
		OccuredAt: event.OccuredAt,
		Source:    EventSource,
	}
	if loc := event.Location; loc != nil {
		fields.Location = &EventLocation{
			Code:      loc.Code,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		}
	}
	return fields
}

// LocationForEvent returns the code of the stop a broker event of this type happens at.
func LocationForEvent(shipment model.TmsShipment, eventType model.BrokerEventType) (string, bool) {
	var stopType model.StopType
	switch eventType {
	case model.BrokerEventDrivingToLoad, model.BrokerEventOrderLoaded:
		stopType = model.StopTypePickup
	case model.BrokerEventDelivered, model.BrokerEventETA:
		stopType = model.StopTypeDelivery
	default:
		return "", false
	}

	stop, ok := shipment.StopOfType(stopType)
	if !ok {
		return "", false
	}
	return stop.Location.Code, true
}
