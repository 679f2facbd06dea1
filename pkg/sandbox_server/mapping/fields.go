package mapping

import (
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

// BrokerOrderFields is the field record compared when a broker submits an order.
// The JSON names are the field names reported to test clients.
type BrokerOrderFields struct {
	MessageFunction       int                        `json:"meta_message_function"`
	ShipmentReference     string                     `json:"shipment_reference"`
	ShipmentCarrier       string                     `json:"shipment_carrier"`
	ShipmentTransportMode string                     `json:"shipment_transportmode"`
	OrderReference        string                     `json:"order_reference"`
	PickupDetails         model.BrokerLocation       `json:"order_pickup_details"`
	ConsigneeDetails      model.BrokerLocation       `json:"order_consignee_details"`
	GoodsDescription      compare.Set[string]        `json:"order_goods_description"`
	Quantities            model.BrokerQuantity       `json:"order_quantities"`
	HandlingUnits         []model.BrokerHandlingUnit `json:"order_handling_units"`
}

func (f BrokerOrderFields) Fields() map[string]any {
	return map[string]any{
		"meta_message_function":   f.MessageFunction,
		"shipment_reference":      f.ShipmentReference,
		"shipment_carrier":        f.ShipmentCarrier,
		"shipment_transportmode":  f.ShipmentTransportMode,
		"order_reference":         f.OrderReference,
		"order_pickup_details":    f.PickupDetails,
		"order_consignee_details": f.ConsigneeDetails,
		"order_goods_description": f.GoodsDescription,
		"order_quantities":        f.Quantities,
		"order_handling_units":    f.HandlingUnits,
	}
}

type EventLocation struct {
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TmsEventFields is the field record compared when a TMS submits a shipment event.
// The location fields are only present when the event carries a location.
type TmsEventFields struct {
	EventType model.TmsEventType `json:"event_type"`
	CreatedAt model.DateTime     `json:"created_at"`
	OccuredAt model.DateTime     `json:"occured_at"`
	Source    string             `json:"source"`
	Location  *EventLocation     `json:"location,omitempty"`
}

func (f TmsEventFields) Fields() map[string]any {
	fields := map[string]any{
		"event_type": f.EventType,
		"created_at": f.CreatedAt,
		"occured_at": f.OccuredAt,
		"source":     f.Source,
	}
	if f.Location != nil {
		fields["location_code"] = f.Location.Code
		fields["location_latitude"] = f.Location.Latitude
		fields["location_longitude"] = f.Location.Longitude
	}
	return fields
}
