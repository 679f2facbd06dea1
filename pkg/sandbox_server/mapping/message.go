package mapping

import "github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"

// OrderMessage builds the single-order broker message carrying these fields.
func (f BrokerOrderFields) OrderMessage(meta model.BrokerOrderMeta) model.BrokerOrderMessage {
	meta.MessageFunction = f.MessageFunction
	return model.BrokerOrderMessage{
		Meta: meta,
		Shipment: model.BrokerShipment{
			Reference:     f.ShipmentReference,
			Carrier:       f.ShipmentCarrier,
			TransportMode: f.ShipmentTransportMode,
			Orders: []model.BrokerOrder{{
				Reference:        f.OrderReference,
				PickUp:           f.PickupDetails,
				Consignee:        f.ConsigneeDetails,
				GoodsDescription: JoinGoodsDescription(f.GoodsDescription),
				Quantity:         f.Quantities,
				HandlingUnits:    f.HandlingUnits,
			}},
		},
	}
}

// TmsEvent builds the TMS event carrying these fields.
func (f TmsEventFields) TmsEvent(externalOrderReference *string) model.TmsEvent {
	event := model.TmsEvent{
		CreatedAt:              f.CreatedAt,
		EventType:              f.EventType,
		OccuredAt:              f.OccuredAt,
		ExternalOrderReference: externalOrderReference,
		Source:                 f.Source,
	}
	if f.Location != nil {
		event.Location = &model.TmsLocation{
			Code:      f.Location.Code,
			Latitude:  f.Location.Latitude,
			Longitude: f.Location.Longitude,
		}
	}
	return event
}
