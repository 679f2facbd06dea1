package mapping

import (
	"fmt"
	"strings"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/samber/lo"
)

const (
	NewMessageFunction = 9
	TransportModeRoad  = "ROAD"
	GoodsSeparator     = "|"
)

// ExpectedBrokerOrder applies the shipment mapping rules: the fields a broker
// order describing this shipment must carry.
func ExpectedBrokerOrder(shipment model.TmsShipment) (BrokerOrderFields, error) {
	pickup, err := brokerLocation(shipment, model.StopTypePickup)
	if err != nil {
		return BrokerOrderFields{}, err
	}
	consignee, err := brokerLocation(shipment, model.StopTypeDelivery)
	if err != nil {
		return BrokerOrderFields{}, err
	}
	units, err := ExpandLineItems(shipment.LineItems)
	if err != nil {
		return BrokerOrderFields{}, err
	}

	descriptions := lo.Map(shipment.LineItems, func(item model.TmsLineItem, _ int) string { return item.Description })
	grossWeight := lo.SumBy(shipment.LineItems, func(item model.TmsLineItem) float64 {
		return item.PackageWeight * float64(item.TotalPackages)
	})
	loadingMeters := shipment.LoadingMeters

	return BrokerOrderFields{
		MessageFunction:       NewMessageFunction,
		ShipmentReference:     shipment.ID,
		ShipmentCarrier:       shipment.Customer.Carrier,
		ShipmentTransportMode: TransportModeRoad,
		OrderReference:        shipment.ID,
		PickupDetails:         pickup,
		ConsigneeDetails:      consignee,
		GoodsDescription:      compare.NewSet(descriptions...),
		Quantities: model.BrokerQuantity{
			GrossWeight:   grossWeight,
			LoadingMeters: &loadingMeters,
		},
		HandlingUnits: units,
	}, nil
}

// ActualBrokerOrder reads the same fields from a submitted broker order. Only the
// first order of the shipment is considered.
func ActualBrokerOrder(msg model.BrokerOrderMessage) (BrokerOrderFields, error) {
	if len(msg.Shipment.Orders) == 0 {
		return BrokerOrderFields{}, fmt.Errorf("broker shipment %q has no order%w", msg.Shipment.Reference, model.ErrInvalidParameter)
	}
	order := msg.Shipment.Orders[0]

	return BrokerOrderFields{
		MessageFunction:       msg.Meta.MessageFunction,
		ShipmentReference:     msg.Shipment.Reference,
		ShipmentCarrier:       msg.Shipment.Carrier,
		ShipmentTransportMode: msg.Shipment.TransportMode,
		OrderReference:        order.Reference,
		PickupDetails:         order.PickUp,
		ConsigneeDetails:      order.Consignee,
		GoodsDescription:      SplitGoodsDescription(order.GoodsDescription),
		Quantities:            order.Quantity,
		HandlingUnits:         order.HandlingUnits,
	}, nil
}

// SplitGoodsDescription splits a "|" joined description into its trimmed parts.
func SplitGoodsDescription(description string) compare.Set[string] {
	parts := lo.Map(strings.Split(description, GoodsSeparator), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return compare.NewSet(parts...)
}

// JoinGoodsDescription is the inverse of SplitGoodsDescription.
func JoinGoodsDescription(descriptions compare.Set[string]) string {
	return strings.Join(descriptions.Elements(), GoodsSeparator)
}

func brokerLocation(shipment model.TmsShipment, stopType model.StopType) (model.BrokerLocation, error) {
	stop, ok := shipment.StopOfType(stopType)
	if !ok {
		return model.BrokerLocation{}, fmt.Errorf("no %s stop on shipment %q: %w", stopType, shipment.ID, model.ErrStopNotFound)
	}

	location := model.BrokerLocation{
		Identification: stop.Location.Code,
		Name:           stop.Location.Name,
		Address2:       "",
		Latitude:       stop.Location.Latitude,
		Longitude:      stop.Location.Longitude,
		Instructions:   "",
		Dates:          StopDates(stop),
	}
	if addr := stop.Location.Address; addr != nil {
		location.Address1 = addr.Address
		location.Country = addr.Country
		location.PostalCode = addr.PostalCode
		location.City = addr.City
	}
	return location, nil
}

// StopDates returns the earliest and latest date of the stop's planned time window.
func StopDates(stop model.TmsStop) []model.BrokerDate {
	return []model.BrokerDate{
		{
			Qualifier: model.DatePeriodEarliest,
			DateTime:  model.CombineDateTime(stop.PlannedDate, stop.PlannedTimeWindowStart),
		},
		{
			Qualifier: model.DatePeriodLatest,
			DateTime:  model.CombineDateTime(stop.PlannedDate, stop.PlannedTimeWindowEnd),
		},
	}
}
