package factory

import (
	"math"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/codetable"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/mapping"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
)

// DefaultOwner is the owner written on generated broker events.
const DefaultOwner = "Adam's logistics"

// Factory generates synthetic TMS shipments and broker events.
// It is safe for concurrent use.
type Factory struct {
	seed uint64
	now  func() time.Time

	mtx   sync.Mutex
	faker *gofakeit.Faker
}

func New(opts ...Option) *Factory {
	f := &Factory{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	f.faker = gofakeit.New(f.seed)
	return f
}

// Shipment returns a new unprocessed shipment with one pickup and one delivery stop.
func (f *Factory) Shipment() model.TmsShipment {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	fake := f.faker
	lineItems := make([]model.TmsLineItem, fake.IntRange(1, 3))
	for i := range lineItems {
		lineItems[i] = f.lineItem()
	}

	today := f.now().UTC()
	pickup := model.NewDate(today.Year(), today.Month(), today.Day()).AddDays(fake.IntRange(1, 3))
	delivery := pickup.AddDays(fake.IntRange(1, 5))

	return model.TmsShipment{
		ID:                fake.UUID(),
		ExternalReference: util.Ptr(fake.Numerify("EXT-#####")),
		Mode:              model.ModeType(fake.RandomString([]string{string(model.ModeFTL), string(model.ModeLTL)})),
		EquipmentType: model.EquipmentType(fake.RandomString([]string{
			string(model.EquipmentTruckAndTrailer),
			string(model.EquipmentFlatbed53Foot),
			string(model.EquipmentMovingVan),
			string(model.EquipmentContainer),
		})),
		LoadingMeters: round(fake.Float64Range(0.4, 13.6)),
		Customer: model.TmsCustomer{
			ID:      fake.UUID(),
			Name:    fake.Company(),
			Carrier: fake.Company() + " Transport",
		},
		LineItems:   lineItems,
		Stops:       []model.TmsStop{f.stop(model.StopTypePickup, pickup), f.stop(model.StopTypeDelivery, delivery)},
		ProcessedAt: model.Unprocessed(),
	}
}

func (f *Factory) Shipments(count int) []model.TmsShipment {
	shipments := make([]model.TmsShipment, 0, count)
	for i := 0; i < count; i++ {
		shipments = append(shipments, f.Shipment())
	}
	return shipments
}

func (f *Factory) lineItem() model.TmsLineItem {
	fake := f.faker
	packageTypes := codetable.Packaging.Keys()
	return model.TmsLineItem{
		PackageType:   packageTypes[fake.IntRange(0, len(packageTypes)-1)],
		Stackable:     fake.Bool(),
		Height:        util.Ptr(round(fake.Float64Range(0.1, 2.5))),
		Length:        util.Ptr(round(fake.Float64Range(0.1, 2.5))),
		Width:         util.Ptr(round(fake.Float64Range(0.1, 2.5))),
		LengthUnit:    "M",
		PackageWeight: round(fake.Float64Range(1, 1000)),
		WeightUnit:    "KG",
		Description:   fake.ProductName(),
		TotalPackages: fake.IntRange(1, 10),
	}
}

func (f *Factory) stop(stopType model.StopType, date model.Date) model.TmsStop {
	fake := f.faker
	startHour := fake.IntRange(6, 12)
	return model.TmsStop{
		Type: stopType,
		Location: model.TmsLocation{
			Code: fake.Numerify("LOC-####"),
			Name: fake.Company(),
			Address: &model.TmsAddress{
				Address:    fake.Street(),
				City:       fake.City(),
				PostalCode: fake.Zip(),
				Country:    fake.CountryAbr(),
			},
			Latitude:  fake.Latitude(),
			Longitude: fake.Longitude(),
		},
		PlannedDate:            date,
		PlannedTimeWindowStart: model.NewTimeOfDay(startHour, 0, 0),
		PlannedTimeWindowEnd:   model.NewTimeOfDay(startHour+fake.IntRange(2, 6), 0, 0),
	}
}

// EventParams fixes parts of a generated broker event. Empty fields are generated.
type EventParams struct {
	ShipmentID        string
	Owner             string
	Reference         string
	EventType         model.BrokerEventType
	Carrier           string
	LocationReference string
}

// BrokerEvent returns a new unprocessed broker event. The event is registered
// now and happened within an hour of it. ORDER_CREATED and CANCEL_ORDER events
// have no position.
func (f *Factory) BrokerEvent(params EventParams) model.BrokerEventMessage {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	fake := f.faker
	now := f.now().UTC().Truncate(time.Second)

	eventType := params.EventType
	if eventType == "" {
		eventTypes := codetable.EventTypes.Keys()
		eventType = eventTypes[fake.IntRange(0, len(eventTypes)-1)]
	}

	var position *model.BrokerEventPosition
	if eventType != model.BrokerEventOrderCreated && eventType != model.BrokerEventCancelOrder {
		position = &model.BrokerEventPosition{
			LocationReference: orDefault(params.LocationReference, func() string { return fake.Numerify("LOC-####") }),
			Latitude:          fake.Latitude(),
			Longitude:         fake.Longitude(),
		}
	}

	eta := model.NewDateTime(fake.DateRange(now, now.Add(10*24*time.Hour)).UTC().Truncate(time.Second))
	return model.BrokerEventMessage{
		ID:               util.NewID(),
		ShipmentID:       orDefault(params.ShipmentID, func() string { return fake.Numerify("SHIP-#####") }),
		DateTransmission: model.NewDateTime(fake.DateRange(now.Add(-24*time.Hour), now).UTC().Truncate(time.Second)),
		Owner:            orDefault(params.Owner, fake.Company),
		Order: model.BrokerEventOrder{
			Reference: orDefault(params.Reference, func() string { return fake.Numerify("ORD-#####") }),
			ETA:       &eta,
		},
		Situation: model.BrokerEventSituation{
			Event:            eventType,
			RegistrationDate: model.NewDateTime(now),
			ActualDate:       model.NewDateTime(now.Add(time.Duration(fake.IntRange(-60, 60)) * time.Minute)),
			Position:         position,
		},
		Carrier:     orDefault(params.Carrier, fake.Company),
		ProcessedAt: model.Unprocessed(),
	}
}

// BrokerEventFor returns a broker event of the given type reported on the shipment.
// The position refers to the stop the event happens at.
func (f *Factory) BrokerEventFor(shipment model.TmsShipment, eventType model.BrokerEventType) model.BrokerEventMessage {
	params := EventParams{
		ShipmentID: shipment.ID,
		Owner:      DefaultOwner,
		EventType:  eventType,
		Carrier:    shipment.Customer.Carrier,
	}
	if shipment.ExternalReference != nil {
		params.Reference = *shipment.ExternalReference
	}
	if code, ok := mapping.LocationForEvent(shipment, eventType); ok {
		params.LocationReference = code
	}
	return f.BrokerEvent(params)
}

func orDefault(v string, gen func() string) string {
	if v != "" {
		return v
	}
	return gen()
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
