package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type zeroChecker interface {
	IsZero() bool
}

var notZero = validation.By(func(value interface{}) error {
	if v, ok := value.(zeroChecker); ok && v.IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
})

func (c TmsCustomer) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Carrier, validation.Required),
	)
}

func (i TmsLineItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PackageType, validation.Required, validation.In(
			PackageTypeBale,
			PackageTypeBox,
			PackageTypeCoil,
			PackageTypeCrate,
			PackageTypeCylinder,
			PackageTypeDrum,
			PackageTypeOther,
			PackageTypePallet,
		)),
		validation.Field(&i.Height, validation.Min(0.0)),
		validation.Field(&i.Length, validation.Min(0.0)),
		validation.Field(&i.Width, validation.Min(0.0)),
		validation.Field(&i.PackageWeight, validation.Min(0.0)),
		validation.Field(&i.TotalPackages, validation.Required, validation.Min(1)),
	)
}

func (l TmsLocation) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Code, validation.Required),
		validation.Field(&l.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&l.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}

func (s TmsStop) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Type, validation.Required, validation.In(StopTypePickup, StopTypeDelivery)),
		validation.Field(&s.Location),
		validation.Field(&s.PlannedDate, notZero),
	)
}

func (e TmsEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.EventType, validation.Required, validation.In(
			TmsEventBooked,
			TmsEventCancelled,
			TmsEventDelivered,
			TmsEventDispatched,
			TmsEventETAChanged,
			TmsEventPickedUp,
		)),
		validation.Field(&e.CreatedAt, notZero),
		validation.Field(&e.OccuredAt, notZero),
		validation.Field(&e.Source, validation.Required),
		validation.Field(&e.Location),
	)
}

func (s TmsShipment) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Mode, validation.Required, validation.In(ModeFTL, ModeLTL)),
		validation.Field(&s.EquipmentType, validation.Required, validation.In(
			EquipmentTruckAndTrailer,
			EquipmentFlatbed53Foot,
			EquipmentMovingVan,
			EquipmentContainer,
		)),
		validation.Field(&s.LoadingMeters, validation.Min(0.0)),
		validation.Field(&s.Customer),
		validation.Field(&s.LineItems, validation.Required),
		validation.Field(&s.Stops, validation.Required, validation.Length(2, 0)),
	)
}

func (h BrokerHandlingUnit) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.PackagingQualifier, validation.Required, validation.In(
			PackagingBale,
			PackagingBox,
			PackagingCoil,
			PackagingCrate,
			PackagingCylinder,
			PackagingDrum,
			PackagingOther,
			PackagingPallet,
		)),
		validation.Field(&h.GrossWeight, validation.Min(0.0)),
	)
}

func (d BrokerDate) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Qualifier, validation.Required, validation.In(DatePeriodEarliest, DatePeriodLatest)),
		validation.Field(&d.DateTime, notZero),
	)
}

func (o BrokerOrder) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Reference, validation.Required),
		validation.Field(&o.PickUp),
		validation.Field(&o.Consignee),
		validation.Field(&o.HandlingUnits),
	)
}

func (m BrokerOrderMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Meta),
		validation.Field(&m.Shipment),
	)
}

func (m BrokerOrderMeta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.SenderID, validation.Required),
		validation.Field(&m.MessageReference, validation.Required),
	)
}

func (s BrokerShipment) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Reference, validation.Required),
		validation.Field(&s.Carrier, validation.Required),
		validation.Field(&s.TransportMode, validation.Required),
		validation.Field(&s.Orders, validation.Required),
	)
}

func (s BrokerEventSituation) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Event, validation.Required, validation.In(
			BrokerEventOrderCreated,
			BrokerEventCancelOrder,
			BrokerEventDrivingToLoad,
			BrokerEventOrderLoaded,
			BrokerEventETA,
			BrokerEventDelivered,
		)),
		validation.Field(&s.RegistrationDate, notZero),
		validation.Field(&s.ActualDate, notZero),
	)
}

func (m BrokerEventMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.ShipmentID, validation.Required),
		validation.Field(&m.Owner, validation.Required),
		validation.Field(&m.Situation),
		validation.Field(&m.Carrier, validation.Required),
	)
}
