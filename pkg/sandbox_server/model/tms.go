package model

type PackageType string
type StopType string
type TmsEventType string
type EquipmentType string
type ModeType string

const (
	PackageTypeBale     = PackageType("BALE")
	PackageTypeBox      = PackageType("BOX")
	PackageTypeCoil     = PackageType("COIL")
	PackageTypeCrate    = PackageType("CRATE")
	PackageTypeCylinder = PackageType("CYLINDER")
	PackageTypeDrum     = PackageType("DRUM")
	PackageTypeOther    = PackageType("OTHER")
	PackageTypePallet   = PackageType("PLT")

	StopTypePickup   = StopType("PICKUP")
	StopTypeDelivery = StopType("DELIVERY")

	TmsEventBooked     = TmsEventType("BOOKED")
	TmsEventCancelled  = TmsEventType("CANCELLED")
	TmsEventDelivered  = TmsEventType("DELIVERED")
	TmsEventDispatched = TmsEventType("DISPATCHED")
	TmsEventETAChanged = TmsEventType("ETA_CHANGED")
	TmsEventPickedUp   = TmsEventType("PICKED_UP")

	EquipmentTruckAndTrailer = EquipmentType("TRUCK_AND_TRAILER")
	EquipmentFlatbed53Foot   = EquipmentType("FLATBED_53_FOOT")
	EquipmentMovingVan       = EquipmentType("MOVING_VAN")
	EquipmentContainer       = EquipmentType("CONTAINER")

	ModeFTL = ModeType("FTL")
	ModeLTL = ModeType("LTL")
)

type TmsCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Carrier string `json:"carrier"`
}

// TmsLineItem is a group of TotalPackages physically identical packages.
type TmsLineItem struct {
	PackageType   PackageType `json:"package_type"`
	Stackable     bool        `json:"stackable"`
	Height        *float64    `json:"height"`
	Length        *float64    `json:"length"`
	Width         *float64    `json:"width"`
	LengthUnit    string      `json:"length_unit"`
	PackageWeight float64     `json:"package_weight"`
	WeightUnit    string      `json:"weight_unit"`
	Description   string      `json:"description"`
	TotalPackages int         `json:"total_packages"`
}

type TmsAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type TmsLocation struct {
	Code      string      `json:"code"`
	Name      string      `json:"name,omitempty"`
	Address   *TmsAddress `json:"address,omitempty"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}

type TmsStop struct {
	Type                   StopType    `json:"type"`
	Location               TmsLocation `json:"location"`
	PlannedDate            Date        `json:"planned_date"`
	PlannedTimeWindowStart TimeOfDay   `json:"planned_time_window_start"`
	PlannedTimeWindowEnd   TimeOfDay   `json:"planned_time_window_end"`
}

// TmsEvent is a shipment status event as submitted by a TMS.
type TmsEvent struct {
	CreatedAt              DateTime     `json:"created_at"`
	EventType              TmsEventType `json:"event_type"`
	OccuredAt              DateTime     `json:"occured_at"`
	ExternalOrderReference *string      `json:"external_order_reference"`
	Source                 string       `json:"source"`
	Location               *TmsLocation `json:"location,omitempty"`
}

// TmsShipmentEvent is an entry of a shipment's timeline.
type TmsShipmentEvent struct {
	ID string `json:"id"`
	TmsEvent
}

type TmsShipment struct {
	ID                string             `json:"id"`
	ExternalReference *string            `json:"external_reference"`
	Mode              ModeType           `json:"mode"`
	EquipmentType     EquipmentType      `json:"equipment_type"`
	LoadingMeters     float64            `json:"loading_meters"`
	Customer          TmsCustomer        `json:"customer"`
	LineItems         []TmsLineItem      `json:"line_items"`
	Stops             []TmsStop          `json:"stops"`
	TimelineEvents    []TmsShipmentEvent `json:"timeline_events"`
	ProcessedAt       ProcessingState    `json:"processed_at"`
}

// UpdateTimelineEvents replaces the timeline entry of the same event type or appends a new one.
func (s *TmsShipment) UpdateTimelineEvents(event TmsShipmentEvent) {
	for i := range s.TimelineEvents {
		if s.TimelineEvents[i].EventType == event.EventType {
			s.TimelineEvents[i] = event
			return
		}
	}
	s.TimelineEvents = append(s.TimelineEvents, event)
}

// StopOfType returns the first stop of the given type.
func (s TmsShipment) StopOfType(stopType StopType) (TmsStop, bool) {
	for _, stop := range s.Stops {
		if stop.Type == stopType {
			return stop, true
		}
	}
	return TmsStop{}, false
}
