package model

type BrokerEventType string
type BrokerPackagingQualifier string
type BrokerDateQualifier string

const (
	BrokerEventOrderCreated  = BrokerEventType("ORDER_CREATED")
	BrokerEventCancelOrder   = BrokerEventType("CANCEL_ORDER")
	BrokerEventDrivingToLoad = BrokerEventType("DRIVING_TO_LOAD")
	BrokerEventOrderLoaded   = BrokerEventType("ORDER_LOADED")
	BrokerEventETA           = BrokerEventType("ETA_EVENT")
	BrokerEventDelivered     = BrokerEventType("ORDER_DELIVERED")

	PackagingBale     = BrokerPackagingQualifier("BL")
	PackagingBox      = BrokerPackagingQualifier("BX")
	PackagingCoil     = BrokerPackagingQualifier("CL")
	PackagingCrate    = BrokerPackagingQualifier("CR")
	PackagingCylinder = BrokerPackagingQualifier("CY")
	PackagingDrum     = BrokerPackagingQualifier("DR")
	PackagingOther    = BrokerPackagingQualifier("OT")
	PackagingPallet   = BrokerPackagingQualifier("PL")

	DatePeriodEarliest = BrokerDateQualifier("PERIOD_EARLIEST")
	DatePeriodLatest   = BrokerDateQualifier("PERIOD_LATEST")
)

type BrokerOrderMeta struct {
	SenderID         string   `json:"senderId"`
	MessageDate      DateTime `json:"messageDate"`
	MessageReference string   `json:"messageReference"`
	MessageFunction  int      `json:"messageFunction"`
}

type BrokerDate struct {
	Qualifier BrokerDateQualifier `json:"qualifier"`
	DateTime  DateTime            `json:"dateTime"`
}

type BrokerLocation struct {
	Identification string       `json:"identification"`
	Name           string       `json:"name"`
	Address1       string       `json:"address1"`
	Address2       string       `json:"address2"`
	Country        string       `json:"country"`
	PostalCode     string       `json:"postalCode"`
	City           string       `json:"city"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	Instructions   string       `json:"instructions"`
	Dates          []BrokerDate `json:"dates"`
}

type BrokerQuantity struct {
	GrossWeight   float64  `json:"grossWeight"`
	LoadingMeters *float64 `json:"loadingMeters"`
}

// BrokerHandlingUnit is one physical package.
type BrokerHandlingUnit struct {
	PackagingQualifier BrokerPackagingQualifier `json:"packagingQualifier"`
	GrossWeight        float64                  `json:"grossWeight"`
	Width              *float64                 `json:"width"`
	Length             *float64                 `json:"length"`
	Height             *float64                 `json:"height"`
}

type BrokerOrder struct {
	Reference        string               `json:"reference"`
	PickUp           BrokerLocation       `json:"pickUp"`
	Consignee        BrokerLocation       `json:"consignee"`
	GoodsDescription string               `json:"goodsDescription"`
	Quantity         BrokerQuantity       `json:"quantity"`
	HandlingUnits    []BrokerHandlingUnit `json:"handlingUnits"`
}

type BrokerShipment struct {
	Reference     string        `json:"reference"`
	Carrier       string        `json:"carrier"`
	TransportMode string        `json:"transportMode"`
	Orders        []BrokerOrder `json:"orders"`
}

// BrokerOrderMessage is an order as submitted by a broker.
type BrokerOrderMessage struct {
	Meta     BrokerOrderMeta `json:"meta"`
	Shipment BrokerShipment  `json:"shipment"`
}

type BrokerEventOrder struct {
	Reference string    `json:"reference"`
	ETA       *DateTime `json:"eta"`
}

type BrokerEventPosition struct {
	LocationReference string  `json:"locationReference"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
}

type BrokerEventSituation struct {
	Event            BrokerEventType      `json:"event"`
	RegistrationDate DateTime             `json:"registrationDate"`
	ActualDate       DateTime             `json:"actualDate"`
	Position         *BrokerEventPosition `json:"position"`
}

type BrokerEventMessage struct {
	ID               string               `json:"id"`
	ShipmentID       string               `json:"shipmentId"`
	DateTransmission DateTime             `json:"dateTransmission"`
	Owner            string               `json:"owner"`
	Order            BrokerEventOrder     `json:"order"`
	Situation        BrokerEventSituation `json:"situation"`
	Carrier          string               `json:"carrier"`
	ProcessedAt      ProcessingState      `json:"processed_at"`
}
