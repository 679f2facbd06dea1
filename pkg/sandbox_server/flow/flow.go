package flow

import (
	"fmt"
	"time"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/mapping"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
)

const SenderID = "TEST_SENDER"

// Flow is one shipment together with the documents both sides exchange about it.
// The broker order validates against the shipment and the TMS event validates
// against the broker event.
type Flow struct {
	Shipment    model.TmsShipment        `json:"shipment"`
	BrokerOrder model.BrokerOrderMessage `json:"broker_order"`
	BrokerEvent model.BrokerEventMessage `json:"broker_event"`
	TmsEvent    model.TmsEvent           `json:"tms_event"`
}

type Generator struct {
	factory *factory.Factory
	now     func() time.Time
}

func NewGenerator(f *factory.Factory) *Generator {
	return &Generator{factory: f, now: time.Now}
}

func (g *Generator) GenerateCompleteFlow(eventType model.BrokerEventType) (Flow, error) {
	if eventType == "" {
		eventType = model.BrokerEventOrderCreated
	}

	shipment := g.factory.Shipment()
	orderFields, err := mapping.ExpectedBrokerOrder(shipment)
	if err != nil {
		return Flow{}, fmt.Errorf("map shipment %s: %w", shipment.ID, err)
	}
	order := orderFields.OrderMessage(model.BrokerOrderMeta{
		SenderID:         SenderID,
		MessageDate:      model.NewDateTime(g.now().UTC().Truncate(time.Second)),
		MessageReference: util.NewID(),
	})

	brokerEvent := g.factory.BrokerEventFor(shipment, eventType)
	eventFields, err := mapping.ExpectedTmsEvent(brokerEvent)
	if err != nil {
		return Flow{}, fmt.Errorf("map broker event %s: %w", brokerEvent.ID, err)
	}

	return Flow{
		Shipment:    shipment,
		BrokerOrder: order,
		BrokerEvent: brokerEvent,
		TmsEvent:    eventFields.TmsEvent(shipment.ExternalReference),
	}, nil
}
