package broker

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxBulkSize = 1000
	DefaultListLimit   = 50
)

type EventManager interface {
	CreateEvent(ctx context.Context, ts int64, req CreateEventRequest) (model.BrokerEventMessage, error)
	SeedEvents(ctx context.Context, ts int64, req SeedEventsRequest) ([]model.BrokerEventMessage, error)
	ListEvents(ctx context.Context, req storage.ListBrokerEventsRequest) (storage.ListBrokerEventsResult, error)
	ListNewEvents(ctx context.Context, req storage.ListBrokerEventsRequest) (storage.ListBrokerEventsResult, error)
	MarkEventProcessed(ctx context.Context, ts int64, id string) (bool, error)
}

// CreateEventRequest is a broker event without identifier.
type CreateEventRequest struct {
	ShipmentID       string                     `json:"shipmentId"`
	DateTransmission model.DateTime             `json:"dateTransmission"`
	Owner            string                     `json:"owner"`
	Order            model.BrokerEventOrder     `json:"order"`
	Situation        model.BrokerEventSituation `json:"situation"`
	Carrier          string                     `json:"carrier"`
}

// SeedEventsRequest asks for one event of the given type on each shipment.
type SeedEventsRequest struct {
	EventType   model.BrokerEventType `json:"event"`
	ShipmentIDs []string              `json:"shipment_ids"`
}

type _EventManager struct {
	storage     storage.Storage
	factory     *factory.Factory
	maxBulkSize int
}

func NewEventManager(storage storage.Storage, factory *factory.Factory, maxBulkSize int) EventManager {
	if maxBulkSize <= 0 {
		maxBulkSize = DefaultMaxBulkSize
	}
	return &_EventManager{
		storage:     storage,
		factory:     factory,
		maxBulkSize: maxBulkSize,
	}
}

func (m *_EventManager) CreateEvent(ctx context.Context, ts int64, req CreateEventRequest) (model.BrokerEventMessage, error) {
	event := model.BrokerEventMessage{
		ID:               util.NewID(),
		ShipmentID:       req.ShipmentID,
		DateTransmission: req.DateTransmission,
		Owner:            req.Owner,
		Order:            req.Order,
		Situation:        req.Situation,
		Carrier:          req.Carrier,
		ProcessedAt:      model.Unprocessed(),
	}
	if err := event.Validate(); err != nil {
		return model.BrokerEventMessage{}, fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.BrokerEventMessage{}, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.storage.StoreBrokerEvents(ctx, tx, ts, event); err != nil {
		return model.BrokerEventMessage{}, fmt.Errorf("store broker events: %w%w", err, model.ErrInfrastructure)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.BrokerEventMessage{}, fmt.Errorf("commit: %w%w", err, model.ErrInfrastructure)
	}

	logrus.Debugf("created broker event %s (%s) for shipment %s", event.ID, event.Situation.Event, event.ShipmentID)
	return event, nil
}

// SeedEvents generates the events from the stored shipments. Every shipment
// must exist.
func (m *_EventManager) SeedEvents(ctx context.Context, ts int64, req SeedEventsRequest) ([]model.BrokerEventMessage, error) {
	if err := ValidateSeedEventsRequest(req, m.maxBulkSize); err != nil {
		return nil, err
	}
	ids := lo.Uniq(req.ShipmentIDs)

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := m.storage.ListShipments(ctx, tx, storage.ListShipmentsRequest{Limit: len(ids), IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w%w", err, model.ErrInfrastructure)
	}
	shipments := lo.KeyBy(result.Records, func(s model.TmsShipment) string { return s.ID })

	events := make([]model.BrokerEventMessage, 0, len(ids))
	for _, id := range ids {
		shipment, ok := shipments[id]
		if !ok {
			return nil, fmt.Errorf("shipment %q: %w", id, model.ErrShipmentNotFound)
		}
		events = append(events, m.factory.BrokerEventFor(shipment, req.EventType))
	}

	if err := m.storage.StoreBrokerEvents(ctx, tx, ts, events...); err != nil {
		return nil, fmt.Errorf("store broker events: %w%w", err, model.ErrInfrastructure)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w%w", err, model.ErrInfrastructure)
	}

	logrus.Debugf("seeded %d %s broker events", len(events), req.EventType)
	return events, nil
}

func (m *_EventManager) ListEvents(ctx context.Context, req storage.ListBrokerEventsRequest) (storage.ListBrokerEventsResult, error) {
	if req.Limit == 0 {
		req.Limit = DefaultListLimit
	}
	if err := ValidateListEventsRequest(req, m.maxBulkSize); err != nil {
		return storage.ListBrokerEventsResult{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListBrokerEventsResult{}, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := m.storage.ListBrokerEvents(ctx, tx, req)
	if err != nil {
		return storage.ListBrokerEventsResult{}, fmt.Errorf("list broker events: %w%w", err, model.ErrInfrastructure)
	}
	return result, nil
}

func (m *_EventManager) ListNewEvents(ctx context.Context, req storage.ListBrokerEventsRequest) (storage.ListBrokerEventsResult, error) {
	req.OnlyNew = true
	return m.ListEvents(ctx, req)
}

// MarkEventProcessed reports whether the event moved to processed. Marking an
// unknown or already processed event reports false.
func (m *_EventManager) MarkEventProcessed(ctx context.Context, ts int64, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("id: cannot be blank%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return false, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	marked, err := m.storage.MarkBrokerEventProcessed(ctx, tx, ts, id)
	if err != nil {
		return false, fmt.Errorf("mark broker event processed: %w%w", err, model.ErrInfrastructure)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w%w", err, model.ErrInfrastructure)
	}

	if !marked {
		logrus.Warnf("broker event %s was not marked processed", id)
	}
	return marked, nil
}
