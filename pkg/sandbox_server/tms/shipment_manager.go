package tms

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxBulkSize = 1000
	DefaultListLimit   = 50
)

type ShipmentManager interface {
	CreateShipment(ctx context.Context, ts int64, req CreateShipmentRequest) (model.TmsShipment, error)
	SeedShipments(ctx context.Context, ts int64, req SeedShipmentsRequest) ([]model.TmsShipment, error)
	ListShipments(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error)
	GetShipment(ctx context.Context, id string) (model.TmsShipment, error)
}

// CreateShipmentRequest is a shipment without identifier. The identifier is
// assigned on creation.
type CreateShipmentRequest struct {
	ExternalReference *string                  `json:"external_reference"`
	Mode              model.ModeType           `json:"mode"`
	EquipmentType     model.EquipmentType      `json:"equipment_type"`
	LoadingMeters     float64                  `json:"loading_meters"`
	Customer          model.TmsCustomer        `json:"customer"`
	LineItems         []model.TmsLineItem      `json:"line_items"`
	Stops             []model.TmsStop          `json:"stops"`
	TimelineEvents    []model.TmsShipmentEvent `json:"timeline_events"`
}

type SeedShipmentsRequest struct {
	Count int `json:"count"`
}

type _ShipmentManager struct {
	storage     storage.ShipmentStorage
	factory     *factory.Factory
	maxBulkSize int
}

func NewShipmentManager(storage storage.ShipmentStorage, factory *factory.Factory, maxBulkSize int) ShipmentManager {
	if maxBulkSize <= 0 {
		maxBulkSize = DefaultMaxBulkSize
	}
	return &_ShipmentManager{
		storage:     storage,
		factory:     factory,
		maxBulkSize: maxBulkSize,
	}
}

func (m *_ShipmentManager) CreateShipment(ctx context.Context, ts int64, req CreateShipmentRequest) (model.TmsShipment, error) {
	shipment := model.TmsShipment{
		ID:                util.NewID(),
		ExternalReference: req.ExternalReference,
		Mode:              req.Mode,
		EquipmentType:     req.EquipmentType,
		LoadingMeters:     req.LoadingMeters,
		Customer:          req.Customer,
		LineItems:         req.LineItems,
		Stops:             req.Stops,
		TimelineEvents:    req.TimelineEvents,
		ProcessedAt:       model.Unprocessed(),
	}
	if err := shipment.Validate(); err != nil {
		return model.TmsShipment{}, fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	if err := m.store(ctx, ts, shipment); err != nil {
		return model.TmsShipment{}, err
	}
	logrus.Debugf("created shipment %s", shipment.ID)
	return shipment, nil
}

func (m *_ShipmentManager) SeedShipments(ctx context.Context, ts int64, req SeedShipmentsRequest) ([]model.TmsShipment, error) {
	if err := ValidateSeedShipmentsRequest(req, m.maxBulkSize); err != nil {
		return nil, err
	}

	shipments := m.factory.Shipments(req.Count)
	if err := m.store(ctx, ts, shipments...); err != nil {
		return nil, err
	}
	logrus.Debugf("seeded %d shipments", len(shipments))
	return shipments, nil
}

func (m *_ShipmentManager) ListShipments(ctx context.Context, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	if req.Limit == 0 {
		req.Limit = DefaultListLimit
	}
	if err := ValidateListShipmentsRequest(req, m.maxBulkSize); err != nil {
		return storage.ListShipmentsResult{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListShipmentsResult{}, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := m.storage.ListShipments(ctx, tx, req)
	if err != nil {
		return storage.ListShipmentsResult{}, fmt.Errorf("list shipments: %w%w", err, model.ErrInfrastructure)
	}
	return result, nil
}

func (m *_ShipmentManager) GetShipment(ctx context.Context, id string) (model.TmsShipment, error) {
	result, err := m.ListShipments(ctx, storage.ListShipmentsRequest{Limit: 1, IDs: []string{id}})
	if err != nil {
		return model.TmsShipment{}, err
	}
	if len(result.Records) == 0 {
		return model.TmsShipment{}, fmt.Errorf("shipment %q: %w", id, model.ErrShipmentNotFound)
	}
	return result.Records[0], nil
}

func (m *_ShipmentManager) store(ctx context.Context, ts int64, shipments ...model.TmsShipment) error {
	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := m.storage.StoreShipments(ctx, tx, ts, shipments...); err != nil {
		return fmt.Errorf("store shipments: %w%w", err, model.ErrInfrastructure)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w%w", err, model.ErrInfrastructure)
	}
	return nil
}
