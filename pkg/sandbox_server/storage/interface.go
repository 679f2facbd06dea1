package storage

import (
	"context"
	"database/sql"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// TxFromContext returns the transaction CreateTx placed in ctx.
func TxFromContext(ctx context.Context) (Tx, bool) {
	tx, ok := ctx.Value(TRANSACTION).(Tx)
	return tx, ok
}

// ListShipmentsRequest is the request to list TMS shipments.
type ListShipmentsRequest struct {
	Offset int `json:"offset"` // Offset of the shipments to be listed.
	Limit  int `json:"limit"`  // Limit of the shipments to be listed.

	// Filters
	IDs []string `json:"ids"` // The IDs of the shipments.
}

type ListShipmentsResult struct {
	Total   int                 `json:"total"`   // Total number of shipments matching the filters.
	Records []model.TmsShipment `json:"records"` // Records of shipments.
}

// ShipmentStorage keeps TMS shipments keyed by shipment id.
type ShipmentStorage interface {
	TransactionInterface
	// StoreShipments inserts or replaces the shipments. The processing state of
	// each shipment is written as given.
	StoreShipments(ctx context.Context, tx Tx, ts int64, shipments ...model.TmsShipment) error
	ListShipments(ctx context.Context, tx Tx, req ListShipmentsRequest) (ListShipmentsResult, error)
	// MarkShipmentProcessed reports whether this call moved the shipment from
	// unprocessed to processed.
	MarkShipmentProcessed(ctx context.Context, tx Tx, ts int64, id string) (bool, error)
}

// ListBrokerEventsRequest is the request to list broker events.
type ListBrokerEventsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	IDs        []string              `json:"ids"`
	ShipmentID string                `json:"shipment_id"`
	EventType  model.BrokerEventType `json:"event_type"`
	OnlyNew    bool                  `json:"only_new"` // Only events not processed yet.
}

type ListBrokerEventsResult struct {
	Total   int                        `json:"total"`
	Records []model.BrokerEventMessage `json:"records"`
}

// BrokerEventStorage keeps broker events. There is at most one event per
// shipment id and event type.
type BrokerEventStorage interface {
	TransactionInterface
	StoreBrokerEvents(ctx context.Context, tx Tx, ts int64, events ...model.BrokerEventMessage) error
	ListBrokerEvents(ctx context.Context, tx Tx, req ListBrokerEventsRequest) (ListBrokerEventsResult, error)
	MarkBrokerEventProcessed(ctx context.Context, tx Tx, ts int64, id string) (bool, error)
}

type Storage interface {
	ShipmentStorage
	BrokerEventStorage
}
