package reconcile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/codetable"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/mapping"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Reconciler validates a document submitted by one side against the entity
// the other side holds, and marks that entity processed when they match.
type Reconciler interface {
	ValidateBrokerOrder(ctx context.Context, ts int64, order model.BrokerOrderMessage) (ValidationResult, error)
	ValidateTmsEvent(ctx context.Context, ts int64, shipmentID string, event model.TmsEvent) (ValidationResult, error)
}

const (
	kindBrokerOrder = "broker_order"
	kindTmsEvent    = "tms_event"
)

type _Reconciler struct {
	storage storage.Storage
	opts    compare.Options

	validationCount metric.Int64Counter
}

func NewReconciler(storage storage.Storage, opts compare.Options) *_Reconciler {
	return &_Reconciler{
		storage:         storage,
		opts:            opts,
		validationCount: otlp_util.NewInt64Counter("sandbox.validation.count", metric.WithDescription("The total number of validated submissions")),
	}
}

func (r *_Reconciler) ValidateBrokerOrder(ctx context.Context, ts int64, order model.BrokerOrderMessage) (ValidationResult, error) {
	ctx, span := otlp_util.Start(ctx, "sandbox_server/reconcile/ValidateBrokerOrder",
		trace.WithAttributes(attribute.String("shipment_reference", order.Shipment.Reference)),
	)
	defer span.End()

	stage := StageReceived
	r.logStage(kindBrokerOrder, order.Shipment.Reference, stage)
	if err := order.Validate(); err != nil {
		r.count(ctx, kindBrokerOrder, "invalid")
		return ValidationResult{Stage: stage}, fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	shipment, err := r.getShipment(ctx, order.Shipment.Reference)
	if err != nil {
		r.count(ctx, kindBrokerOrder, outcomeOf(err))
		return ValidationResult{Stage: stage}, err
	}
	stage = StageCounterpartLookedUp
	r.logStage(kindBrokerOrder, order.Shipment.Reference, stage)

	expected, err := mapping.ExpectedBrokerOrder(shipment)
	if err != nil {
		r.count(ctx, kindBrokerOrder, outcomeOf(err))
		return ValidationResult{Stage: stage}, err
	}
	actual, err := mapping.ActualBrokerOrder(order)
	if err != nil {
		r.count(ctx, kindBrokerOrder, outcomeOf(err))
		return ValidationResult{Stage: stage}, err
	}
	stage = StageMapped
	r.logStage(kindBrokerOrder, order.Shipment.Reference, stage)

	result := compare.Records(r.opts, expected, actual)
	r.logStage(kindBrokerOrder, order.Shipment.Reference, StageCompared)
	span.SetAttributes(attribute.Bool("valid", result.Valid))
	if !result.Valid {
		r.count(ctx, kindBrokerOrder, "rejected")
		r.logStage(kindBrokerOrder, order.Shipment.Reference, StageRejected)
		return ValidationResult{Stage: StageRejected, Errors: result.Errors}, &ValidationError{Errors: result.Errors}
	}

	processed := false
	if !shipment.ProcessedAt.IsProcessed() {
		processed, err = r.markShipmentProcessed(ctx, ts, shipment.ID)
		if err != nil {
			r.count(ctx, kindBrokerOrder, "infrastructure")
			return ValidationResult{Stage: StageCompared}, err
		}
	}

	r.count(ctx, kindBrokerOrder, "accepted")
	r.logStage(kindBrokerOrder, order.Shipment.Reference, StageAccepted)
	return ValidationResult{
		Valid:     true,
		Stage:     StageAccepted,
		Errors:    result.Errors,
		Processed: processed,
	}, nil
}

func (r *_Reconciler) ValidateTmsEvent(ctx context.Context, ts int64, shipmentID string, event model.TmsEvent) (ValidationResult, error) {
	ctx, span := otlp_util.Start(ctx, "sandbox_server/reconcile/ValidateTmsEvent",
		trace.WithAttributes(
			attribute.String("shipment_id", shipmentID),
			attribute.String("event_type", string(event.EventType)),
		),
	)
	defer span.End()

	stage := StageReceived
	r.logStage(kindTmsEvent, shipmentID, stage)
	if shipmentID == "" {
		r.count(ctx, kindTmsEvent, "invalid")
		return ValidationResult{Stage: stage}, fmt.Errorf("shipment_id: cannot be blank%w", model.ErrInvalidParameter)
	}
	if err := event.Validate(); err != nil {
		r.count(ctx, kindTmsEvent, "invalid")
		return ValidationResult{Stage: stage}, fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	brokerEventType, err := codetable.BrokerEventTypeOf(event.EventType)
	if err != nil {
		r.count(ctx, kindTmsEvent, outcomeOf(err))
		return ValidationResult{Stage: stage}, err
	}
	brokerEvent, err := r.getBrokerEvent(ctx, shipmentID, brokerEventType)
	if err != nil {
		r.count(ctx, kindTmsEvent, outcomeOf(err))
		return ValidationResult{Stage: stage}, err
	}
	stage = StageCounterpartLookedUp
	r.logStage(kindTmsEvent, shipmentID, stage)

	expected, err := mapping.ExpectedTmsEvent(brokerEvent)
	if err != nil {
		r.count(ctx, kindTmsEvent, outcomeOf(err))
		return ValidationResult{Stage: stage}, err
	}
	actual := mapping.ActualTmsEvent(event)
	stage = StageMapped
	r.logStage(kindTmsEvent, shipmentID, stage)

	result := compare.Records(r.opts, expected, actual)
	r.logStage(kindTmsEvent, shipmentID, StageCompared)
	span.SetAttributes(attribute.Bool("valid", result.Valid))
	if !result.Valid {
		r.count(ctx, kindTmsEvent, "rejected")
		r.logStage(kindTmsEvent, shipmentID, StageRejected)
		return ValidationResult{Stage: StageRejected, Errors: result.Errors}, &ValidationError{Errors: result.Errors}
	}

	processed, err := r.acceptTmsEvent(ctx, ts, shipmentID, brokerEvent, event)
	if err != nil {
		r.count(ctx, kindTmsEvent, "infrastructure")
		return ValidationResult{Stage: StageCompared}, err
	}

	r.count(ctx, kindTmsEvent, "accepted")
	r.logStage(kindTmsEvent, shipmentID, StageAccepted)
	return ValidationResult{
		Valid:     true,
		Stage:     StageAccepted,
		Errors:    result.Errors,
		Processed: processed,
	}, nil
}

func (r *_Reconciler) getShipment(ctx context.Context, id string) (model.TmsShipment, error) {
	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return model.TmsShipment{}, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := r.storage.ListShipments(ctx, tx, storage.ListShipmentsRequest{Limit: 1, IDs: []string{id}})
	if err != nil {
		return model.TmsShipment{}, fmt.Errorf("list shipments: %w%w", err, model.ErrInfrastructure)
	}
	if len(result.Records) == 0 {
		return model.TmsShipment{}, fmt.Errorf("shipment %q: %w", id, model.ErrShipmentNotFound)
	}
	return result.Records[0], nil
}

func (r *_Reconciler) getBrokerEvent(ctx context.Context, shipmentID string, eventType model.BrokerEventType) (model.BrokerEventMessage, error) {
	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return model.BrokerEventMessage{}, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req := storage.ListBrokerEventsRequest{
		Limit:      1,
		ShipmentID: shipmentID,
		EventType:  eventType,
	}
	result, err := r.storage.ListBrokerEvents(ctx, tx, req)
	if err != nil {
		return model.BrokerEventMessage{}, fmt.Errorf("list broker events: %w%w", err, model.ErrInfrastructure)
	}
	if len(result.Records) == 0 {
		return model.BrokerEventMessage{}, fmt.Errorf("%s event of shipment %q: %w", eventType, shipmentID, model.ErrBrokerEventNotFound)
	}
	return result.Records[0], nil
}

func (r *_Reconciler) markShipmentProcessed(ctx context.Context, ts int64, id string) (bool, error) {
	tx, ctx, err := r.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return false, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	marked, err := r.storage.MarkShipmentProcessed(ctx, tx, ts, id)
	if err != nil {
		return false, fmt.Errorf("mark shipment processed: %w%w", err, model.ErrInfrastructure)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w%w", err, model.ErrInfrastructure)
	}
	if !marked {
		logrus.Debugf("shipment %s was processed by another submission", id)
	}
	return marked, nil
}

// acceptTmsEvent marks the broker event processed and records the event on the
// shipment's timeline. The shipment keeps its own processing state.
func (r *_Reconciler) acceptTmsEvent(ctx context.Context, ts int64, shipmentID string, brokerEvent model.BrokerEventMessage, event model.TmsEvent) (bool, error) {
	tx, ctx, err := r.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return false, fmt.Errorf("create transaction: %w%w", err, model.ErrInfrastructure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	marked := false
	if !brokerEvent.ProcessedAt.IsProcessed() {
		marked, err = r.storage.MarkBrokerEventProcessed(ctx, tx, ts, brokerEvent.ID)
		if err != nil {
			return false, fmt.Errorf("mark broker event processed: %w%w", err, model.ErrInfrastructure)
		}
	}

	result, err := r.storage.ListShipments(ctx, tx, storage.ListShipmentsRequest{Limit: 1, IDs: []string{shipmentID}})
	if err != nil {
		return false, fmt.Errorf("list shipments: %w%w", err, model.ErrInfrastructure)
	}
	if len(result.Records) == 0 {
		logrus.Warnf("shipment %s not found, timeline not updated", shipmentID)
	} else {
		shipment := result.Records[0]
		shipment.UpdateTimelineEvents(model.TmsShipmentEvent{ID: util.NewID(), TmsEvent: event})
		if err := r.storage.StoreShipments(ctx, tx, ts, shipment); err != nil {
			return false, fmt.Errorf("store shipment: %w%w", err, model.ErrInfrastructure)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w%w", err, model.ErrInfrastructure)
	}
	return marked, nil
}

func (r *_Reconciler) count(ctx context.Context, kind, outcome string) {
	r.validationCount.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind), attribute.String("outcome", outcome)))
}

func (r *_Reconciler) logStage(kind, reference string, stage Stage) {
	logrus.Debugf("%s %s: %s", kind, reference, stage)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, model.ErrLookupFailure):
		return "lookup_failure"
	case errors.Is(err, model.ErrConfigurationGap):
		return "configuration_gap"
	case errors.Is(err, model.ErrInvalidParameter):
		return "invalid"
	default:
		return "infrastructure"
	}
}
