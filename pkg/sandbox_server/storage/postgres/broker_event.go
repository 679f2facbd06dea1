package postgres

import (
	"context"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
)

func (s *_Storage) StoreBrokerEvents(ctx context.Context, tx storage.Tx, ts int64, events ...model.BrokerEventMessage) error {
	query := `
INSERT INTO broker_event (id, shipment_id, event_type, event, processed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
ON CONFLICT (shipment_id, event_type) DO UPDATE SET
	id = excluded.id,
	event = excluded.event,
	processed_at = excluded.processed_at,
	updated_at = excluded.updated_at
`
	for _, event := range events {
		_, err := tx.Exec(
			ctx,
			query,
			event.ID,
			event.ShipmentID,
			string(event.Situation.Event),
			event,
			event.ProcessedAt.Unix(),
			ts,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *_Storage) ListBrokerEvents(ctx context.Context, tx storage.Tx, req storage.ListBrokerEventsRequest) (storage.ListBrokerEventsResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			event,
			processed_at
		FROM broker_event
		WHERE
			(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3)) AND
			($4::TEXT = '' OR shipment_id = $4) AND
			($5::TEXT = '' OR event_type = $5) AND
			(NOT $6::BOOLEAN OR processed_at IS NULL)
	)
	SELECT
		total,
		event,
		processed_at
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT event, processed_at FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.IDs,
		req.ShipmentID,
		string(req.EventType),
		req.OnlyNew,
	)
	if err != nil {
		return storage.ListBrokerEventsResult{}, err
	}
	defer rows.Close()

	res := storage.ListBrokerEventsResult{Records: make([]model.BrokerEventMessage, 0)}
	for rows.Next() {
		var total *int
		var event *model.BrokerEventMessage
		var processedAt *int64

		if err := rows.Scan(&total, &event, &processedAt); err != nil {
			return storage.ListBrokerEventsResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if event != nil {
			event.ProcessedAt = model.ProcessingStateFromUnix(processedAt)
			res.Records = append(res.Records, *event)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListBrokerEventsResult{}, err
	}

	return res, nil
}

func (s *_Storage) MarkBrokerEventProcessed(ctx context.Context, tx storage.Tx, ts int64, id string) (bool, error) {
	query := `UPDATE broker_event SET processed_at = $2, updated_at = $2 WHERE id = $1 AND processed_at IS NULL`
	result, err := tx.Exec(ctx, query, id, ts)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
