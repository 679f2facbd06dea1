package sqlite

import (
	"context"
	"database/sql"

	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
)

// StoreBrokerEvents replaces any event with the same id or the same shipment
// id and event type.
func (s *_Storage) StoreBrokerEvents(ctx context.Context, tx storage.Tx, ts int64, events ...model.BrokerEventMessage) error {
	query := `
REPLACE INTO broker_event (id, shipment_id, event_type, event, processed_at, created_at, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?6)
`
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			query,
			event.ID,
			event.ShipmentID,
			string(event.Situation.Event),
			string(data),
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
	ids, err := json.Marshal(nonNil(req.IDs))
	if err != nil {
		return storage.ListBrokerEventsResult{}, err
	}

	filter := `
	FROM broker_event
	WHERE
		(json_array_length(?1) = 0 OR id IN (SELECT value FROM json_each(?1))) AND
		(?2 = '' OR shipment_id = ?2) AND
		(?3 = '' OR event_type = ?3) AND
		(NOT ?4 OR processed_at IS NULL)
	`
	args := []any{string(ids), req.ShipmentID, string(req.EventType), req.OnlyNew}

	res := storage.ListBrokerEventsResult{Records: make([]model.BrokerEventMessage, 0)}
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) `+filter, args...).Scan(&res.Total); err != nil {
		return storage.ListBrokerEventsResult{}, err
	}

	rows, err := tx.Query(ctx, `SELECT event, processed_at `+filter+` ORDER BY rec_id ASC LIMIT ?5 OFFSET ?6`, append(args, req.Limit, req.Offset)...)
	if err != nil {
		return storage.ListBrokerEventsResult{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var data string
		var processedAt sql.NullInt64
		if err := rows.Scan(&data, &processedAt); err != nil {
			return storage.ListBrokerEventsResult{}, err
		}

		var event model.BrokerEventMessage
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			return storage.ListBrokerEventsResult{}, err
		}
		event.ProcessedAt = processingState(processedAt)
		res.Records = append(res.Records, event)
	}
	if err := rows.Err(); err != nil {
		return storage.ListBrokerEventsResult{}, err
	}

	return res, nil
}

func (s *_Storage) MarkBrokerEventProcessed(ctx context.Context, tx storage.Tx, ts int64, id string) (bool, error) {
	query := `UPDATE broker_event SET processed_at = ?2, updated_at = ?2 WHERE id = ?1 AND processed_at IS NULL`
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
