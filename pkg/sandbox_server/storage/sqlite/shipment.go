package sqlite

import (
	"context"
	"database/sql"

	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
)

func (s *_Storage) StoreShipments(ctx context.Context, tx storage.Tx, ts int64, shipments ...model.TmsShipment) error {
	query := `REPLACE INTO tms_shipment (id, shipment, processed_at, created_at, updated_at) VALUES (?1, ?2, ?3, ?4, ?4)`
	for _, shipment := range shipments {
		data, err := json.Marshal(shipment)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, shipment.ID, string(data), shipment.ProcessedAt.Unix(), ts); err != nil {
			return err
		}
	}
	return nil
}

func (s *_Storage) ListShipments(ctx context.Context, tx storage.Tx, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	ids, err := json.Marshal(nonNil(req.IDs))
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}

	filter := `
	FROM tms_shipment
	WHERE
		(json_array_length(?1) = 0 OR id IN (SELECT value FROM json_each(?1)))
	`
	res := storage.ListShipmentsResult{Records: make([]model.TmsShipment, 0)}
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) `+filter, string(ids)).Scan(&res.Total); err != nil {
		return storage.ListShipmentsResult{}, err
	}

	rows, err := tx.Query(ctx, `SELECT shipment, processed_at `+filter+` ORDER BY rec_id ASC LIMIT ?2 OFFSET ?3`, string(ids), req.Limit, req.Offset)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var data string
		var processedAt sql.NullInt64
		if err := rows.Scan(&data, &processedAt); err != nil {
			return storage.ListShipmentsResult{}, err
		}

		var shipment model.TmsShipment
		if err := json.Unmarshal([]byte(data), &shipment); err != nil {
			return storage.ListShipmentsResult{}, err
		}
		shipment.ProcessedAt = processingState(processedAt)
		res.Records = append(res.Records, shipment)
	}
	if err := rows.Err(); err != nil {
		return storage.ListShipmentsResult{}, err
	}

	return res, nil
}

func (s *_Storage) MarkShipmentProcessed(ctx context.Context, tx storage.Tx, ts int64, id string) (bool, error) {
	query := `UPDATE tms_shipment SET processed_at = ?2, updated_at = ?2 WHERE id = ?1 AND processed_at IS NULL`
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

func processingState(ts sql.NullInt64) model.ProcessingState {
	if !ts.Valid {
		return model.Unprocessed()
	}
	return model.ProcessingStateFromUnix(&ts.Int64)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
