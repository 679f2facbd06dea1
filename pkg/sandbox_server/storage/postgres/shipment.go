package postgres

import (
	"context"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
)

func (s *_Storage) StoreShipments(ctx context.Context, tx storage.Tx, ts int64, shipments ...model.TmsShipment) error {
	query := `
INSERT INTO tms_shipment (id, shipment, processed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (id) DO UPDATE SET
	shipment = excluded.shipment,
	processed_at = excluded.processed_at,
	updated_at = excluded.updated_at
`
	for _, shipment := range shipments {
		_, err := tx.Exec(
			ctx,
			query,
			shipment.ID,
			shipment,
			shipment.ProcessedAt.Unix(),
			ts,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *_Storage) ListShipments(ctx context.Context, tx storage.Tx, req storage.ListShipmentsRequest) (storage.ListShipmentsResult, error) {
	query := `
	WITH filtered_record AS (
		SELECT
			rec_id,
			shipment,
			processed_at
		FROM tms_shipment
		WHERE
			(COALESCE(array_length($3::TEXT[], 1), 0) = 0 OR id = ANY($3))
	)
	SELECT
		total,
		shipment,
		processed_at
	FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
	FULL OUTER JOIN (SELECT shipment, processed_at FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
	`
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.IDs)
	if err != nil {
		return storage.ListShipmentsResult{}, err
	}
	defer rows.Close()

	res := storage.ListShipmentsResult{Records: make([]model.TmsShipment, 0)}
	for rows.Next() {
		var total *int
		var shipment *model.TmsShipment
		var processedAt *int64

		if err := rows.Scan(&total, &shipment, &processedAt); err != nil {
			return storage.ListShipmentsResult{}, err
		}
		if total != nil {
			res.Total = *total
		}
		if shipment != nil {
			shipment.ProcessedAt = model.ProcessingStateFromUnix(processedAt)
			res.Records = append(res.Records, *shipment)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListShipmentsResult{}, err
	}

	return res, nil
}

func (s *_Storage) MarkShipmentProcessed(ctx context.Context, tx storage.Tx, ts int64, id string) (bool, error) {
	query := `UPDATE tms_shipment SET processed_at = $2, updated_at = $2 WHERE id = $1 AND processed_at IS NULL`
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
