package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schemaSQL string

type _Storage struct {
	db *sql.DB
}

type _TxWrapper struct {
	tx *sql.Tx
}

type _RowWrapper struct {
	row *sql.Row
}

type _RowsWrapper struct {
	rows *sql.Rows
}

type _ResultWrapper struct {
	result sql.Result
}

// NewStorageWithDB creates the tables if they do not exist yet.
func NewStorageWithDB(db *sql.DB) (*_Storage, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &_Storage{db: db}, nil
}

func NewStorageWithConfig(config util.SqliteDatabaseConfig) (*_Storage, error) {
	db, err := util.NewSqliteDB(config)
	if err != nil {
		return nil, err
	}

	s, err := NewStorageWithDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *_Storage) Close() {
	_ = s.db.Close()
}

func (tx *_TxWrapper) Commit(ctx context.Context) error {
	return tx.tx.Commit()
}

func (tx *_TxWrapper) Rollback(ctx context.Context) error {
	return tx.tx.Rollback()
}

func (tx *_TxWrapper) Exec(ctx context.Context, sql string, args ...any) (storage.Result, error) {
	result, err := tx.tx.ExecContext(ctx, sql, args...)
	if err != nil {
		logrus.Errorf("Fail to exec. %v", err)
		return nil, err
	}
	return &_ResultWrapper{result}, nil
}

func (tx *_TxWrapper) Query(ctx context.Context, sql string, args ...any) (storage.Rows, error) {
	rows, err := tx.tx.QueryContext(ctx, sql, args...)
	if err != nil {
		logrus.Errorf("Fail to query. %v", err)
		return nil, err
	}
	return &_RowsWrapper{rows}, nil
}

func (tx *_TxWrapper) QueryRow(ctx context.Context, sql string, args ...any) storage.Row {
	return &_RowWrapper{tx.tx.QueryRowContext(ctx, sql, args...)}
}

func (r *_ResultWrapper) RowsAffected() (int64, error) {
	return r.result.RowsAffected()
}

func (r *_RowsWrapper) Close() {
	_ = r.rows.Close()
}

func (r *_RowsWrapper) Err() error {
	return r.rows.Err()
}

func (r *_RowsWrapper) Next() bool {
	return r.rows.Next()
}

func (r *_RowsWrapper) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *_RowWrapper) Scan(dest ...any) error {
	return r.row.Scan(dest...)
}

// CreateTx starts a transaction. SQLite serializes writers on its own, so the
// isolation options are not forwarded to the driver.
func (s *_Storage) CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logrus.Errorf("Fail to create transaction. %v", err)
		return nil, ctx, err
	}
	wrapper := &_TxWrapper{tx}
	return wrapper, context.WithValue(ctx, storage.TRANSACTION, storage.Tx(wrapper)), nil
}
