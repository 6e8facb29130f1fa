package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PostgresStore keeps every key as one row of kv_store (see migrations).
// A row with NULL value is a placeholder for a key that was locked but never written.
// Values go over the wire as text because lib/pq would send []byte as bytea.
type PostgresStore struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresStore(db *dbpg.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1 AND value IS NOT NULL`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get key: %w", err)
	}

	var value []byte
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("scan value: %w", err)
	}

	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.db.ExecWithRetry(ctx, s.strategy, query, key, string(value)); err != nil {
		return fmt.Errorf("put key: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Заводим строку-заглушку, чтобы было что блокировать даже для нового ключа
	placeholder := `INSERT INTO kv_store (key, value, updated_at)
					VALUES ($1, NULL, now())
					ON CONFLICT (key) DO NOTHING`
	if _, err = tx.ExecContext(ctx, placeholder, key); err != nil {
		return fmt.Errorf("ensure key row: %w", err)
	}

	var current []byte
	lockQuery := `SELECT value FROM kv_store WHERE key = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, key).Scan(&current); err != nil {
		return fmt.Errorf("lock key row: %w", err)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	updateQuery := `UPDATE kv_store SET value = $2, updated_at = now() WHERE key = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, key, string(next)); err != nil {
		return fmt.Errorf("write key: %w", err)
	}

	return tx.Commit()
}

func (s *PostgresStore) Close() error {
	return s.db.Master.Close()
}
