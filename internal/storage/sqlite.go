package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type kvEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_store"
}

// SQLiteStore is a single-file store for local runs. SQLite allows one writer at a
// time, so Update additionally serialises writers inside the process.
type SQLiteStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err = db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e kvEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("get key: %w", err)
	}
	return e.Value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return upsert(s.db.WithContext(ctx), key, value)
}

func (s *SQLiteStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []byte

		var e kvEntry
		err := tx.Where("key = ?", key).First(&e).Error
		switch {
		case err == nil:
			current = e.Value
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("read key: %w", err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		return upsert(tx, key, next)
	})
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	return sqlDB.Close()
}

func upsert(db *gorm.DB, key string, value []byte) error {
	e := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("upsert key: %w", err)
	}
	return nil
}
