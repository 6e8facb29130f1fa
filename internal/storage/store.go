// Package storage is the persistence adapter: named JSON collections kept in a key-value store.
package storage

import (
	"context"
	"errors"
)

const (
	KeyEvents = "events"
	KeyUsers  = "users"
)

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrCorruptCollection = errors.New("stored collection is malformed")
)

// UpdateFunc receives the current value (nil when the key is absent) and returns the new one.
// Returning an error aborts the update and leaves the stored value unchanged.
type UpdateFunc func(current []byte) ([]byte, error)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// Update is an atomic read-modify-write of a single key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}
