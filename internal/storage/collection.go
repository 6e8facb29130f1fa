package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Collection is a typed view over one key holding a JSON array.
type Collection[T any] struct {
	store Store
	key   string
}

func NewCollection[T any](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load returns the whole collection, or an empty slice when nothing is stored yet.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", c.key, err)
	}
	return c.decode(raw)
}

// Save overwrites the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	raw, err := c.encode(items)
	if err != nil {
		return err
	}
	if err = c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("put %s: %w", c.key, err)
	}
	return nil
}

// Mutate loads the collection, applies fn and writes the result back atomically.
// When fn returns an error nothing is written.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	err := c.store.Update(ctx, c.key, func(current []byte) ([]byte, error) {
		items := []T{}
		if current != nil {
			decoded, err := c.decode(current)
			if err != nil {
				return nil, err
			}
			items = decoded
		}

		next, err := fn(items)
		if err != nil {
			return nil, err
		}
		return c.encode(next)
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) decode(raw []byte) ([]T, error) {
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) encode(items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.key, err)
	}
	return raw, nil
}
