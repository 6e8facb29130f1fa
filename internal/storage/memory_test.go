package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_PutCopiesValue(t *testing.T) {
	s := NewMemoryStore()
	value := []byte(`[1]`)

	require.NoError(t, s.Put(context.Background(), "k", value))
	value[1] = '2'

	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestMemoryStore_Update_AbsentKeyGetsNil(t *testing.T) {
	s := NewMemoryStore()

	var seen []byte
	err := s.Update(context.Background(), "k", func(current []byte) ([]byte, error) {
		seen = current
		return []byte(`[]`), nil
	})

	require.NoError(t, err)
	assert.Nil(t, seen)
	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Put(ctx, "k", []byte(`[]`))

	assert.ErrorIs(t, err, context.Canceled)
}
