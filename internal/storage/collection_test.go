package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection_Load_AbsentKeyIsEmpty(t *testing.T) {
	c := NewCollection[record](NewMemoryStore(), KeyEvents)

	items, err := c.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollection_SaveLoad_RoundTrip(t *testing.T) {
	c := NewCollection[record](NewMemoryStore(), KeyEvents)
	want := []record{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}

	require.NoError(t, c.Save(context.Background(), want))
	got, err := c.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCollection_Load_Malformed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), KeyEvents, []byte(`{"not":"an array"`)))
	c := NewCollection[record](store, KeyEvents)

	_, err := c.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptCollection)
	assert.Contains(t, err.Error(), KeyEvents)
}

func TestCollection_Mutate_ErrorLeavesStoreUntouched(t *testing.T) {
	c := NewCollection[record](NewMemoryStore(), KeyUsers)
	require.NoError(t, c.Save(context.Background(), []record{{ID: "1"}}))

	boom := errors.New("boom")
	err := c.Mutate(context.Background(), func(items []record) ([]record, error) {
		return append(items, record{ID: "2"}), boom
	})

	require.ErrorIs(t, err, boom)
	items, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCollection_Mutate_ConcurrentWritersKeepAllUpdates(t *testing.T) {
	c := NewCollection[record](NewMemoryStore(), KeyEvents)

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := c.Mutate(context.Background(), func(items []record) ([]record, error) {
				return append(items, record{ID: fmt.Sprint(i)}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	items, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, writers)
}

func TestCollection_Mutate_RemoveLeavesOthersUnchanged(t *testing.T) {
	store := NewMemoryStore()
	c := NewCollection[record](store, KeyEvents)
	require.NoError(t, c.Save(context.Background(), []record{
		{ID: "1", Name: "one"}, {ID: "2", Name: "two"}, {ID: "3", Name: "three"},
	}))

	err := c.Mutate(context.Background(), func(items []record) ([]record, error) {
		out := items[:0]
		for _, it := range items {
			if it.ID != "2" {
				out = append(out, it)
			}
		}
		return out, nil
	})
	require.NoError(t, err)

	raw, err := store.Get(context.Background(), KeyEvents)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"one"},{"id":"3","name":"three"}]`, string(raw))
}
