package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoothGrid_IDs(t *testing.T) {
	g := NewBoothGrid(2, 3)

	assert.Equal(t, 6, g.Size())
	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, g.IDs())
}

func TestBoothGrid_Contains(t *testing.T) {
	g := NewBoothGrid(4, 6)

	for _, id := range []string{"A1", "D6", "C3"} {
		assert.True(t, g.Contains(id), id)
	}
	for _, id := range []string{"", "A", "A0", "A7", "E1", "a1", "A01", "A-1", "1A", "A1x"} {
		assert.False(t, g.Contains(id), id)
	}
}

func TestBoothSelection_ToggleTwiceIsIdentity(t *testing.T) {
	s := NewBoothGrid(4, 6).NewSelection()
	require.NoError(t, s.Select("A1"))

	on, err := s.Toggle("B2")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = s.Toggle("B2")
	require.NoError(t, err)
	assert.False(t, on)

	assert.Equal(t, []string{"A1"}, s.IDs())
}

func TestBoothSelection_SelectDeselectRestores(t *testing.T) {
	s := NewBoothGrid(4, 6).NewSelection()
	require.NoError(t, s.Select("C1"))
	before := s.IDs()

	require.NoError(t, s.Select("A4"))
	require.NoError(t, s.Select("A4"))
	assert.Equal(t, 2, s.Len())
	s.Deselect("A4")

	assert.Equal(t, before, s.IDs())
}

func TestBoothSelection_UnknownBooth(t *testing.T) {
	s := NewBoothGrid(4, 6).NewSelection()

	assert.ErrorIs(t, s.Select("Z1"), ErrUnknownBooth)
	_, err := s.Toggle("A9")
	assert.ErrorIs(t, err, ErrUnknownBooth)
	assert.Zero(t, s.Len())

	_, err = NewBoothGrid(4, 6).SelectAll([]string{"A1", "Q2"})
	assert.ErrorIs(t, err, ErrUnknownBooth)
}

func TestBoothSelection_IDsInGridOrder(t *testing.T) {
	s, err := NewBoothGrid(4, 6).SelectAll([]string{"D6", "A2", "B1", "A2"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A2", "B1", "D6"}, s.IDs())
}

func TestBoothSelection_Reserve(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := earlier.Add(48 * time.Hour)
	existing := []Booth{
		{ID: "A1", Status: BoothStatusOccupied, ReservedAt: earlier},
		{ID: "A2", Status: BoothStatusReserved, ReservedAt: earlier},
	}

	s, err := NewBoothGrid(4, 6).SelectAll([]string{"A1", "B1"})
	require.NoError(t, err)

	booths := s.Reserve(now, existing)

	assert.Equal(t, []Booth{
		{ID: "A1", Status: BoothStatusOccupied, ReservedAt: earlier},
		{ID: "B1", Status: BoothStatusReserved, ReservedAt: now},
	}, booths)
}

func TestBoothSelection_ReserveEmpty(t *testing.T) {
	booths := NewBoothGrid(4, 6).NewSelection().Reserve(time.Now(), nil)

	assert.NotNil(t, booths)
	assert.Empty(t, booths)
}
