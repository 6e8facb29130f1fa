package domain

import (
	"fmt"
	"strconv"
	"time"
)

type BoothStatus string

const (
	BoothStatusReserved BoothStatus = "reserved"
	BoothStatusOccupied BoothStatus = "occupied"
)

type Booth struct {
	ID         string      `json:"id"`
	Status     BoothStatus `json:"status"`
	ReservedAt time.Time   `json:"reservedAt"`
}

// BoothGrid is the fixed floor layout every event draws its booths from.
// Booths are labelled by row letter and column number: A1, A2, ..., B1, ...
type BoothGrid struct {
	Rows    int
	Columns int
}

func NewBoothGrid(rows, columns int) BoothGrid {
	return BoothGrid{Rows: rows, Columns: columns}
}

func (g BoothGrid) Size() int {
	return g.Rows * g.Columns
}

func (g BoothGrid) Label(row, column int) string {
	return fmt.Sprintf("%c%d", 'A'+row, column+1)
}

// IDs returns every booth id in row-major order.
func (g BoothGrid) IDs() []string {
	ids := make([]string, 0, g.Size())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			ids = append(ids, g.Label(r, c))
		}
	}
	return ids
}

func (g BoothGrid) Contains(id string) bool {
	if len(id) < 2 {
		return false
	}
	row := int(id[0]) - 'A'
	column, err := strconv.Atoi(id[1:])
	if err != nil {
		return false
	}
	return row >= 0 && row < g.Rows && column >= 1 && column <= g.Columns && g.Label(row, column-1) == id
}

// BoothSelection is the set of booths picked on the grid while filling the event form.
type BoothSelection struct {
	grid     BoothGrid
	selected map[string]struct{}
}

func (g BoothGrid) NewSelection() *BoothSelection {
	return &BoothSelection{grid: g, selected: make(map[string]struct{})}
}

// SelectAll builds a selection from submitted ids. Duplicates collapse into one booth.
func (g BoothGrid) SelectAll(ids []string) (*BoothSelection, error) {
	s := g.NewSelection()
	for _, id := range ids {
		if err := s.Select(id); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *BoothSelection) check(id string) error {
	if !s.grid.Contains(id) {
		return fmt.Errorf("%w: %q", ErrUnknownBooth, id)
	}
	return nil
}

func (s *BoothSelection) Select(id string) error {
	if err := s.check(id); err != nil {
		return err
	}
	s.selected[id] = struct{}{}
	return nil
}

func (s *BoothSelection) Deselect(id string) {
	delete(s.selected, id)
}

// Toggle flips membership of one booth and reports whether it is selected afterwards.
func (s *BoothSelection) Toggle(id string) (bool, error) {
	if err := s.check(id); err != nil {
		return false, err
	}
	if s.IsSelected(id) {
		s.Deselect(id)
		return false, nil
	}
	s.selected[id] = struct{}{}
	return true, nil
}

func (s *BoothSelection) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *BoothSelection) Len() int {
	return len(s.selected)
}

// IDs returns the selected ids in grid order.
func (s *BoothSelection) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, id := range s.grid.IDs() {
		if s.IsSelected(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Reserve materialises the selection into booth records. Booths found in
// existing keep their status and reservation time.
func (s *BoothSelection) Reserve(now time.Time, existing []Booth) []Booth {
	prev := make(map[string]Booth, len(existing))
	for _, b := range existing {
		prev[b.ID] = b
	}

	booths := make([]Booth, 0, s.Len())
	for _, id := range s.IDs() {
		if b, ok := prev[id]; ok {
			booths = append(booths, b)
			continue
		}
		booths = append(booths, Booth{
			ID:         id,
			Status:     BoothStatusReserved,
			ReservedAt: now,
		})
	}
	return booths
}
