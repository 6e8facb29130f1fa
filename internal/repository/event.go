package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/storage"
)

type EventRepository struct {
	events *storage.Collection[domain.Event]
}

func NewEventRepo(store storage.Store) *EventRepository {
	return &EventRepository{
		events: storage.NewCollection[domain.Event](store, storage.KeyEvents),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	err := r.events.Mutate(ctx, func(items []domain.Event) ([]domain.Event, error) {
		if indexOfEvent(items, e.ID) >= 0 {
			return nil, domain.ErrEventExists
		}
		return append(items, *e), nil
	})
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	items, err := r.events.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	i := indexOfEvent(items, id)
	if i < 0 {
		return nil, domain.ErrEventNotFound
	}

	return &items[i], nil
}

// List возвращает мероприятия в порядке хранения, отфильтрованные через match.
// nil match возвращает все записи.
func (r *EventRepository) List(ctx context.Context, match func(*domain.Event) bool) ([]*domain.Event, error) {
	items, err := r.events.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	res := make([]*domain.Event, 0, len(items))
	for i := range items {
		if match == nil || match(&items[i]) {
			res = append(res, &items[i])
		}
	}

	return res, nil
}

// Update применяет fn к мероприятию внутри одной атомарной мутации коллекции.
// Ошибка из fn отменяет запись и возвращается как есть (обернутой).
func (r *EventRepository) Update(ctx context.Context, id string, fn func(e *domain.Event) error) (*domain.Event, error) {
	var updated domain.Event
	err := r.events.Mutate(ctx, func(items []domain.Event) ([]domain.Event, error) {
		i := indexOfEvent(items, id)
		if i < 0 {
			return nil, domain.ErrEventNotFound
		}

		e := items[i]
		e.Attendees = slices.Clone(e.Attendees)
		e.Booths = slices.Clone(e.Booths)
		if err := fn(&e); err != nil {
			return nil, err
		}
		e.ID = id

		items[i] = e
		updated = e
		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return &updated, nil
}

// Delete удаляет ровно одну запись и возвращает ее для уведомлений.
func (r *EventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	var deleted domain.Event
	err := r.events.Mutate(ctx, func(items []domain.Event) ([]domain.Event, error) {
		i := indexOfEvent(items, id)
		if i < 0 {
			return nil, domain.ErrEventNotFound
		}
		deleted = items[i]
		return slices.Delete(items, i, i+1), nil
	})
	if err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}

	return &deleted, nil
}

// AddAttendee проверяет дубликат и вместимость в той же мутации, что и запись.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	e, err := r.Update(ctx, eventID, func(e *domain.Event) error {
		if e.HasAttendee(userID) {
			return domain.ErrAlreadyRegistered
		}
		if e.IsFull() {
			return domain.ErrEventFull
		}
		e.Attendees = append(e.Attendees, userID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add attendee: %w", err)
	}

	return e, nil
}

func (r *EventRepository) RemoveAttendee(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	e, err := r.Update(ctx, eventID, func(e *domain.Event) error {
		i := slices.Index(e.Attendees, userID)
		if i < 0 {
			return domain.ErrNotRegistered
		}
		e.Attendees = slices.Delete(e.Attendees, i, i+1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove attendee: %w", err)
	}

	return e, nil
}

func indexOfEvent(items []domain.Event, id string) int {
	return slices.IndexFunc(items, func(e domain.Event) bool { return e.ID == id })
}
