package ports

import (
	"context"

	"github.com/stpnv0/ExpoBooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, match func(*domain.Event) bool) ([]*domain.Event, error)
	Update(ctx context.Context, id string, fn func(e *domain.Event) error) (*domain.Event, error)
	Delete(ctx context.Context, id string) (*domain.Event, error)
	AddAttendee(ctx context.Context, eventID, userID string) (*domain.Event, error)
	RemoveAttendee(ctx context.Context, eventID, userID string) (*domain.Event, error)
}
