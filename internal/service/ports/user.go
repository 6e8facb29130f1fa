package ports

import (
	"context"

	"github.com/stpnv0/ExpoBooker/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	AppendEvent(ctx context.Context, userID, eventID string) error
}
