package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/storage"
)

type UserRepository struct {
	users *storage.Collection[domain.User]
}

func NewUserRepo(store storage.Store) *UserRepository {
	return &UserRepository{
		users: storage.NewCollection[domain.User](store, storage.KeyUsers),
	}
}

// Create добавляет пользователя. Email сравнивается без учета регистра.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.users.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		if indexOfEmail(items, user.Email) >= 0 {
			return nil, domain.ErrEmailTaken
		}
		return append(items, *user), nil
	})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	items, err := r.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	i := slices.IndexFunc(items, func(u domain.User) bool { return u.ID == id })
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}

	return &items[i], nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	items, err := r.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	i := indexOfEmail(items, email)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}

	return &items[i], nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	items, err := r.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	res := make([]*domain.User, 0, len(items))
	for i := range items {
		res = append(res, &items[i])
	}

	return res, nil
}

// AppendEvent дописывает id мероприятия в список events пользователя.
func (r *UserRepository) AppendEvent(ctx context.Context, userID, eventID string) error {
	err := r.users.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		i := slices.IndexFunc(items, func(u domain.User) bool { return u.ID == userID })
		if i < 0 {
			return nil, domain.ErrUserNotFound
		}
		if !slices.Contains(items[i].Events, eventID) {
			items[i].Events = append(items[i].Events, eventID)
		}
		return items, nil
	})
	if err != nil {
		return fmt.Errorf("append user event: %w", err)
	}

	return nil
}

func indexOfEmail(items []domain.User, email string) int {
	email = strings.TrimSpace(email)
	return slices.IndexFunc(items, func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}
