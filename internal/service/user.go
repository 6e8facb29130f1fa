package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Me(ctx context.Context, sess *domain.Session) (*domain.User, error) {
	if !sess.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.GetByID(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, sess *domain.Session) ([]*domain.User, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
