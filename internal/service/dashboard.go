package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/service/ports"
)

type DashboardService struct {
	events ports.EventRepo
	users  ports.UserRepo
	now    func() time.Time
}

func NewDashboardService(events ports.EventRepo, users ports.UserRepo) *DashboardService {
	return &DashboardService{events: events, users: users, now: time.Now}
}

// Exhibitor aggregates the events owned by the session user.
func (s *DashboardService) Exhibitor(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error) {
	if err := requireRole(sess, domain.RoleExhibitor); err != nil {
		return nil, err
	}

	owner := sess.User.ID
	events, err := s.events.List(ctx, func(e *domain.Event) bool { return e.ExhibitorID == owner })
	if err != nil {
		return nil, fmt.Errorf("list exhibitor events: %w", err)
	}

	return &domain.Dashboard{
		Stats:  domain.Aggregate(events, s.now()),
		Events: events,
	}, nil
}

func (s *DashboardService) Admin(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	counts := domain.CountUsers(users)

	return &domain.Dashboard{
		Stats:  domain.Aggregate(events, s.now()),
		Events: events,
		Users:  &counts,
	}, nil
}
