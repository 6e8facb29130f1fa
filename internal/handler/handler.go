package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	"github.com/stpnv0/ExpoBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Logout(ctx context.Context, sess *domain.Session) error
}

type EventSvc interface {
	Create(ctx context.Context, sess *domain.Session, in domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, sess *domain.Session, id string, in domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Register(ctx context.Context, sess *domain.Session, id string) (*domain.Event, error)
	Unregister(ctx context.Context, sess *domain.Session, id string) (*domain.Event, error)
	ListRegistered(ctx context.Context, sess *domain.Session) ([]*domain.Event, error)
}

type DashboardSvc interface {
	Exhibitor(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error)
	Admin(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error)
}

type UserSvc interface {
	Me(ctx context.Context, sess *domain.Session) (*domain.User, error)
	List(ctx context.Context, sess *domain.Session) ([]*domain.User, error)
}

type Handler struct {
	authService      AuthSvc
	eventService     EventSvc
	dashboardService DashboardSvc
	userService      UserSvc
	grid             domain.BoothGrid
}

func NewHandler(
	authService AuthSvc,
	eventService EventSvc,
	dashboardService DashboardSvc,
	userService UserSvc,
	grid domain.BoothGrid,
) *Handler {
	return &Handler{
		authService:      authService,
		eventService:     eventService,
		dashboardService: dashboardService,
		userService:      userService,
		grid:             grid,
	}
}

// eventID читает :id и отвечает 400, если это не UUID.
func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func session(c *ginext.Context) *domain.Session {
	return middleware.SessionFrom(c)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	h.handleFormError(c, err, "internal server error")
}

// handleFormError отвечает как handleError, но заменяет текст 500 на сообщение формы.
func (h *Handler) handleFormError(c *ginext.Context, err error, internalMsg string) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrValidation.Error(), Fields: verr.Fields})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventExists),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrNotRegistered),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalMsg})
	}
}
