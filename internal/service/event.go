package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	events    ports.EventRepo
	users     ports.UserRepo
	images    ports.ImageStore
	notifier  ports.EventNotifier
	publisher ports.LifecyclePublisher
	grid      domain.BoothGrid
	loc       *time.Location
	logger    logger.Logger
	now       func() time.Time
}

func NewEventService(
	events ports.EventRepo,
	users ports.UserRepo,
	images ports.ImageStore,
	notifier ports.EventNotifier,
	publisher ports.LifecyclePublisher,
	grid domain.BoothGrid,
	loc *time.Location,
	logger logger.Logger,
) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		events:    events,
		users:     users,
		images:    images,
		notifier:  notifier,
		publisher: publisher,
		grid:      grid,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, sess *domain.Session, in domain.EventInput) (*domain.Event, error) {
	if err := requireRole(sess, domain.RoleExhibitor); err != nil {
		return nil, err
	}

	now := s.now()
	form, v := parseEventForm(in, now, s.loc, s.grid, nil)
	id := uuid.New().String()

	if err := v.Err(); err != nil {
		return nil, err
	}

	image, err := s.storeImage(ctx, id, in.Image)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:            id,
		Title:         form.Title,
		Description:   form.Description,
		Datetime:      form.Datetime,
		Location:      form.Location,
		Category:      form.Category,
		Capacity:      form.Capacity,
		Price:         form.Price,
		Image:         image,
		ExhibitorID:   sess.User.ID,
		ExhibitorName: sess.User.Name,
		CompanyName:   sess.User.Company(),
		Attendees:     []string{},
		Booths:        form.Booths.Reserve(now, nil),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	// Мероприятие уже сохранено: ошибку обновления профиля только логируем.
	if err = s.users.AppendEvent(ctx, sess.User.ID, event.ID); err != nil {
		s.logger.Error("failed to append event to exhibitor",
			logger.String("event_id", event.ID),
			logger.String("user_id", sess.User.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("exhibitor_id", event.ExhibitorID),
		logger.Int("booths", len(event.Booths)),
	)

	s.publish(ctx, domain.LifecycleEventCreated, event.ID, sess.User.ID, now)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, sess *domain.Session, id string, in domain.EventInput) (*domain.Event, error) {
	if err := requireRole(sess, domain.RoleExhibitor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	current, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !sess.CanManage(current) {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	form, v := parseEventForm(in, now, s.loc, s.grid, current)

	// Отклонённая правка не должна ничего выгружать в хранилище изображений.
	if form.Capacity > 0 && form.Capacity < len(current.Attendees) {
		v.Add("capacity", capacityBelowAttendeesMsg(len(current.Attendees)))
	}
	newImage := in.Image != "" && in.Image != current.Image
	if in.RemoveImage && newImage {
		v.Add("image", "either upload a new image or remove the current one")
	}

	if err = v.Err(); err != nil {
		return nil, err
	}

	image := current.Image
	switch {
	case in.RemoveImage:
		image = ""
	case newImage:
		if image, err = s.storeImage(ctx, id, in.Image); err != nil {
			return nil, err
		}
	}

	updated, err := s.events.Update(ctx, id, func(e *domain.Event) error {
		if !sess.CanManage(e) {
			return domain.ErrForbidden
		}
		if form.Capacity < len(e.Attendees) {
			return capacityBelowAttendees(len(e.Attendees))
		}

		e.Title = form.Title
		e.Description = form.Description
		e.Datetime = form.Datetime
		e.Location = form.Location
		e.Category = form.Category
		e.Capacity = form.Capacity
		e.Price = form.Price
		e.Image = image
		e.Booths = form.Booths.Reserve(now, e.Booths)
		e.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edit event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", id),
		logger.String("user_id", sess.User.ID),
	)

	s.publish(ctx, domain.LifecycleEventUpdated, id, sess.User.ID, now)

	return updated, nil
}

// Delete removes exactly one event. Attendee references are left dangling.
func (s *EventService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireRole(sess, domain.RoleExhibitor, domain.RoleAdmin); err != nil {
		return err
	}

	current, err := s.events.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !sess.CanManage(current) {
		return domain.ErrForbidden
	}

	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("user_id", sess.User.ID),
		logger.Int("attendees", len(deleted.Attendees)),
	)

	if len(deleted.Attendees) > 0 {
		go s.notifyDeleted(context.WithoutCancel(ctx), deleted)
	}
	s.publish(ctx, domain.LifecycleEventDeleted, id, sess.User.ID, s.now())

	return nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if !filter.Category.Valid() {
		v := domain.NewValidationError()
		v.Add("category", "unknown category")
		return nil, v
	}

	now := s.now()
	events, err := s.events.List(ctx, func(e *domain.Event) bool {
		return filter.Match(e, now)
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Register(ctx context.Context, sess *domain.Session, id string) (*domain.Event, error) {
	if err := requireRole(sess, domain.RoleAttendee); err != nil {
		return nil, err
	}

	event, err := s.events.AddAttendee(ctx, id, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("register attendee: %w", err)
	}

	s.logger.Info("attendee registered",
		logger.String("event_id", id),
		logger.String("user_id", sess.User.ID),
	)

	exhibitor, err := s.users.GetByID(ctx, event.ExhibitorID)
	if err != nil {
		s.logger.Error("failed to get exhibitor for notification",
			logger.String("user_id", event.ExhibitorID),
			logger.String("error", err.Error()),
		)
	} else {
		go s.notifier.NotifyAttendeeRegistered(context.WithoutCancel(ctx), exhibitor, sess.User, event)
	}

	s.publish(ctx, domain.LifecycleAttendeeRegistered, id, sess.User.ID, s.now())

	return event, nil
}

func (s *EventService) Unregister(ctx context.Context, sess *domain.Session, id string) (*domain.Event, error) {
	if err := requireRole(sess, domain.RoleAttendee); err != nil {
		return nil, err
	}

	event, err := s.events.RemoveAttendee(ctx, id, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("unregister attendee: %w", err)
	}

	s.logger.Info("attendee unregistered",
		logger.String("event_id", id),
		logger.String("user_id", sess.User.ID),
	)

	s.publish(ctx, domain.LifecycleAttendeeUnregistered, id, sess.User.ID, s.now())

	return event, nil
}

// ListRegistered returns the events the session user is registered for.
func (s *EventService) ListRegistered(ctx context.Context, sess *domain.Session) ([]*domain.Event, error) {
	if !sess.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.List(ctx, domain.EventFilter{AttendeeID: sess.User.ID})
}

// storeImage runs after field validation so nothing is uploaded for a rejected form.
// Every upload gets its own key under the event id, so a stored URL never changes content.
func (s *EventService) storeImage(ctx context.Context, id, image string) (string, error) {
	stored, err := s.images.Store(ctx, id+"/"+uuid.New().String(), image)
	if err != nil {
		if v := imageFieldError(err); v != nil {
			return "", v
		}
		return "", fmt.Errorf("store image: %w", err)
	}
	return stored, nil
}

func (s *EventService) notifyDeleted(ctx context.Context, event *domain.Event) {
	for _, id := range event.Attendees {
		attendee, err := s.users.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("skip deletion notice",
				logger.String("user_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.notifier.NotifyEventDeleted(ctx, attendee, event)
	}
}

func (s *EventService) publish(ctx context.Context, kind domain.LifecycleKind, eventID, userID string, at time.Time) {
	go s.publisher.Publish(context.WithoutCancel(ctx), domain.LifecycleMessage{
		Kind:       kind,
		EventID:    eventID,
		UserID:     userID,
		OccurredAt: at.UTC(),
	})
}

func requireRole(sess *domain.Session, roles ...domain.Role) error {
	if !sess.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if !sess.HasRole(roles...) {
		return domain.ErrForbidden
	}
	return nil
}
