package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/repository"
	"github.com/stpnv0/ExpoBooker/internal/service/ports/mocks"
	"github.com/stpnv0/ExpoBooker/internal/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type eventFixture struct {
	svc       *EventService
	events    *repository.EventRepository
	users     *repository.UserRepository
	images    *mocks.MockImageStore
	notifier  *mocks.MockEventNotifier
	publisher *mocks.MockLifecyclePublisher
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	f := &eventFixture{
		events:    repository.NewEventRepo(store),
		users:     repository.NewUserRepo(store),
		images:    mocks.NewMockImageStore(t),
		notifier:  mocks.NewMockEventNotifier(t),
		publisher: mocks.NewMockLifecyclePublisher(t),
	}
	f.svc = NewEventService(
		f.events, f.users, f.images, f.notifier, f.publisher,
		domain.NewBoothGrid(4, 6), time.UTC, newTestLogger(t),
	)
	f.svc.now = func() time.Time { return testNow }
	return f
}

// ignorePublish принимает любые сообщения жизненного цикла.
func (f *eventFixture) ignorePublish() {
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Maybe()
}

func (f *eventFixture) expectPublish(kind domain.LifecycleKind) <-chan domain.LifecycleMessage {
	ch := make(chan domain.LifecycleMessage, 1)
	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(m domain.LifecycleMessage) bool { return m.Kind == kind })).
		Run(func(_ context.Context, msg domain.LifecycleMessage) { ch <- msg }).
		Once()
	return ch
}

func (f *eventFixture) passImages() {
	f.images.EXPECT().Store(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, image string) (string, error) { return image, nil }).
		Maybe()
}

func (f *eventFixture) addUser(t *testing.T, u *domain.User) *domain.Session {
	t.Helper()
	if u.Events == nil {
		u.Events = []string{}
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return &domain.Session{User: u, TokenID: "tok-" + u.ID, ExpiresAt: testNow.Add(time.Hour)}
}

func exhibitor(id string) *domain.User {
	company := "Acme " + id
	return &domain.User{
		ID:          id,
		Name:        "Exhibitor " + id,
		Email:       id + "@exhibitors.test",
		Role:        domain.RoleExhibitor,
		CompanyName: &company,
	}
}

func attendee(id string) *domain.User {
	return &domain.User{ID: id, Name: "Attendee " + id, Email: id + "@attendees.test", Role: domain.RoleAttendee}
}

func admin(id string) *domain.User {
	return &domain.User{ID: id, Name: "Admin " + id, Email: id + "@admins.test", Role: domain.RoleAdmin}
}

func validInput() domain.EventInput {
	return domain.EventInput{
		Title:          "Go Expo",
		Description:    "Everything Go",
		Date:           "2026-06-10",
		Time:           "14:30",
		Location:       "Hall A",
		Category:       "expo",
		Capacity:       "5",
		Price:          "10.00",
		SelectedBooths: []string{"A1", "B2"},
	}
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for async call")
	}
	var zero T
	return zero
}
