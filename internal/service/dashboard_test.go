package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Exhibitor_CountsOwnEvents(t *testing.T) {
	f := newEventFixture(t)
	x := f.addUser(t, exhibitor("x"))
	y := f.addUser(t, exhibitor("y"))
	f.passImages()
	f.ignorePublish()

	for i := 0; i < 3; i++ {
		createEvent(t, f, x, validInput())
	}
	createEvent(t, f, y, validInput())

	svc := NewDashboardService(f.events, f.users)
	svc.now = func() time.Time { return testNow }

	dash, err := svc.Exhibitor(context.Background(), x)

	require.NoError(t, err)
	assert.Equal(t, 3, dash.Stats.TotalEvents)
	assert.Equal(t, 3, dash.Stats.UpcomingEvents)
	assert.Equal(t, 6, dash.Stats.TotalBooths)
	assert.Equal(t, 0, dash.Stats.OccupiedBooths)
	assert.Len(t, dash.Events, 3)
	assert.Nil(t, dash.Users)
	for _, e := range dash.Events {
		assert.Equal(t, "x", e.ExhibitorID)
	}
}

func TestDashboardService_Admin(t *testing.T) {
	f := newEventFixture(t)
	x := f.addUser(t, exhibitor("x"))
	f.addUser(t, attendee("a1"))
	f.addUser(t, attendee("a2"))
	root := f.addUser(t, admin("root"))
	f.passImages()
	f.ignorePublish()
	e := createEvent(t, f, x, validInput())
	_, err := f.events.AddAttendee(context.Background(), e.ID, "a1")
	require.NoError(t, err)

	svc := NewDashboardService(f.events, f.users)
	svc.now = func() time.Time { return testNow }

	dash, err := svc.Admin(context.Background(), root)

	require.NoError(t, err)
	assert.Equal(t, 1, dash.Stats.TotalEvents)
	assert.Equal(t, 1, dash.Stats.TotalAttendees)
	require.NotNil(t, dash.Users)
	assert.Equal(t, domain.UserCounts{Total: 4, Attendees: 2, Exhibitors: 1, Admins: 1}, *dash.Users)

	_, err = svc.Exhibitor(context.Background(), root)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.Admin(context.Background(), x)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.Admin(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestDashboardService_StorageError(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	svc := NewDashboardService(events, mocks.NewMockUserRepo(t))

	events.EXPECT().List(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.Exhibitor(context.Background(), &domain.Session{User: exhibitor("x")})

	assert.ErrorIs(t, err, assert.AnError)
}
