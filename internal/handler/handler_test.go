package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/ExpoBooker/internal/handler/mocks"
	"github.com/stpnv0/ExpoBooker/internal/middleware"
	"github.com/stpnv0/ExpoBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testEnv struct {
	auth       *hmocks.MockAuthSvc
	events     *hmocks.MockEventSvc
	dashboards *hmocks.MockDashboardSvc
	users      *hmocks.MockUserSvc
	router     http.Handler
}

// setupRouter собирует настоящий роутер; sess подставляется вместо Authenticate.
func setupRouter(t *testing.T, sess *domain.Session) *testEnv {
	t.Helper()
	env := &testEnv{
		auth:       hmocks.NewMockAuthSvc(t),
		events:     hmocks.NewMockEventSvc(t),
		dashboards: hmocks.NewMockDashboardSvc(t),
		users:      hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(env.auth, env.events, env.dashboards, env.users, domain.NewBoothGrid(2, 3))
	env.router = router.InitRouter("test", h, func(c *ginext.Context) {
		if sess != nil {
			middleware.WithSession(c, sess)
		}
		c.Next()
	})
	return env
}

func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{
		User:      &domain.User{ID: uuid.NewString(), Name: "Test", Email: "t@example.com", Role: role},
		TokenID:   uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sampleEvent() *domain.Event {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:            uuid.NewString(),
		Title:         "Tech Expo",
		Description:   "Hardware and software",
		Datetime:      time.Date(2026, 6, 10, 14, 30, 0, 0, time.UTC),
		Location:      "Hall 1",
		Category:      domain.CategoryExpo,
		Capacity:      5,
		Price:         1000,
		ExhibitorID:   "ex-1",
		ExhibitorName: "Alice",
		CompanyName:   "Acme",
		Attendees:     []string{"u-1"},
		Booths: []domain.Booth{
			{ID: "A1", Status: domain.BoothStatusReserved, ReservedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	env := setupRouter(t, nil)

	company := "Acme"
	env.auth.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in domain.RegisterInput) bool {
			return in.Role == domain.RoleExhibitor && in.CompanyName != nil && *in.CompanyName == company
		})).
		Return(&domain.AuthResult{
			User:      &domain.User{ID: "u1", Name: "Alice", Email: "a@example.com", Role: domain.RoleExhibitor, CompanyName: &company},
			Token:     "tok",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	w := env.do(t, http.MethodPost, "/api/auth/register", ginext.H{
		"name": "Alice", "email": "a@example.com", "password": "secret1",
		"role": "exhibitor", "company_name": company,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "exhibitor", resp.User.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	env := setupRouter(t, nil)
	env.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := env.do(t, http.MethodPost, "/api/auth/register", ginext.H{"name": "A", "email": "a@example.com", "password": "secret1"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupRouter(t, nil)
	env.auth.EXPECT().Login(mock.Anything, "a@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials)

	w := env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "a@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_MissingFields(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodPost, "/api/auth/login", ginext.H{"email": "a@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout_RequiresSession(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout_Success(t *testing.T) {
	sess := sessionFor(domain.RoleAttendee)
	env := setupRouter(t, sess)
	env.auth.EXPECT().Logout(mock.Anything, sess).Return(nil)

	w := env.do(t, http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)
	event := sampleEvent()

	env.events.EXPECT().
		Create(mock.Anything, sess, mock.MatchedBy(func(in domain.EventInput) bool {
			return in.Capacity == "5" && in.Price == "10.00" && len(in.SelectedBooths) == 1
		})).
		Return(event, nil)

	// capacity приходит числом, price строкой: оба варианта допустимы
	body := []byte(`{"title":"Tech Expo","description":"d","date":"2026-06-10","time":"14:30",
		"location":"Hall 1","category":"expo","capacity":5,"price":"10.00","selected_booths":["A1"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.ID)
	assert.Equal(t, "10.00", resp.Price)
	assert.Equal(t, "2026-06-10", resp.Date)
	assert.Equal(t, "14:30", resp.Time)
	assert.Equal(t, 4, resp.SpotsLeft)
	require.Len(t, resp.Booths, 1)
	assert.Equal(t, "reserved", resp.Booths[0].Status)
}

func TestHandler_CreateEvent_ValidationFields(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)

	verr := domain.NewValidationError()
	verr.Add("title", "title is required")
	env.events.EXPECT().Create(mock.Anything, sess, mock.Anything).Return(nil, verr)

	w := env.do(t, http.MethodPost, "/api/events", dto.EventRequest{Title: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "title is required", resp.Fields["title"])
}

func TestHandler_CreateEvent_StorageFailure(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)
	env.events.EXPECT().Create(mock.Anything, sess, mock.Anything).Return(nil, errors.New("disk full"))

	w := env.do(t, http.MethodPost, "/api/events", dto.EventRequest{Title: "x"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, createFailedMsg, resp.Error)
}

func TestHandler_CreateEvent_WrongRole(t *testing.T) {
	env := setupRouter(t, sessionFor(domain.RoleAttendee))

	w := env.do(t, http.MethodPost, "/api/events", dto.EventRequest{Title: "x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_Anonymous(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodPost, "/api/events", dto.EventRequest{Title: "x"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_MalformedBody(t *testing.T) {
	env := setupRouter(t, sessionFor(domain.RoleExhibitor))

	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte(`{"capacity":[1]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)
	id := uuid.NewString()
	env.events.EXPECT().Update(mock.Anything, sess, id, mock.Anything).Return(nil, domain.ErrForbidden)

	w := env.do(t, http.MethodPut, "/api/events/"+id, dto.EventRequest{Title: "x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateEvent_AdminAllowed(t *testing.T) {
	sess := sessionFor(domain.RoleAdmin)
	env := setupRouter(t, sess)
	event := sampleEvent()
	env.events.EXPECT().Update(mock.Anything, sess, event.ID, mock.Anything).Return(event, nil)

	w := env.do(t, http.MethodPut, "/api/events/"+event.ID, dto.EventRequest{Title: "x"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateEvent_InvalidID(t *testing.T) {
	env := setupRouter(t, sessionFor(domain.RoleExhibitor))

	w := env.do(t, http.MethodPut, "/api/events/not-a-uuid", dto.EventRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)
	id := uuid.NewString()
	env.events.EXPECT().Delete(mock.Anything, sess, id).Return(nil)

	w := env.do(t, http.MethodDelete, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	sess := sessionFor(domain.RoleAdmin)
	env := setupRouter(t, sess)
	id := uuid.NewString()
	env.events.EXPECT().Delete(mock.Anything, sess, id).Return(domain.ErrEventNotFound)

	w := env.do(t, http.MethodDelete, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	env := setupRouter(t, nil)
	event := sampleEvent()
	env.events.EXPECT().Get(mock.Anything, event.ID).Return(event, nil)

	w := env.do(t, http.MethodGet, "/api/events/"+event.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tech Expo", resp.Title)
	assert.Equal(t, []string{"u-1"}, resp.Attendees)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Filters(t *testing.T) {
	env := setupRouter(t, nil)
	env.events.EXPECT().
		List(mock.Anything, domain.EventFilter{Category: domain.CategoryExpo, UpcomingOnly: true}).
		Return([]*domain.Event{sampleEvent()}, nil)

	w := env.do(t, http.MethodGet, "/api/events?category=expo&upcoming=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListEvents_Empty(t *testing.T) {
	env := setupRouter(t, nil)
	env.events.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(nil, nil)

	w := env.do(t, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListEvents_InvalidUpcoming(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodGet, "/api/events?upcoming=soon", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	sess := sessionFor(domain.RoleAttendee)
	env := setupRouter(t, sess)
	event := sampleEvent()
	env.events.EXPECT().Register(mock.Anything, sess, event.ID).Return(event, nil)

	w := env.do(t, http.MethodPost, "/api/events/"+event.ID+"/register", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RegisterForEvent_Conflicts(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{"already registered", domain.ErrAlreadyRegistered},
		{"full", domain.ErrEventFull},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sess := sessionFor(domain.RoleAttendee)
			env := setupRouter(t, sess)
			id := uuid.NewString()
			env.events.EXPECT().Register(mock.Anything, sess, id).Return(nil, tc.err)

			w := env.do(t, http.MethodPost, "/api/events/"+id+"/register", nil)

			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestHandler_RegisterForEvent_ExhibitorForbidden(t *testing.T) {
	env := setupRouter(t, sessionFor(domain.RoleExhibitor))

	w := env.do(t, http.MethodPost, "/api/events/"+uuid.NewString()+"/register", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UnregisterFromEvent_NotRegistered(t *testing.T) {
	sess := sessionFor(domain.RoleAttendee)
	env := setupRouter(t, sess)
	id := uuid.NewString()
	env.events.EXPECT().Unregister(mock.Anything, sess, id).Return(nil, domain.ErrNotRegistered)

	w := env.do(t, http.MethodDelete, "/api/events/"+id+"/register", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_MyEvents(t *testing.T) {
	sess := sessionFor(domain.RoleAttendee)
	env := setupRouter(t, sess)
	env.events.EXPECT().ListRegistered(mock.Anything, sess).Return([]*domain.Event{sampleEvent()}, nil)

	w := env.do(t, http.MethodGet, "/api/me/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Dashboards ---

func TestHandler_ExhibitorDashboard(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)
	env.dashboards.EXPECT().Exhibitor(mock.Anything, sess).Return(&domain.Dashboard{
		Stats:  domain.Stats{TotalEvents: 3, TotalAttendees: 2},
		Events: []*domain.Event{sampleEvent()},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/dashboard/exhibitor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Stats.TotalEvents)
	assert.Nil(t, resp.Users)
}

func TestHandler_AdminDashboard(t *testing.T) {
	sess := sessionFor(domain.RoleAdmin)
	env := setupRouter(t, sess)
	env.dashboards.EXPECT().Admin(mock.Anything, sess).Return(&domain.Dashboard{
		Users: &domain.UserCounts{Total: 4, Attendees: 2, Exhibitors: 1, Admins: 1},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/dashboard/admin", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Users)
	assert.Equal(t, 4, resp.Users.Total)
}

func TestHandler_AdminDashboard_ExhibitorForbidden(t *testing.T) {
	env := setupRouter(t, sessionFor(domain.RoleExhibitor))

	w := env.do(t, http.MethodGet, "/api/dashboard/admin", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Users ---

func TestHandler_Me(t *testing.T) {
	sess := sessionFor(domain.RoleAttendee)
	env := setupRouter(t, sess)
	env.users.EXPECT().Me(mock.Anything, sess).Return(sess.User, nil)

	w := env.do(t, http.MethodGet, "/api/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sess.User.ID, resp.ID)
	assert.Equal(t, []string{}, resp.Events)
}

func TestHandler_ListUsers(t *testing.T) {
	sess := sessionFor(domain.RoleAdmin)
	env := setupRouter(t, sess)
	env.users.EXPECT().List(mock.Anything, sess).Return([]*domain.User{sess.User}, nil)

	w := env.do(t, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Booths ---

func TestHandler_BoothGrid(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodGet, "/api/booths", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BoothGridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, [][]string{{"A1", "A2", "A3"}, {"B1", "B2", "B3"}}, resp.Layout)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	env := setupRouter(t, nil)
	id := uuid.NewString()
	env.events.EXPECT().Get(mock.Anything, id).Return(nil, errors.New("unexpected"))

	w := env.do(t, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandler_UpdateEvent_RemoveImagePassedThrough(t *testing.T) {
	sess := sessionFor(domain.RoleExhibitor)
	env := setupRouter(t, sess)
	event := sampleEvent()
	env.events.EXPECT().
		Update(mock.Anything, sess, event.ID, mock.MatchedBy(func(in domain.EventInput) bool { return in.RemoveImage })).
		Return(event, nil)

	w := env.do(t, http.MethodPut, "/api/events/"+event.ID, ginext.H{"title": "x", "remove_image": true})

	assert.Equal(t, http.StatusOK, w.Code)
}
