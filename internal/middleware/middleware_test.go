package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T, resolver SessionResolver, guards ...ginext.HandlerFunc) http.Handler {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log), Authenticate(resolver, log))

	handlers := append(guards, func(c *ginext.Context) {
		sess := SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusOK, ginext.H{"user": ""})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"user": sess.User.ID})
	})
	r.GET("/probe", handlers...)
	r.GET("/panic", func(c *ginext.Context) { panic("boom") })

	return r
}

func do(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_Anonymous(t *testing.T) {
	r := setupRouter(t, mocks.NewMockSessionResolver(t))

	w := do(t, r, "/probe", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":""}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "good").
		Return(&domain.Session{User: &domain.User{ID: "u1", Role: domain.RoleAttendee}}, nil)
	r := setupRouter(t, resolver)

	w := do(t, r, "/probe", "good")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u1"}`, w.Body.String())
}

func TestAuthenticate_StaleTokenIsAnonymous(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "bad").
		Return(nil, fmt.Errorf("%w: token has been revoked", domain.ErrUnauthenticated))
	r := setupRouter(t, resolver)

	w := do(t, r, "/probe", "bad")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":""}`, w.Body.String())
}

func TestAuthenticate_StaleTokenStillGuarded(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "expired").
		Return(nil, fmt.Errorf("%w: token has expired", domain.ErrUnauthenticated))
	r := setupRouter(t, resolver, RequireAuth())

	w := do(t, r, "/probe", "expired")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ResolverFailure(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "tok").Return(nil, assert.AnError)
	r := setupRouter(t, resolver)

	w := do(t, r, "/probe", "tok")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth(t *testing.T) {
	r := setupRouter(t, mocks.NewMockSessionResolver(t), RequireAuth())

	w := do(t, r, "/probe", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	resolver := mocks.NewMockSessionResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "attendee").
		Return(&domain.Session{User: &domain.User{ID: "a", Role: domain.RoleAttendee}}, nil)
	resolver.EXPECT().Resolve(mock.Anything, "exhibitor").
		Return(&domain.Session{User: &domain.User{ID: "x", Role: domain.RoleExhibitor}}, nil)
	r := setupRouter(t, resolver, RequireRole(domain.RoleExhibitor, domain.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, do(t, r, "/probe", "").Code)
	assert.Equal(t, http.StatusForbidden, do(t, r, "/probe", "attendee").Code)

	w := do(t, r, "/probe", "exhibitor")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"x"}`, w.Body.String())
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	r := setupRouter(t, mocks.NewMockSessionResolver(t))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t, mocks.NewMockSessionResolver(t))

	w := do(t, r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer abc", token: "abc", ok: true},
		{header: "Basic abc", ok: false},
		{header: "Bearer ", ok: false},
		{header: "abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
