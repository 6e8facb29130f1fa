package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const sessionKey = "session"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Authenticate resolves the bearer token into a session. Requests without a valid token stay anonymous.
func Authenticate(resolver SessionResolver, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			// Просроченный или отозванный токен: запрос идёт дальше анонимно,
			// 401 на защищённых маршрутах вернут RequireAuth/RequireRole.
			if errors.Is(err, domain.ErrUnauthenticated) {
				log.LogAttrs(c.Request.Context(), logger.DebugLevel, "stale token ignored",
					logger.String("error", err.Error()),
				)
				c.Next()
				return
			}
			c.Set(errorKey, err.Error())
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "failed to resolve session",
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		WithSession(c, sess)
		c.Next()
	}
}

func WithSession(c *ginext.Context, sess *domain.Session) {
	c.Set(sessionKey, sess)
}

// SessionFrom returns the session set by Authenticate, or nil for anonymous requests.
func SessionFrom(c *ginext.Context) *domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*domain.Session)
	return sess
}

func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !SessionFrom(c).IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		sess := SessionFrom(c)
		if !sess.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}
		if !sess.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
