package ports

import (
	"time"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/session"
)

type TokenManager interface {
	Issue(user *domain.User) (string, time.Time, error)
	Parse(token string) (*session.Claims, error)
	Revoke(tokenID string, expiresAt time.Time)
}
