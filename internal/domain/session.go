package domain

import "time"

// Session is the authenticated context of one request. A nil *Session is anonymous.
type Session struct {
	User      *User
	TokenID   string
	ExpiresAt time.Time
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

func (s *Session) HasRole(roles ...Role) bool {
	if !s.IsAuthenticated() {
		return false
	}
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}

func (s *Session) IsExhibitor() bool {
	return s.HasRole(RoleExhibitor)
}

func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}

func (s *Session) IsAttendee() bool {
	return s.HasRole(RoleAttendee)
}

// CanManage reports whether the session may edit or delete the event.
func (s *Session) CanManage(e *Event) bool {
	if s.IsAdmin() {
		return true
	}
	return s.IsExhibitor() && e.ExhibitorID == s.User.ID
}

type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}
