package domain

import "time"

type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleExhibitor Role = "exhibitor"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAttendee, RoleExhibitor, RoleAdmin:
		return true
	}
	return false
}

// User is the persisted record stored under the "users" key.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"passwordHash"`
	Role           Role      `json:"role"`
	CompanyName    *string   `json:"companyName,omitempty"`
	TelegramChatID *int64    `json:"telegramChatId,omitempty"`
	Events         []string  `json:"events"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Company returns the company name or an empty string for users without one.
func (u *User) Company() string {
	if u.CompanyName == nil {
		return ""
	}
	return *u.CompanyName
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           Role
	CompanyName    *string
	TelegramChatID *int64
}

type UserCounts struct {
	Total      int `json:"total"`
	Attendees  int `json:"attendees"`
	Exhibitors int `json:"exhibitors"`
	Admins     int `json:"admins"`
}

func CountUsers(users []*User) UserCounts {
	c := UserCounts{Total: len(users)}
	for _, u := range users {
		switch u.Role {
		case RoleAttendee:
			c.Attendees++
		case RoleExhibitor:
			c.Exhibitors++
		case RoleAdmin:
			c.Admins++
		}
	}
	return c
}
