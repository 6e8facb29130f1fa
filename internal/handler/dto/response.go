package dto

import (
	"time"

	"github.com/stpnv0/ExpoBooker/internal/domain"
)

type BoothResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	ReservedAt string `json:"reserved_at"`
}

type EventResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Datetime      string          `json:"datetime"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Location      string          `json:"location"`
	Category      string          `json:"category"`
	Capacity      int             `json:"capacity"`
	SpotsLeft     int             `json:"spots_left"`
	Price         string          `json:"price"`
	Image         string          `json:"image,omitempty"`
	ExhibitorID   string          `json:"exhibitor_id"`
	ExhibitorName string          `json:"exhibitor_name"`
	CompanyName   string          `json:"company_name"`
	Attendees     []string        `json:"attendees"`
	Booths        []BoothResponse `json:"booths"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	CompanyName    *string  `json:"company_name,omitempty"`
	TelegramChatID *int64   `json:"telegram_chat_id,omitempty"`
	Events         []string `json:"events"`
	CreatedAt      string   `json:"created_at"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type StatsResponse struct {
	TotalEvents    int `json:"total_events"`
	TotalAttendees int `json:"total_attendees"`
	UpcomingEvents int `json:"upcoming_events"`
	TotalBooths    int `json:"total_booths"`
	OccupiedBooths int `json:"occupied_booths"`
}

type UserCountsResponse struct {
	Total      int `json:"total"`
	Attendees  int `json:"attendees"`
	Exhibitors int `json:"exhibitors"`
	Admins     int `json:"admins"`
}

type DashboardResponse struct {
	Stats  StatsResponse       `json:"stats"`
	Events []EventResponse     `json:"events"`
	Users  *UserCountsResponse `json:"users,omitempty"`
}

type BoothGridResponse struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Layout  [][]string `json:"layout"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	booths := make([]BoothResponse, 0, len(e.Booths))
	for _, b := range e.Booths {
		booths = append(booths, BoothResponse{
			ID:         b.ID,
			Status:     string(b.Status),
			ReservedAt: b.ReservedAt.Format(time.RFC3339),
		})
	}

	attendees := e.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Datetime:      e.Datetime.Format(time.RFC3339),
		Date:          e.Datetime.Format("2006-01-02"),
		Time:          e.Datetime.Format("15:04"),
		Location:      e.Location,
		Category:      string(e.Category),
		Capacity:      e.Capacity,
		SpotsLeft:     max(e.Capacity-len(e.Attendees), 0),
		Price:         e.Price.String(),
		Image:         e.Image,
		ExhibitorID:   e.ExhibitorID,
		ExhibitorName: e.ExhibitorName,
		CompanyName:   e.CompanyName,
		Attendees:     attendees,
		Booths:        booths,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	events := u.Events
	if events == nil {
		events = []string{}
	}
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		CompanyName:    u.CompanyName,
		TelegramChatID: u.TelegramChatID,
		Events:         events,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt.Format(time.RFC3339),
		User:      ToUserResponse(r.User),
	}
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Stats: StatsResponse{
			TotalEvents:    d.Stats.TotalEvents,
			TotalAttendees: d.Stats.TotalAttendees,
			UpcomingEvents: d.Stats.UpcomingEvents,
			TotalBooths:    d.Stats.TotalBooths,
			OccupiedBooths: d.Stats.OccupiedBooths,
		},
		Events: ToEventResponses(d.Events),
	}
	if d.Users != nil {
		resp.Users = &UserCountsResponse{
			Total:      d.Users.Total,
			Attendees:  d.Users.Attendees,
			Exhibitors: d.Users.Exhibitors,
			Admins:     d.Users.Admins,
		}
	}
	return resp
}

func ToBoothGridResponse(g domain.BoothGrid) BoothGridResponse {
	layout := make([][]string, 0, g.Rows)
	for r := 0; r < g.Rows; r++ {
		row := make([]string, 0, g.Columns)
		for c := 0; c < g.Columns; c++ {
			row = append(row, g.Label(r, c))
		}
		layout = append(layout, row)
	}
	return BoothGridResponse{Rows: g.Rows, Columns: g.Columns, Layout: layout}
}
