package domain

import (
	"slices"
	"time"
)

type Category string

const (
	CategoryConference Category = "conference"
	CategoryWorkshop   Category = "workshop"
	CategorySeminar    Category = "seminar"
	CategoryExpo       Category = "expo"
	CategoryNetworking Category = "networking"
)

var Categories = []Category{
	CategoryConference, CategoryWorkshop, CategorySeminar, CategoryExpo, CategoryNetworking,
}

func (c Category) Valid() bool {
	return c == "" || slices.Contains(Categories, c)
}

// Event is the persisted record stored under the "events" key.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Datetime      time.Time `json:"datetime"`
	Location      string    `json:"location"`
	Category      Category  `json:"category"`
	Capacity      int       `json:"capacity"`
	Price         Price     `json:"price"`
	Image         string    `json:"image"`
	ExhibitorID   string    `json:"exhibitorId"`
	ExhibitorName string    `json:"exhibitorName"`
	CompanyName   string    `json:"companyName"`
	Attendees     []string  `json:"attendees"`
	Booths        []Booth   `json:"booths"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (e *Event) HasAttendee(userID string) bool {
	return slices.Contains(e.Attendees, userID)
}

func (e *Event) IsFull() bool {
	return len(e.Attendees) >= e.Capacity
}

func (e *Event) IsUpcoming(now time.Time) bool {
	return e.Datetime.After(now)
}

// EventInput carries the raw form fields of the create and edit forms.
type EventInput struct {
	Title          string
	Description    string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	Location       string
	Category       string
	Capacity       string
	Price          string
	Image          string
	// RemoveImage clears the stored image on edit. An empty Image alone keeps it.
	RemoveImage    bool
	SelectedBooths []string
}

type EventFilter struct {
	Category     Category
	UpcomingOnly bool
	ExhibitorID  string
	AttendeeID   string
}

// Match reports whether the event passes every non-empty filter criterion.
func (f EventFilter) Match(e *Event, now time.Time) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.UpcomingOnly && !e.IsUpcoming(now) {
		return false
	}
	if f.ExhibitorID != "" && e.ExhibitorID != f.ExhibitorID {
		return false
	}
	if f.AttendeeID != "" && !e.HasAttendee(f.AttendeeID) {
		return false
	}
	return true
}

type LifecycleKind string

const (
	LifecycleEventCreated         LifecycleKind = "event.created"
	LifecycleEventUpdated         LifecycleKind = "event.updated"
	LifecycleEventDeleted         LifecycleKind = "event.deleted"
	LifecycleAttendeeRegistered   LifecycleKind = "event.attendee_registered"
	LifecycleAttendeeUnregistered LifecycleKind = "event.attendee_unregistered"
)

// LifecycleMessage is published on every event mutation.
type LifecycleMessage struct {
	Kind       LifecycleKind `json:"kind"`
	EventID    string        `json:"event_id"`
	UserID     string        `json:"user_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}
