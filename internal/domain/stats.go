package domain

import "time"

type Stats struct {
	TotalEvents    int `json:"total_events"`
	TotalAttendees int `json:"total_attendees"`
	UpcomingEvents int `json:"upcoming_events"`
	TotalBooths    int `json:"total_booths"`
	OccupiedBooths int `json:"occupied_booths"`
}

func Aggregate(events []*Event, now time.Time) Stats {
	var s Stats
	for _, e := range events {
		s.TotalEvents++
		s.TotalAttendees += len(e.Attendees)
		if e.IsUpcoming(now) {
			s.UpcomingEvents++
		}
		s.TotalBooths += len(e.Booths)
		for _, b := range e.Booths {
			if b.Status == BoothStatusOccupied {
				s.OccupiedBooths++
			}
		}
	}
	return s
}

// Dashboard is a role-specific aggregate view. Users is set only for admins.
type Dashboard struct {
	Stats  Stats
	Events []*Event
	Users  *UserCounts
}
