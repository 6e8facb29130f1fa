package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/media"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// eventForm is an EventInput that passed field validation.
type eventForm struct {
	Title       string
	Description string
	Datetime    time.Time
	Location    string
	Category    domain.Category
	Capacity    int
	Price       domain.Price
	Booths      *domain.BoothSelection
}

// parseEventForm проверяет все поля сразу и собирает сообщения в один ValidationError.
// current is nil on create. On edit the past-date check applies only when the date changes.
func parseEventForm(
	in domain.EventInput,
	now time.Time,
	loc *time.Location,
	grid domain.BoothGrid,
	current *domain.Event,
) (*eventForm, *domain.ValidationError) {
	v := domain.NewValidationError()
	f := &eventForm{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Category:    domain.Category(strings.TrimSpace(in.Category)),
	}

	if f.Title == "" {
		v.Add("title", "title is required")
	}
	if f.Description == "" {
		v.Add("description", "description is required")
	}
	if f.Location == "" {
		v.Add("location", "location is required")
	}

	f.Datetime = parseDatetime(in.Date, in.Time, loc, v)
	if !f.Datetime.IsZero() {
		today := now.In(loc).Format(dateLayout)
		changed := current == nil || !current.Datetime.Equal(f.Datetime)
		if changed && f.Datetime.Format(dateLayout) < today {
			v.Add("date", "date cannot be in the past")
		}
	}

	if !f.Category.Valid() {
		v.Add("category", "unknown category")
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(in.Capacity))
	switch {
	case strings.TrimSpace(in.Capacity) == "":
		v.Add("capacity", "capacity is required")
	case err != nil || capacity < 1:
		v.Add("capacity", "capacity must be a whole number of at least 1")
	default:
		f.Capacity = capacity
	}

	price := strings.TrimSpace(in.Price)
	if price == "" {
		price = "0"
	}
	if f.Price, err = domain.ParsePrice(price); err != nil {
		v.Add("price", err.Error())
	}

	if f.Booths, err = grid.SelectAll(in.SelectedBooths); err != nil {
		v.Add("booths", err.Error())
	}

	return f, v
}

func parseDatetime(date, clock string, loc *time.Location, v *domain.ValidationError) time.Time {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)

	ok := true
	if date == "" {
		v.Add("date", "date is required")
		ok = false
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		v.Add("date", "date must be in YYYY-MM-DD format")
		ok = false
	}
	if clock == "" {
		v.Add("time", "time is required")
		ok = false
	} else if _, err := time.Parse(timeLayout, clock); err != nil {
		v.Add("time", "time must be in HH:MM format")
		ok = false
	}
	if !ok {
		return time.Time{}
	}

	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, loc)
	if err != nil {
		v.Add("date", "invalid date or time")
		return time.Time{}
	}
	return t
}

// imageFieldError переводит ошибки хранилища изображений в ошибку поля формы.
func imageFieldError(err error) *domain.ValidationError {
	if !errors.Is(err, media.ErrInvalidImage) && !errors.Is(err, media.ErrImageTooLarge) {
		return nil
	}
	v := domain.NewValidationError()
	v.Add("image", err.Error())
	return v
}

func capacityBelowAttendeesMsg(attendees int) string {
	return fmt.Sprintf("capacity cannot be lower than the %d registered attendees", attendees)
}

func capacityBelowAttendees(attendees int) error {
	v := domain.NewValidationError()
	v.Add("capacity", capacityBelowAttendeesMsg(attendees))
	return v
}
