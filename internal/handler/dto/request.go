package dto

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

type RegisterRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
	CompanyName    *string `json:"company_name"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FormValue accepts a JSON string or number and keeps its text, the way form inputs submit values.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

type EventRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Capacity       FormValue `json:"capacity"`
	Price          FormValue `json:"price"`
	Image          string    `json:"image"`
	RemoveImage    bool      `json:"remove_image"`
	SelectedBooths []string  `json:"selected_booths"`
}
