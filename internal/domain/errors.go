package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrEventExists       = errors.New("event with this id already exists")
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrNotRegistered     = errors.New("user is not registered for this event")
	ErrEventFull         = errors.New("event is fully booked")
	ErrEmailTaken        = errors.New("email is already taken")
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access denied")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnknownBooth = errors.New("unknown booth")
)
