package ports

import (
	"context"

	"github.com/stpnv0/ExpoBooker/internal/domain"
)

type EventNotifier interface {
	NotifyAttendeeRegistered(ctx context.Context, exhibitor, attendee *domain.User, event *domain.Event)
	NotifyEventDeleted(ctx context.Context, attendee *domain.User, event *domain.Event)
}

type LifecyclePublisher interface {
	Publish(ctx context.Context, msg domain.LifecycleMessage)
}
