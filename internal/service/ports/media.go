package ports

import "context"

// ImageStore returns the value persisted in Event.Image for a submitted image.
type ImageStore interface {
	Store(ctx context.Context, key string, image string) (string, error)
}
