// Package media validates event images and decides where their bytes end up.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidImage  = errors.New("image must be a base64 image data URI")
	ErrImageTooLarge = errors.New("image is too large")
)

// Image is a decoded data URI.
type Image struct {
	Data []byte
	MIME *mimetype.MIME
}

// Inline keeps images as data URIs inside the event record.
type Inline struct {
	maxBytes int
}

func NewInline(maxBytes int) *Inline {
	return &Inline{maxBytes: maxBytes}
}

// Store returns the value to persist in Event.Image.
// Empty input and already hosted http(s) URLs pass through unchanged.
func (s *Inline) Store(ctx context.Context, _ string, image string) (string, error) {
	if image == "" || isRemote(image) {
		return image, nil
	}
	if _, err := s.Decode(image); err != nil {
		return "", err
	}
	return image, nil
}

// Decode parses a data URI and checks that its content sniffs as an image.
func (s *Inline) Decode(uri string) (*Image, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok || !strings.HasPrefix(uri, "data:") || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrInvalidImage
	}

	if s.maxBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > s.maxBytes+2 {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, s.maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, s.maxBytes)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, ErrInvalidImage
	}

	return &Image{Data: data, MIME: mime}, nil
}

func isRemote(image string) bool {
	return strings.HasPrefix(image, "https://") || strings.HasPrefix(image, "http://")
}
