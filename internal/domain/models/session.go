package models

import (
	"time"

	"github.com/google/uuid"
)

// GallerySession is the client-held proof of a successful
// authentication. It is never stored server-side: downstream consumers
// honor it strictly by its own ExpiresAt, and it is never extended by
// use. Fields added later must be optional so older stored sessions
// still decode.
type GallerySession struct {
	GalleryID   uuid.UUID `json:"gallery_id"`
	GallerySlug string    `json:"gallery_slug,omitempty"`
	ClientEmail string    `json:"client_email,omitempty"`
	Code        string    `json:"code"`
	AccessedAt  time.Time `json:"accessed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
