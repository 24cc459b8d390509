package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GalleryStatusActive   = "active"
	GalleryStatusArchived = "archived"
)

// ClientGallery is the per-customer photo collection together with its
// access-control metadata. The persisted row is the single source of
// truth for credentials and status; services never cache it between
// authentication calls.
type ClientGallery struct {
	ID             uuid.UUID  `json:"id"`
	ClientEmail    string     `json:"client_email"`
	BrideName      string     `json:"bride_name"`
	GroomName      string     `json:"groom_name"`
	WeddingDate    *time.Time `json:"wedding_date"`
	GallerySlug    string     `json:"gallery_slug"`
	AccessCode     string     `json:"access_code"`
	AccessPassword string     `json:"access_password,omitempty"`
	CoverImage     string     `json:"cover_image"`
	Images         []string   `json:"images"`
	Status         string     `json:"status"`
	ExpirationDate time.Time  `json:"expiration_date"`
	ViewCount      int64      `json:"view_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
