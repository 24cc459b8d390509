package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks one image as favorited by one client. The
// (gallery_id, client_email, image_id) tuple is unique.
type Favorite struct {
	ID          uuid.UUID `json:"id"`
	GalleryID   uuid.UUID `json:"gallery_id"`
	ClientEmail string    `json:"client_email"`
	ImageID     string    `json:"image_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Download is an append-only record of a client downloading an image.
type Download struct {
	ID           uuid.UUID `json:"id"`
	GalleryID    uuid.UUID `json:"gallery_id"`
	ClientEmail  string    `json:"client_email"`
	ImageID      string    `json:"image_id,omitempty"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// AnalyticsSession tracks one client visit. Created on session start and
// optionally closed later with an end time and duration.
type AnalyticsSession struct {
	ID              uuid.UUID  `json:"id"`
	GalleryID       uuid.UUID  `json:"gallery_id"`
	ClientEmail     string     `json:"client_email"`
	SessionStart    time.Time  `json:"session_start"`
	SessionEnd      *time.Time `json:"session_end"`
	DurationSeconds *int64     `json:"session_duration_seconds"`
	ImagesViewed    int        `json:"images_viewed"`
	UserAgent       string     `json:"user_agent"`
	IPAddress       string     `json:"ip_address,omitempty"`
}
