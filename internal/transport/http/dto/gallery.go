package dto

import (
	"time"

	"evermore_gallery/internal/domain/models"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	ClientEmail    string     `json:"client_email" validate:"required,email"`
	BrideName      string     `json:"bride_name" validate:"required"`
	GroomName      string     `json:"groom_name" validate:"required"`
	WeddingDate    *time.Time `json:"wedding_date"`
	CoverImage     string     `json:"cover_image"`
	Images         []string   `json:"images"`
	ExpirationDate time.Time  `json:"expiration_date" validate:"required"`
	AccessPassword string     `json:"access_password"`
}

type UpdateGalleryRequest struct {
	ID             uuid.UUID  `json:"id"`
	ClientEmail    string     `json:"client_email" validate:"required,email"`
	BrideName      string     `json:"bride_name" validate:"required"`
	GroomName      string     `json:"groom_name" validate:"required"`
	WeddingDate    *time.Time `json:"wedding_date"`
	CoverImage     string     `json:"cover_image"`
	Images         []string   `json:"images"`
	ExpirationDate time.Time  `json:"expiration_date" validate:"required"`
	AccessPassword string     `json:"access_password"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active archived"`
}

type ExtendExpirationRequest struct {
	Days int `json:"days" validate:"required,gt=0"`
}

type GalleryResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClientEmail    string     `json:"client_email"`
	ClientName     string     `json:"client_name"`
	BrideName      string     `json:"bride_name"`
	GroomName      string     `json:"groom_name"`
	WeddingDate    *time.Time `json:"wedding_date"`
	GallerySlug    string     `json:"gallery_slug"`
	AccessCode     string     `json:"access_code"`
	CoverImage     string     `json:"cover_image"`
	Images         []string   `json:"images"`
	Status         string     `json:"status"`
	ExpirationDate time.Time  `json:"expiration_date"`
	ViewCount      int64      `json:"view_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type StatsResponse struct {
	TotalViews          int64      `json:"totalViews"`
	UniqueVisitors      int64      `json:"uniqueVisitors"`
	TotalDownloads      int64      `json:"totalDownloads"`
	TotalFavorites      int64      `json:"totalFavorites"`
	LastAccessed        *time.Time `json:"lastAccessed"`
	DaysUntilExpiration int        `json:"daysUntilExpiration"`
}

func NewStatsResponse(stats models.GalleryStats) StatsResponse {
	return StatsResponse(stats)
}
