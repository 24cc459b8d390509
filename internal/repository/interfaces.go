package repository

import (
	"context"
	"time"

	"evermore_gallery/internal/domain/models"

	"github.com/google/uuid"
)

type GalleryRepository interface {
	CreateGallery(ctx context.Context, gallery models.ClientGallery) (uuid.UUID, error)
	UpdateGallery(ctx context.Context, gallery models.ClientGallery) error
	UpdateGalleryStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteGallery(ctx context.Context, id uuid.UUID) error
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.ClientGallery, error)
	GetGalleryBySlug(ctx context.Context, slug string) (models.ClientGallery, error)
	ListGalleries(ctx context.Context) ([]models.ClientGallery, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	// FindForAuthentication resolves the full credential predicate in a
	// single query: active status, unexpired, matching access code and
	// matching email or slug (whichever is non-empty). No rows means
	// the caller reports one collapsed failure.
	FindForAuthentication(ctx context.Context, email, slug, code string) (models.ClientGallery, error)

	// IncrementViewCount bumps view_count server-side and stamps
	// last_accessed_at, returning the new count. There is deliberately
	// no read-modify-write variant: concurrent logins must not lose
	// increments.
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)

	UpdateExpiration(ctx context.Context, id uuid.UUID, expiration time.Time) (models.ClientGallery, error)
}

type EngagementRepository interface {
	AddFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (bool, error)
	RemoveFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) error
	ListFavorites(ctx context.Context, galleryID uuid.UUID, clientEmail string) ([]models.Favorite, error)
	CountFavorites(ctx context.Context, galleryID uuid.UUID) (int64, error)

	RecordDownload(ctx context.Context, download models.Download) (uuid.UUID, error)
	CountDownloads(ctx context.Context, galleryID uuid.UUID) (int64, error)

	StartAnalyticsSession(ctx context.Context, session models.AnalyticsSession) (models.AnalyticsSession, error)
	CloseAnalyticsSession(ctx context.Context, sessionID uuid.UUID, sessionEnd time.Time, durationSeconds *int64, imagesViewed *int) error
	ListAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) ([]models.AnalyticsSession, error)
	CountAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) (int64, error)
}

type AttemptRepository interface {
	Allow(ctx context.Context, identifier string) (bool, error)
	Reset(ctx context.Context, identifier string) error
}
