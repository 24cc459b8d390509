package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/lib/expiry"
	"evermore_gallery/internal/lib/logger/sl"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type GalleryGetter interface {
	GetGalleryByID(ctx context.Context, id uuid.UUID) (models.ClientGallery, error)
}

type EngagementCounter interface {
	CountFavorites(ctx context.Context, galleryID uuid.UUID) (int64, error)
	CountDownloads(ctx context.Context, galleryID uuid.UUID) (int64, error)
	CountAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) (int64, error)
}

// StatsService assembles the engagement snapshot for the admin
// dashboard. Sub-counts are independent and best-effort: a failed count
// degrades to zero instead of failing the snapshot.
type StatsService struct {
	log        *slog.Logger
	galleries  GalleryGetter
	engagement EngagementCounter
	cache      *gocache.Cache
	now        func() time.Time
}

// NewStatsService builds the service. cacheTTL > 0 enables a short
// in-process cache for dashboard reads; 0 disables caching entirely.
func NewStatsService(log *slog.Logger, galleries GalleryGetter, engagement EngagementCounter, cacheTTL time.Duration) *StatsService {
	var c *gocache.Cache
	if cacheTTL > 0 {
		c = gocache.New(cacheTTL, 2*cacheTTL)
	}

	return &StatsService{
		log:        log,
		galleries:  galleries,
		engagement: engagement,
		cache:      c,
		now:        time.Now,
	}
}

// GetGalleryStats returns the derived snapshot for one gallery. A
// missing gallery is a hard failure; everything else degrades.
func (s *StatsService) GetGalleryStats(ctx context.Context, galleryID uuid.UUID) (models.GalleryStats, error) {
	const op = "service.StatsService.GetGalleryStats"

	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", galleryID.String()),
	)

	if s.cache != nil {
		if cached, ok := s.cache.Get(galleryID.String()); ok {
			return cached.(models.GalleryStats), nil
		}
	}

	gallery, err := s.galleries.GetGalleryByID(ctx, galleryID)
	if err != nil {
		log.Error("failed to get gallery", sl.Err(err))
		return models.GalleryStats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := models.GalleryStats{
		TotalViews:          gallery.ViewCount,
		LastAccessed:        gallery.LastAccessedAt,
		DaysUntilExpiration: expiry.DaysUntil(gallery, s.now()),
	}

	if favorites, err := s.engagement.CountFavorites(ctx, galleryID); err != nil {
		log.Warn("favorite count unavailable, using zero", sl.Err(err))
	} else {
		stats.TotalFavorites = favorites
	}

	if downloads, err := s.engagement.CountDownloads(ctx, galleryID); err != nil {
		log.Warn("download count unavailable, using zero", sl.Err(err))
	} else {
		stats.TotalDownloads = downloads
	}

	if visitors, err := s.engagement.CountAnalyticsSessions(ctx, galleryID); err != nil {
		log.Warn("visitor count unavailable, using zero", sl.Err(err))
	} else {
		stats.UniqueVisitors = visitors
	}

	if s.cache != nil {
		s.cache.Set(galleryID.String(), stats, gocache.DefaultExpiration)
	}

	return stats, nil
}
