package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/lib/logger/sl"
	"evermore_gallery/internal/repository"

	"github.com/google/uuid"
)

// EngagementService records client engagement events: favorites,
// downloads and analytics sessions. Favorites are unique per
// (gallery, client, image); downloads are append-only.
type EngagementService struct {
	log  *slog.Logger
	repo repository.EngagementRepository
}

func NewEngagementService(log *slog.Logger, repo repository.EngagementRepository) *EngagementService {
	return &EngagementService{
		log:  log,
		repo: repo,
	}
}

// AddFavorite marks an image as favorited. Re-favoriting the same image
// is a no-op; the bool reports whether a new favorite was recorded.
func (s *EngagementService) AddFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (bool, error) {
	const op = "service.EngagementService.AddFavorite"

	if imageID == "" {
		return false, fmt.Errorf("image_id is required")
	}

	added, err := s.repo.AddFavorite(ctx, galleryID, clientEmail, imageID)
	if err != nil {
		s.log.Error("failed to add favorite", slog.String("op", op), sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return added, nil
}

func (s *EngagementService) RemoveFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) error {
	const op = "service.EngagementService.RemoveFavorite"

	if err := s.repo.RemoveFavorite(ctx, galleryID, clientEmail, imageID); err != nil {
		s.log.Error("failed to remove favorite", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *EngagementService) ListFavorites(ctx context.Context, galleryID uuid.UUID, clientEmail string) ([]models.Favorite, error) {
	const op = "service.EngagementService.ListFavorites"

	favorites, err := s.repo.ListFavorites(ctx, galleryID, clientEmail)
	if err != nil {
		s.log.Error("failed to list favorites", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return favorites, nil
}

func (s *EngagementService) RecordDownload(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (uuid.UUID, error) {
	const op = "service.EngagementService.RecordDownload"

	id, err := s.repo.RecordDownload(ctx, models.Download{
		GalleryID:   galleryID,
		ClientEmail: clientEmail,
		ImageID:     imageID,
	})
	if err != nil {
		s.log.Error("failed to record download", slog.String("op", op), sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// StartAnalyticsSession opens a visit record. Gallery and client email
// are required; the start time defaults to now.
func (s *EngagementService) StartAnalyticsSession(ctx context.Context, session models.AnalyticsSession) (models.AnalyticsSession, error) {
	const op = "service.EngagementService.StartAnalyticsSession"

	if session.GalleryID == uuid.Nil || session.ClientEmail == "" {
		return models.AnalyticsSession{}, fmt.Errorf("gallery_id and client_email are required")
	}

	created, err := s.repo.StartAnalyticsSession(ctx, session)
	if err != nil {
		s.log.Error("failed to start analytics session", slog.String("op", op), sl.Err(err))
		return models.AnalyticsSession{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// CloseAnalyticsSession stamps the session end, defaulting to now when
// the caller does not supply one.
func (s *EngagementService) CloseAnalyticsSession(ctx context.Context, sessionID uuid.UUID, sessionEnd *time.Time, durationSeconds *int64, imagesViewed *int) error {
	const op = "service.EngagementService.CloseAnalyticsSession"

	end := time.Now().UTC()
	if sessionEnd != nil {
		end = *sessionEnd
	}

	if err := s.repo.CloseAnalyticsSession(ctx, sessionID, end, durationSeconds, imagesViewed); err != nil {
		s.log.Error("failed to close analytics session", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *EngagementService) ListAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) ([]models.AnalyticsSession, error) {
	const op = "service.EngagementService.ListAnalyticsSessions"

	sessions, err := s.repo.ListAnalyticsSessions(ctx, galleryID)
	if err != nil {
		s.log.Error("failed to list analytics sessions", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sessions, nil
}
