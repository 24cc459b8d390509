package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/lib/logger/sl"
	"evermore_gallery/internal/repository"
	identifier "evermore_gallery/internal/services/identifier_service"
	"evermore_gallery/internal/transport/http/dto"

	"github.com/google/uuid"
)

type SlugGenerator interface {
	GenerateUniqueSlug(ctx context.Context, brideName, groomName string) (string, error)
}

// GalleryService covers the administrative side of client galleries:
// creation with generated identifiers, field-level updates, status
// flips and expiration extension.
type GalleryService struct {
	log   *slog.Logger
	repo  repository.GalleryRepository
	slugs SlugGenerator
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, slugs SlugGenerator) *GalleryService {
	return &GalleryService{
		log:   log,
		repo:  repo,
		slugs: slugs,
	}
}

// CreateGallery creates a gallery with a generated slug and access
// code. An absent access password is defaulted to a random one, never
// left empty.
func (s *GalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (*dto.GalleryResponse, error) {
	const op = "service.GalleryService.CreateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("client_email", req.ClientEmail),
	)

	log.Info("creating client gallery")

	if req.ClientEmail == "" {
		return nil, fmt.Errorf("client_email is required")
	}
	if req.BrideName == "" || req.GroomName == "" {
		return nil, fmt.Errorf("bride_name and groom_name are required")
	}
	if req.ExpirationDate.IsZero() {
		return nil, fmt.Errorf("expiration_date is required")
	}

	slug, err := s.slugs.GenerateUniqueSlug(ctx, req.BrideName, req.GroomName)
	if err != nil {
		log.Error("failed to generate slug", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	code, err := identifier.GenerateAccessCode(identifier.DefaultCodeLength)
	if err != nil {
		log.Error("failed to generate access code", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	password := req.AccessPassword
	if password == "" {
		password, err = identifier.GenerateRandomPassword(identifier.DefaultCodeLength)
		if err != nil {
			log.Error("failed to generate fallback password", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	gallery := models.ClientGallery{
		ClientEmail:    req.ClientEmail,
		BrideName:      req.BrideName,
		GroomName:      req.GroomName,
		WeddingDate:    req.WeddingDate,
		GallerySlug:    slug,
		AccessCode:     code,
		AccessPassword: password,
		CoverImage:     req.CoverImage,
		Images:         req.Images,
		Status:         models.GalleryStatusActive,
		ExpirationDate: req.ExpirationDate,
	}

	id, err := s.repo.CreateGallery(ctx, gallery)
	if err != nil {
		log.Error("failed to create gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.GetGalleryByID(ctx, id)
	if err != nil {
		log.Error("failed to read back created gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created", slog.String("id", id.String()), slog.String("slug", slug))
	return mapToGalleryResponse(created), nil
}

func (s *GalleryService) UpdateGallery(ctx context.Context, req dto.UpdateGalleryRequest) (*dto.GalleryResponse, error) {
	const op = "service.GalleryService.UpdateGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", req.ID.String()),
	)

	log.Info("updating gallery")

	current, err := s.repo.GetGalleryByID(ctx, req.ID)
	if err != nil {
		log.Error("failed to get gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current.ClientEmail = req.ClientEmail
	current.BrideName = req.BrideName
	current.GroomName = req.GroomName
	current.WeddingDate = req.WeddingDate
	current.CoverImage = req.CoverImage
	current.Images = req.Images
	current.ExpirationDate = req.ExpirationDate
	if req.AccessPassword != "" {
		current.AccessPassword = req.AccessPassword
	}

	if err := s.repo.UpdateGallery(ctx, current); err != nil {
		log.Error("failed to update gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.GetGalleryByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery updated")
	return mapToGalleryResponse(updated), nil
}

func (s *GalleryService) UpdateGalleryStatus(ctx context.Context, id uuid.UUID, status string) error {
	const op = "service.GalleryService.UpdateGalleryStatus"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", id.String()),
		slog.String("status", status),
	)

	log.Info("updating gallery status")

	if status != models.GalleryStatusActive && status != models.GalleryStatusArchived {
		log.Error("invalid status")
		return fmt.Errorf("invalid status: %s", status)
	}

	if err := s.repo.UpdateGalleryStatus(ctx, id, status); err != nil {
		log.Error("failed to update gallery status", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery status updated")
	return nil
}

func (s *GalleryService) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	const op = "service.GalleryService.DeleteGallery"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", id.String()),
	)

	log.Info("deleting gallery")

	if err := s.repo.DeleteGallery(ctx, id); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery deleted")
	return nil
}

func (s *GalleryService) GetGalleryByID(ctx context.Context, id uuid.UUID) (*dto.GalleryResponse, error) {
	const op = "service.GalleryService.GetGalleryByID"

	gallery, err := s.repo.GetGalleryByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get gallery", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapToGalleryResponse(gallery), nil
}

func (s *GalleryService) GetGalleryBySlug(ctx context.Context, slug string) (*dto.GalleryResponse, error) {
	const op = "service.GalleryService.GetGalleryBySlug"

	gallery, err := s.repo.GetGalleryBySlug(ctx, slug)
	if err != nil {
		s.log.Error("failed to get gallery by slug", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mapToGalleryResponse(gallery), nil
}

func (s *GalleryService) ListGalleries(ctx context.Context) ([]dto.GalleryResponse, error) {
	const op = "service.GalleryService.ListGalleries"

	galleries, err := s.repo.ListGalleries(ctx)
	if err != nil {
		s.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	responses := make([]dto.GalleryResponse, 0, len(galleries))
	for _, gallery := range galleries {
		responses = append(responses, *mapToGalleryResponse(gallery))
	}

	return responses, nil
}

// ExtendExpiration pushes the current expiration date forward by whole
// days and returns the updated record. The new date is derived from the
// stored expiration, not from now, so extending an expired gallery may
// require more days than the lapse.
func (s *GalleryService) ExtendExpiration(ctx context.Context, id uuid.UUID, days int) (*dto.GalleryResponse, error) {
	const op = "service.GalleryService.ExtendExpiration"
	log := s.log.With(
		slog.String("op", op),
		slog.String("gallery_id", id.String()),
		slog.Int("days", days),
	)

	if days <= 0 {
		return nil, fmt.Errorf("days must be positive")
	}

	gallery, err := s.repo.GetGalleryByID(ctx, id)
	if err != nil {
		log.Error("failed to get gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	newExpiration := gallery.ExpirationDate.Add(time.Duration(days) * 24 * time.Hour)

	updated, err := s.repo.UpdateExpiration(ctx, id, newExpiration)
	if err != nil {
		log.Error("failed to update expiration", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("expiration extended", slog.Time("expiration_date", updated.ExpirationDate))
	return mapToGalleryResponse(updated), nil
}

func mapToGalleryResponse(gallery models.ClientGallery) *dto.GalleryResponse {
	return &dto.GalleryResponse{
		ID:             gallery.ID,
		ClientEmail:    gallery.ClientEmail,
		ClientName:     identifier.ClientName(gallery.BrideName, gallery.GroomName),
		BrideName:      gallery.BrideName,
		GroomName:      gallery.GroomName,
		WeddingDate:    gallery.WeddingDate,
		GallerySlug:    gallery.GallerySlug,
		AccessCode:     gallery.AccessCode,
		CoverImage:     gallery.CoverImage,
		Images:         gallery.Images,
		Status:         gallery.Status,
		ExpirationDate: gallery.ExpirationDate,
		ViewCount:      gallery.ViewCount,
		LastAccessedAt: gallery.LastAccessedAt,
		CreatedAt:      gallery.CreatedAt,
		UpdatedAt:      gallery.UpdatedAt,
	}
}
