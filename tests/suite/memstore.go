package suite

import (
	"context"
	"strings"
	"sync"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/storage"

	"github.com/google/uuid"
)

// GalleryMemStore is an in-memory stand-in for the Postgres gallery
// repository, enforcing the same authentication predicate so end-to-end
// flows run without a database.
type GalleryMemStore struct {
	mu        sync.Mutex
	galleries map[uuid.UUID]models.ClientGallery
	now       func() time.Time
}

func NewGalleryMemStore() *GalleryMemStore {
	return &GalleryMemStore{
		galleries: make(map[uuid.UUID]models.ClientGallery),
		now:       time.Now,
	}
}

func (s *GalleryMemStore) CreateGallery(_ context.Context, gallery models.ClientGallery) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.galleries {
		if g.GallerySlug == gallery.GallerySlug {
			return uuid.Nil, storage.ErrSlugExists
		}
	}

	if gallery.ID == uuid.Nil {
		gallery.ID = uuid.New()
	}
	gallery.CreatedAt = s.now().UTC()
	gallery.UpdatedAt = gallery.CreatedAt

	s.galleries[gallery.ID] = gallery

	return gallery.ID, nil
}

func (s *GalleryMemStore) UpdateGallery(_ context.Context, gallery models.ClientGallery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.galleries[gallery.ID]
	if !ok {
		return storage.ErrGalleryNotFound
	}

	// Slug and access code survive every update.
	gallery.GallerySlug = stored.GallerySlug
	gallery.AccessCode = stored.AccessCode
	gallery.ViewCount = stored.ViewCount
	gallery.CreatedAt = stored.CreatedAt
	gallery.UpdatedAt = s.now().UTC()

	s.galleries[gallery.ID] = gallery

	return nil
}

func (s *GalleryMemStore) UpdateGalleryStatus(_ context.Context, id uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return storage.ErrGalleryNotFound
	}

	gallery.Status = status
	gallery.UpdatedAt = s.now().UTC()
	s.galleries[id] = gallery

	return nil
}

func (s *GalleryMemStore) DeleteGallery(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.galleries[id]; !ok {
		return storage.ErrGalleryNotFound
	}

	delete(s.galleries, id)

	return nil
}

func (s *GalleryMemStore) GetGalleryByID(_ context.Context, id uuid.UUID) (models.ClientGallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return models.ClientGallery{}, storage.ErrGalleryNotFound
	}

	return gallery, nil
}

func (s *GalleryMemStore) GetGalleryBySlug(_ context.Context, slug string) (models.ClientGallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, gallery := range s.galleries {
		if gallery.GallerySlug == slug {
			return gallery, nil
		}
	}

	return models.ClientGallery{}, storage.ErrGalleryNotFound
}

func (s *GalleryMemStore) ListGalleries(_ context.Context) ([]models.ClientGallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	galleries := make([]models.ClientGallery, 0, len(s.galleries))
	for _, gallery := range s.galleries {
		galleries = append(galleries, gallery)
	}

	return galleries, nil
}

func (s *GalleryMemStore) SlugExists(_ context.Context, slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, gallery := range s.galleries {
		if gallery.GallerySlug == slug {
			return true, nil
		}
	}

	return false, nil
}

func (s *GalleryMemStore) FindForAuthentication(_ context.Context, email, slug, code string) (models.ClientGallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	for _, gallery := range s.galleries {
		if gallery.Status != models.GalleryStatusActive {
			continue
		}
		if !gallery.ExpirationDate.After(now) {
			continue
		}
		if gallery.AccessCode != code {
			continue
		}
		if email != "" && strings.ToLower(gallery.ClientEmail) != email {
			continue
		}
		if email == "" && gallery.GallerySlug != slug {
			continue
		}

		return gallery, nil
	}

	return models.ClientGallery{}, storage.ErrGalleryNotFound
}

func (s *GalleryMemStore) IncrementViewCount(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return 0, storage.ErrGalleryNotFound
	}

	gallery.ViewCount++
	accessedAt := s.now().UTC()
	gallery.LastAccessedAt = &accessedAt
	s.galleries[id] = gallery

	return gallery.ViewCount, nil
}

func (s *GalleryMemStore) UpdateExpiration(_ context.Context, id uuid.UUID, expiration time.Time) (models.ClientGallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gallery, ok := s.galleries[id]
	if !ok {
		return models.ClientGallery{}, storage.ErrGalleryNotFound
	}

	gallery.ExpirationDate = expiration
	gallery.UpdatedAt = s.now().UTC()
	s.galleries[id] = gallery

	return gallery, nil
}
