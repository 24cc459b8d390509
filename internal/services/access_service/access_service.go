package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/lib/logger/sl"
	"evermore_gallery/internal/metrics"
	"evermore_gallery/internal/storage"

	"github.com/google/uuid"
)

var (
	// ErrMissingCredentials is returned before any store access when
	// the caller supplies no code or neither email nor slug.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidCredentials is the single collapsed failure for every
	// predicate miss: wrong code, unknown email or slug, archived
	// status or past expiration. Distinct messages per predicate would
	// open a credential-enumeration side channel.
	ErrInvalidCredentials = errors.New("invalid credentials or gallery expired")
)

// Credentials is the client-submitted pair: the shared access code plus
// either the client email or the gallery slug.
type Credentials struct {
	Email string
	Slug  string
	Code  string
}

type GalleryProvider interface {
	FindForAuthentication(ctx context.Context, email, slug, code string) (models.ClientGallery, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)
}

type SessionIssuer interface {
	Issue(gallery models.ClientGallery, code string) models.GallerySession
}

type AttemptLimiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
	Reset(ctx context.Context, identifier string) error
}

// AccessService is the authentication gate for all client traffic. It
// re-reads the gallery row on every call, so an administrative
// revocation takes effect on the next attempt.
type AccessService struct {
	log      *slog.Logger
	repo     GalleryProvider
	sessions SessionIssuer
	limiter  AttemptLimiter
}

func NewAccessService(log *slog.Logger, repo GalleryProvider, sessions SessionIssuer, limiter AttemptLimiter) *AccessService {
	return &AccessService{
		log:      log,
		repo:     repo,
		sessions: sessions,
		limiter:  limiter,
	}
}

// Authenticate validates the credential pair and, on success, bumps the
// view counter and issues a fresh client session. The credential check
// completes before either side effect; a failed increment is logged
// and swallowed, never failing the authentication.
func (s *AccessService) Authenticate(ctx context.Context, creds Credentials) (models.ClientGallery, models.GallerySession, error) {
	const op = "service.AccessService.Authenticate"

	log := s.log.With(slog.String("op", op))

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	slug := strings.TrimSpace(creds.Slug)
	code := strings.ToUpper(strings.TrimSpace(creds.Code))

	if code == "" || (email == "" && slug == "") {
		log.Warn("authentication rejected: incomplete credentials")
		return models.ClientGallery{}, models.GallerySession{}, ErrMissingCredentials
	}

	identifier := email
	if identifier == "" {
		identifier = slug
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, identifier)
		if err != nil {
			// A broken limiter must not lock every client out.
			log.Warn("attempt limiter unavailable", sl.Err(err))
		} else if !allowed {
			log.Warn("authentication throttled", slog.String("identifier", identifier))
			metrics.AuthFailures.Inc()
			return models.ClientGallery{}, models.GallerySession{}, ErrInvalidCredentials
		}
	}

	gallery, err := s.repo.FindForAuthentication(ctx, email, slug, code)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryNotFound) {
			log.Info("authentication failed", slog.String("identifier", identifier))
			metrics.AuthFailures.Inc()
			return models.ClientGallery{}, models.GallerySession{}, ErrInvalidCredentials
		}

		log.Error("failed to query gallery", sl.Err(err))
		return models.ClientGallery{}, models.GallerySession{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.IncrementViewCount(ctx, gallery.ID); err != nil {
		log.Warn("failed to increment view count",
			slog.String("gallery_id", gallery.ID.String()),
			sl.Err(err),
		)
	} else {
		metrics.ViewIncrements.Inc()
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, identifier); err != nil {
			log.Warn("failed to reset attempt counter", sl.Err(err))
		}
	}

	session := s.sessions.Issue(gallery, code)

	log.Info("client authenticated",
		slog.String("gallery_id", gallery.ID.String()),
		slog.String("slug", gallery.GallerySlug),
	)
	metrics.AuthSuccesses.Inc()

	return gallery, session, nil
}
