package services

import (
	"time"

	"evermore_gallery/internal/domain/models"
)

// DefaultSessionTTL bounds how long a client session stays valid after
// a successful authentication. Sessions are never extended by use.
const DefaultSessionTTL = 2 * time.Hour

// SessionService issues and validates the ephemeral, client-held
// gallery session. The session is an explicit value handed back to the
// caller; the server keeps no copy and has no revocation list, so a
// session stays honored until its own expiry regardless of later
// changes to the gallery row.
type SessionService struct {
	ttl time.Duration
	now func() time.Time
}

func NewSessionService(ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		ttl: ttl,
		now: time.Now,
	}
}

// Issue creates a fresh session for a successfully authenticated
// gallery. A caller storing it replaces any previous session wholesale:
// one active session per client context.
func (s *SessionService) Issue(gallery models.ClientGallery, code string) models.GallerySession {
	accessedAt := s.now().UTC()

	return models.GallerySession{
		GalleryID:   gallery.ID,
		GallerySlug: gallery.GallerySlug,
		ClientEmail: gallery.ClientEmail,
		Code:        code,
		AccessedAt:  accessedAt,
		ExpiresAt:   accessedAt.Add(s.ttl),
	}
}

// Valid reports whether the session is still inside its window. An
// expired session must be treated as absent by whoever stores it.
func (s *SessionService) Valid(session models.GallerySession) bool {
	return session.ExpiresAt.After(s.now())
}
