package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"evermore_gallery/internal/config"
	access "evermore_gallery/internal/services/access_service"
	gallery "evermore_gallery/internal/services/gallery_service"
	identifier "evermore_gallery/internal/services/identifier_service"
	session "evermore_gallery/internal/services/session_service"
)

type Suite struct {
	*testing.T
	Cfg            *config.Config
	Galleries      *GalleryMemStore
	AccessService  *access.AccessService
	SessionService *session.SessionService
	GalleryService *gallery.GalleryService
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	cfg := config.MustLoadPath(configPath())

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Duration(time.Hour))

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	store := NewGalleryMemStore()
	sessionService := session.NewSessionService(cfg.SessionTTL)
	identifierService := identifier.NewIdentifierService(log, store)
	accessService := access.NewAccessService(log, store, sessionService, nil)
	galleryService := gallery.NewGalleryService(log, store, identifierService)

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
	})

	return ctx, &Suite{
		T:              t,
		Cfg:            cfg,
		Galleries:      store,
		AccessService:  accessService,
		SessionService: sessionService,
		GalleryService: galleryService,
	}
}

func configPath() string {
	const key = "CONFIG_PATH"

	if v := os.Getenv(key); v != "" {
		return v
	}

	return "../config/config.yaml"
}
