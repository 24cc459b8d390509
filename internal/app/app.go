package app

import (
	"context"
	"log/slog"

	httpapp "evermore_gallery/internal/app/http"
	"evermore_gallery/internal/config"
	"evermore_gallery/internal/repository"
	access "evermore_gallery/internal/services/access_service"
	admin "evermore_gallery/internal/services/admin_service"
	engagement "evermore_gallery/internal/services/engagement_service"
	gallery "evermore_gallery/internal/services/gallery_service"
	identifier "evermore_gallery/internal/services/identifier_service"
	sessionsvc "evermore_gallery/internal/services/session_service"
	stats "evermore_gallery/internal/services/stats_service"
	redisstorage "evermore_gallery/internal/storage/redis"
	httprouters "evermore_gallery/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisstorage.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	var limiter access.AttemptLimiter
	var redisClient *redisstorage.Client
	if cfg.Limiter.Enabled {
		redisClient = redisstorage.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.HealthCheck(context.Background()); err != nil {
			panic(err)
		}

		limiter = repository.NewRedisAttemptRepo(redisClient, cfg.Limiter.MaxAttempts, cfg.Limiter.Window)
	}

	identifierService := identifier.NewIdentifierService(log, repo.Gallery)
	sessionService := sessionsvc.NewSessionService(cfg.SessionTTL)
	accessService := access.NewAccessService(log, repo.Gallery, sessionService, limiter)
	galleryService := gallery.NewGalleryService(log, repo.Gallery, identifierService)
	engagementService := engagement.NewEngagementService(log, repo.Engagement)
	statsService := stats.NewStatsService(log, repo.Gallery, repo.Engagement, cfg.StatsCache)
	adminService := admin.NewAdminService(log, cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)

	routers := httprouters.NewRouter(
		log,
		accessService,
		sessionService,
		galleryService,
		engagementService,
		statsService,
		adminService,
	)

	server := httpapp.New(log, cfg.HTTP.SessionSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers, adminService)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
	}
}

// Stop releases backing connections after the HTTP server drains.
func (a *App) Stop() {
	if a.redis != nil {
		a.redis.Close()
	}
	a.repo.Close()
}
