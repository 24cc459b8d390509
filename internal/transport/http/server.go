package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/lib/logger/sl"
	access "evermore_gallery/internal/services/access_service"
	admin "evermore_gallery/internal/services/admin_service"
	identifier "evermore_gallery/internal/services/identifier_service"
	"evermore_gallery/internal/transport/http/dto"
	"evermore_gallery/internal/transport/http/dto/request"
	"evermore_gallery/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "evermore_gallery/docs"
)

type AccessService interface {
	Authenticate(ctx context.Context, creds access.Credentials) (models.ClientGallery, models.GallerySession, error)
}

type SessionService interface {
	Valid(session models.GallerySession) bool
}

type GalleryService interface {
	CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (*dto.GalleryResponse, error)
	UpdateGallery(ctx context.Context, req dto.UpdateGalleryRequest) (*dto.GalleryResponse, error)
	UpdateGalleryStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteGallery(ctx context.Context, id uuid.UUID) error
	GetGalleryByID(ctx context.Context, id uuid.UUID) (*dto.GalleryResponse, error)
	ListGalleries(ctx context.Context) ([]dto.GalleryResponse, error)
	ExtendExpiration(ctx context.Context, id uuid.UUID, days int) (*dto.GalleryResponse, error)
}

type EngagementService interface {
	AddFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (bool, error)
	RemoveFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) error
	ListFavorites(ctx context.Context, galleryID uuid.UUID, clientEmail string) ([]models.Favorite, error)
	RecordDownload(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (uuid.UUID, error)
	StartAnalyticsSession(ctx context.Context, session models.AnalyticsSession) (models.AnalyticsSession, error)
	CloseAnalyticsSession(ctx context.Context, sessionID uuid.UUID, sessionEnd *time.Time, durationSeconds *int64, imagesViewed *int) error
	ListAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) ([]models.AnalyticsSession, error)
}

type StatsService interface {
	GetGalleryStats(ctx context.Context, galleryID uuid.UUID) (models.GalleryStats, error)
}

type AdminService interface {
	Login(ctx context.Context, password string) (string, error)
}

type Routers struct {
	log               *slog.Logger
	AccessService     AccessService
	SessionService    SessionService
	GalleryService    GalleryService
	EngagementService EngagementService
	StatsService      StatsService
	AdminService      AdminService
}

func NewRouter(
	log *slog.Logger,
	accessService AccessService,
	sessionService SessionService,
	galleryService GalleryService,
	engagementService EngagementService,
	statsService StatsService,
	adminService AdminService,
) *Routers {
	return &Routers{
		log:               log,
		AccessService:     accessService,
		SessionService:    sessionService,
		GalleryService:    galleryService,
		EngagementService: engagementService,
		StatsService:      statsService,
		AdminService:      adminService,
	}
}

// Authenticate godoc
// @Summary Client gallery login
// @Description Exchanges an access code plus email or slug for a gallery session cookie.
// @Tags client
// @Accept json
// @Produce json
// @Param request body request.AuthenticateRequest true "Credential pair"
// @Success 200 {object} response.Response "Gallery and session"
// @Failure 400 {object} response.ErrorResponse "Missing credentials"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials or gallery expired"
// @Router /api/v1/gallery/authenticate [post]
func (r *Routers) Authenticate(c echo.Context) error {
	const op = "http.routers.Authenticate"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.AuthenticateRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	gallery, gs, err := r.AccessService.Authenticate(c.Request().Context(), access.Credentials{
		Email: req.Email,
		Slug:  req.Slug,
		Code:  req.Code,
	})
	if err != nil {
		if errors.Is(err, access.ErrMissingCredentials) {
			return c.JSON(http.StatusBadRequest, response.ErrMissingCredentials)
		}
		if errors.Is(err, access.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}

		log.Error("authentication failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	if err := saveGallerySession(c, gs); err != nil {
		log.Error("failed to save session cookie", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data: map[string]interface{}{
			"gallery": galleryToResponse(gallery),
			"session": gs,
		},
	})
}

// GetSession godoc
// @Summary Current gallery session
// @Description Returns the active gallery session, if any. An expired cookie is cleared and reads as absent.
// @Tags client
// @Produce json
// @Success 200 {object} response.Response "Active session"
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Router /api/v1/gallery/session [get]
func (r *Routers) GetSession(c echo.Context) error {
	gs, ok := r.requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gs))
}

// Logout godoc
// @Summary Clear the gallery session
// @Tags client
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/gallery/logout [post]
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	if err := clearGallerySession(c); err != nil {
		r.log.Error("failed to clear session", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "session cleared",
	})
}

// AddFavorite godoc
// @Summary Favorite an image
// @Description Marks an image as favorited for the authenticated client. Re-favoriting is a no-op.
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body dto.FavoriteRequest true "Image to favorite"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Router /api/v1/gallery/favorites [post]
func (r *Routers) AddFavorite(c echo.Context) error {
	const op = "http.routers.AddFavorite"

	log := r.log.With(
		slog.String("op", op),
	)

	gs, ok := r.requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	var req dto.FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	added, err := r.EngagementService.AddFavorite(c.Request().Context(), gs.GalleryID, gs.ClientEmail, req.ImageID)
	if err != nil {
		log.Error("failed to add favorite", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data:   map[string]bool{"added": added},
	})
}

// RemoveFavorite godoc
// @Summary Unfavorite an image
// @Tags engagement
// @Produce json
// @Param image_id path string true "Image identifier"
// @Success 204
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/favorites/{image_id} [delete]
func (r *Routers) RemoveFavorite(c echo.Context) error {
	const op = "http.routers.RemoveFavorite"

	log := r.log.With(
		slog.String("op", op),
	)

	gs, ok := r.requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	imageID := c.Param("image_id")

	if err := r.EngagementService.RemoveFavorite(c.Request().Context(), gs.GalleryID, gs.ClientEmail, imageID); err != nil {
		log.Error("failed to remove favorite", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("favorite_not_found", "Favorite not found"))
	}

	return c.NoContent(http.StatusNoContent)
}

// ListFavorites godoc
// @Summary List favorited images
// @Tags engagement
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Router /api/v1/gallery/favorites [get]
func (r *Routers) ListFavorites(c echo.Context) error {
	const op = "http.routers.ListFavorites"

	log := r.log.With(
		slog.String("op", op),
	)

	gs, ok := r.requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	favorites, err := r.EngagementService.ListFavorites(c.Request().Context(), gs.GalleryID, gs.ClientEmail)
	if err != nil {
		log.Error("failed to list favorites", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(favorites))
}

// RecordDownload godoc
// @Summary Record an image download
// @Description Append-only download log; an absent image_id means a full-gallery download.
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body dto.DownloadRequest true "Downloaded image"
// @Success 201 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Router /api/v1/gallery/downloads [post]
func (r *Routers) RecordDownload(c echo.Context) error {
	const op = "http.routers.RecordDownload"

	log := r.log.With(
		slog.String("op", op),
	)

	gs, ok := r.requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	var req dto.DownloadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	id, err := r.EngagementService.RecordDownload(c.Request().Context(), gs.GalleryID, gs.ClientEmail, req.ImageID)
	if err != nil {
		log.Error("failed to record download", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status: "success",
		Data:   map[string]string{"download_id": id.String()},
	})
}

// StartAnalytics godoc
// @Summary Open a visit record
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body dto.StartAnalyticsRequest true "Visit details"
// @Success 201 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Router /api/v1/gallery/analytics/start [post]
func (r *Routers) StartAnalytics(c echo.Context) error {
	const op = "http.routers.StartAnalytics"

	log := r.log.With(
		slog.String("op", op),
	)

	gs, ok := r.requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	var req dto.StartAnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	session := models.AnalyticsSession{
		GalleryID:    gs.GalleryID,
		ClientEmail:  gs.ClientEmail,
		ImagesViewed: req.ImagesViewed,
		UserAgent:    req.UserAgent,
		IPAddress:    c.RealIP(),
	}
	if req.SessionStart != nil {
		session.SessionStart = *req.SessionStart
	}
	if session.UserAgent == "" {
		session.UserAgent = c.Request().UserAgent()
	}

	created, err := r.EngagementService.StartAnalyticsSession(c.Request().Context(), session)
	if err != nil {
		log.Error("failed to start analytics session", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(created))
}

// CloseAnalytics godoc
// @Summary Close a visit record
// @Tags engagement
// @Accept json
// @Produce json
// @Param session_id path string true "Analytics session UUID" format(uuid)
// @Param request body dto.CloseAnalyticsRequest true "Closing details"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "No active gallery session"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/gallery/analytics/{session_id}/close [post]
func (r *Routers) CloseAnalytics(c echo.Context) error {
	const op = "http.routers.CloseAnalytics"

	log := r.log.With(
		slog.String("op", op),
	)

	if _, ok := r.requireSession(c); !ok {
		return c.JSON(http.StatusUnauthorized, response.ErrSessionRequired)
	}

	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid session ID format"))
	}

	var req dto.CloseAnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.EngagementService.CloseAnalyticsSession(c.Request().Context(), sessionID, req.SessionEnd, req.DurationSeconds, req.ImagesViewed); err != nil {
		log.Error("failed to close analytics session", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("session_not_found", "Analytics session not found"))
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "session closed",
	})
}

// AdminLogin godoc
// @Summary Admin login
// @Description Exchanges the studio password for a bearer token.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.AdminLoginRequest true "Admin password"
// @Success 200 {object} response.Response{data=map[string]string} "Bearer token"
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/v1/admin/login [post]
func (r *Routers) AdminLogin(c echo.Context) error {
	const op = "http.routers.AdminLogin"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.AdminLoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	token, err := r.AdminService.Login(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidPassword) {
			return c.JSON(http.StatusUnauthorized, response.ErrorResponseWithDetails("authentication_failed", "Invalid password"))
		}

		log.Error("admin login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data:   map[string]string{"access_token": token},
	})
}

// CreateGallery godoc
// @Summary Create a client gallery
// @Description Creates a gallery with generated slug and access code.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Gallery data"
// @Success 201 {object} response.Response{data=dto.GalleryResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries [post]
func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateGalleryRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create gallery", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(gallery))
}

// ListGalleries godoc
// @Summary List all galleries
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.GalleryResponse}
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries [get]
func (r *Routers) ListGalleries(c echo.Context) error {
	const op = "http.routers.ListGalleries"

	galleries, err := r.GalleryService.ListGalleries(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(galleries))
}

// GetGallery godoc
// @Summary Get a gallery by ID
// @Tags admin
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Success 200 {object} response.Response{data=dto.GalleryResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id} [get]
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	gallery, err := r.GalleryService.GetGalleryByID(c.Request().Context(), galleryID)
	if err != nil {
		log.Warn("gallery not found", slog.String("gallery_id", galleryID.String()), sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gallery))
}

// UpdateGallery godoc
// @Summary Update a gallery
// @Description Updates gallery fields. Slug and access code are never rewritten.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Param request body dto.UpdateGalleryRequest true "Updated fields"
// @Success 200 {object} response.Response{data=dto.GalleryResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id} [put]
func (r *Routers) UpdateGallery(c echo.Context) error {
	const op = "http.routers.UpdateGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	var req dto.UpdateGalleryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	req.ID = galleryID

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.UpdateGallery(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to update gallery", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gallery))
}

// UpdateGalleryStatus godoc
// @Summary Archive or reactivate a gallery
// @Description Flips gallery status. An archived gallery fails client authentication on the next attempt.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id}/status [patch]
func (r *Routers) UpdateGalleryStatus(c echo.Context) error {
	const op = "http.routers.UpdateGalleryStatus"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	if err := r.GalleryService.UpdateGalleryStatus(c.Request().Context(), galleryID, req.Status); err != nil {
		log.Error("failed to update status", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "status updated",
	})
}

// DeleteGallery godoc
// @Summary Delete a gallery
// @Tags admin
// @Param id path string true "Gallery UUID" format(uuid)
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id} [delete]
func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	if err := r.GalleryService.DeleteGallery(c.Request().Context(), galleryID); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetGalleryStats godoc
// @Summary Engagement snapshot for a gallery
// @Description Returns views, visitors, downloads, favorites, last access and days until expiration.
// @Tags admin
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Success 200 {object} response.Response{data=dto.StatsResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id}/stats [get]
func (r *Routers) GetGalleryStats(c echo.Context) error {
	const op = "http.routers.GetGalleryStats"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	stats, err := r.StatsService.GetGalleryStats(c.Request().Context(), galleryID)
	if err != nil {
		log.Warn("failed to get stats", slog.String("gallery_id", galleryID.String()), sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.NewStatsResponse(stats)))
}

// ExtendExpiration godoc
// @Summary Extend gallery expiration
// @Description Pushes the stored expiration date forward by whole days.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Param request body dto.ExtendExpirationRequest true "Days to add"
// @Success 200 {object} response.Response{data=dto.GalleryResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id}/extend [post]
func (r *Routers) ExtendExpiration(c echo.Context) error {
	const op = "http.routers.ExtendExpiration"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	var req dto.ExtendExpirationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	gallery, err := r.GalleryService.ExtendExpiration(c.Request().Context(), galleryID, req.Days)
	if err != nil {
		log.Error("failed to extend expiration", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrGalleryNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(gallery))
}

// ListGalleryAnalytics godoc
// @Summary Visit records for a gallery
// @Tags admin
// @Produce json
// @Param id path string true "Gallery UUID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/galleries/{id}/analytics [get]
func (r *Routers) ListGalleryAnalytics(c echo.Context) error {
	const op = "http.routers.ListGalleryAnalytics"

	log := r.log.With(
		slog.String("op", op),
	)

	galleryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid gallery ID format"))
	}

	sessions, err := r.EngagementService.ListAnalyticsSessions(c.Request().Context(), galleryID)
	if err != nil {
		log.Error("failed to list analytics sessions", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sessions))
}

// requireSession loads the gallery session from the cookie and checks
// its window. An expired session is cleared so the client cookie does
// not outlive the session it carries.
func (r *Routers) requireSession(c echo.Context) (models.GallerySession, bool) {
	gs, ok := loadGallerySession(c)
	if !ok {
		return models.GallerySession{}, false
	}

	if !r.SessionService.Valid(gs) {
		if err := clearGallerySession(c); err != nil {
			r.log.Warn("failed to clear expired session", sl.Err(err))
		}
		return models.GallerySession{}, false
	}

	return gs, true
}

func galleryToResponse(gallery models.ClientGallery) dto.GalleryResponse {
	return dto.GalleryResponse{
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
