package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"evermore_gallery/internal/domain/models"
	access "evermore_gallery/internal/services/access_service"
	admin "evermore_gallery/internal/services/admin_service"
	httptransport "evermore_gallery/internal/transport/http"
	"evermore_gallery/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) Authenticate(ctx context.Context, creds access.Credentials) (models.ClientGallery, models.GallerySession, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(models.ClientGallery), args.Get(1).(models.GallerySession), args.Error(2)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Valid(s models.GallerySession) bool {
	args := m.Called(s)
	return args.Bool(0)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (*dto.GalleryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GalleryResponse), args.Error(1)
}

func (m *MockGalleryService) UpdateGallery(ctx context.Context, req dto.UpdateGalleryRequest) (*dto.GalleryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GalleryResponse), args.Error(1)
}

func (m *MockGalleryService) UpdateGalleryStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockGalleryService) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryService) GetGalleryByID(ctx context.Context, id uuid.UUID) (*dto.GalleryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GalleryResponse), args.Error(1)
}

func (m *MockGalleryService) ListGalleries(ctx context.Context) ([]dto.GalleryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.GalleryResponse), args.Error(1)
}

func (m *MockGalleryService) ExtendExpiration(ctx context.Context, id uuid.UUID, days int) (*dto.GalleryResponse, error) {
	args := m.Called(ctx, id, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GalleryResponse), args.Error(1)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) AddFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (bool, error) {
	args := m.Called(ctx, galleryID, clientEmail, imageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementService) RemoveFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) error {
	args := m.Called(ctx, galleryID, clientEmail, imageID)
	return args.Error(0)
}

func (m *MockEngagementService) ListFavorites(ctx context.Context, galleryID uuid.UUID, clientEmail string) ([]models.Favorite, error) {
	args := m.Called(ctx, galleryID, clientEmail)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *MockEngagementService) RecordDownload(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (uuid.UUID, error) {
	args := m.Called(ctx, galleryID, clientEmail, imageID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockEngagementService) StartAnalyticsSession(ctx context.Context, s models.AnalyticsSession) (models.AnalyticsSession, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.AnalyticsSession), args.Error(1)
}

func (m *MockEngagementService) CloseAnalyticsSession(ctx context.Context, sessionID uuid.UUID, sessionEnd *time.Time, durationSeconds *int64, imagesViewed *int) error {
	args := m.Called(ctx, sessionID, sessionEnd, durationSeconds, imagesViewed)
	return args.Error(0)
}

func (m *MockEngagementService) ListAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) ([]models.AnalyticsSession, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).([]models.AnalyticsSession), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetGalleryStats(ctx context.Context, galleryID uuid.UUID) (models.GalleryStats, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).(models.GalleryStats), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

type testEnv struct {
	e          *echo.Echo
	access     *MockAccessService
	sessions   *MockSessionService
	gallery    *MockGalleryService
	engagement *MockEngagementService
	stats      *MockStatsService
	admin      *MockAdminService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		access:     new(MockAccessService),
		sessions:   new(MockSessionService),
		gallery:    new(MockGalleryService),
		engagement: new(MockEngagementService),
		stats:      new(MockStatsService),
		admin:      new(MockAdminService),
	}

	routers := httptransport.NewRouter(
		slog.Default(),
		env.access,
		env.sessions,
		env.gallery,
		env.engagement,
		env.stats,
		env.admin,
	)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))

	e.POST("/api/v1/gallery/authenticate", routers.Authenticate)
	e.GET("/api/v1/gallery/session", routers.GetSession)
	e.POST("/api/v1/gallery/logout", routers.Logout)
	e.POST("/api/v1/gallery/favorites", routers.AddFavorite)
	e.GET("/api/v1/gallery/favorites", routers.ListFavorites)
	e.DELETE("/api/v1/gallery/favorites/:image_id", routers.RemoveFavorite)
	e.POST("/api/v1/gallery/downloads", routers.RecordDownload)
	e.POST("/api/v1/admin/login", routers.AdminLogin)
	e.POST("/api/v1/admin/galleries", routers.CreateGallery)

	env.e = e
	return env
}

func (env *testEnv) do(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func testGallerySession(galleryID uuid.UUID) models.GallerySession {
	now := time.Now().UTC()
	return models.GallerySession{
		GalleryID:   galleryID,
		GallerySlug: "anna-peter",
		ClientEmail: "anna@example.com",
		Code:        "ABCD2345",
		AccessedAt:  now,
		ExpiresAt:   now.Add(2 * time.Hour),
	}
}

func TestAuthenticate(t *testing.T) {
	galleryID := uuid.New()
	gallery := models.ClientGallery{
		ID:          galleryID,
		GallerySlug: "anna-peter",
		ClientEmail: "anna@example.com",
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(env *testEnv)
		wantStatus   int
		wantContains string
	}{
		{
			name: "successful login sets session cookie",
			body: `{"email":"anna@example.com","code":"ABCD2345"}`,
			mockSetup: func(env *testEnv) {
				env.access.On("Authenticate", mock.Anything, access.Credentials{
					Email: "anna@example.com",
					Code:  "ABCD2345",
				}).Return(gallery, testGallerySession(galleryID), nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantContains: "anna-peter",
		},
		{
			name: "missing credentials",
			body: `{"code":""}`,
			mockSetup: func(env *testEnv) {
				env.access.On("Authenticate", mock.Anything, mock.Anything).
					Return(models.ClientGallery{}, models.GallerySession{}, access.ErrMissingCredentials).Once()
			},
			wantStatus:   http.StatusBadRequest,
			wantContains: "missing_credentials",
		},
		{
			name: "collapsed failure body",
			body: `{"email":"anna@example.com","code":"WRONG234"}`,
			mockSetup: func(env *testEnv) {
				env.access.On("Authenticate", mock.Anything, mock.Anything).
					Return(models.ClientGallery{}, models.GallerySession{}, access.ErrInvalidCredentials).Once()
			},
			wantStatus:   http.StatusUnauthorized,
			wantContains: "Invalid credentials or gallery expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tt.mockSetup(env)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/authenticate", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := env.do(req, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)

			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, rec.Result().Cookies())
			}

			env.access.AssertExpectations(t)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv()
	galleryID := uuid.New()

	env.access.On("Authenticate", mock.Anything, mock.Anything).
		Return(models.ClientGallery{ID: galleryID, GallerySlug: "anna-peter"}, testGallerySession(galleryID), nil).Once()

	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/authenticate",
		strings.NewReader(`{"email":"anna@example.com","code":"ABCD2345"}`))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	loginRec := env.do(loginReq, nil)
	require.Equal(t, http.StatusOK, loginRec.Code)

	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("session readable while valid", func(t *testing.T) {
		env.sessions.On("Valid", mock.Anything).Return(true).Once()

		rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/gallery/session", nil), cookies)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "anna-peter")
	})

	t.Run("expired session reads as absent", func(t *testing.T) {
		env.sessions.On("Valid", mock.Anything).Return(false).Once()

		rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/gallery/session", nil), cookies)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "session_required")
	})

	t.Run("no cookie at all", func(t *testing.T) {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/gallery/session", nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestEngagementRequiresSession(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/favorites",
		strings.NewReader(`{"image_id":"img1.jpg"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := env.do(req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "session_required")
	env.engagement.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddFavoriteWithSession(t *testing.T) {
	env := newTestEnv()
	galleryID := uuid.New()

	env.access.On("Authenticate", mock.Anything, mock.Anything).
		Return(models.ClientGallery{ID: galleryID}, testGallerySession(galleryID), nil).Once()
	env.sessions.On("Valid", mock.Anything).Return(true)
	env.engagement.On("AddFavorite", mock.Anything, galleryID, "anna@example.com", "img1.jpg").
		Return(true, nil).Once()

	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/authenticate",
		strings.NewReader(`{"email":"anna@example.com","code":"ABCD2345"}`))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	loginRec := env.do(loginReq, nil)
	require.Equal(t, http.StatusOK, loginRec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/favorites",
		strings.NewReader(`{"image_id":"img1.jpg"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := env.do(req, loginRec.Result().Cookies())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":true`)
	env.engagement.AssertExpectations(t)
}

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(env *testEnv)
		wantStatus int
	}{
		{
			name: "valid password",
			body: `{"password":"studio-password"}`,
			mockSetup: func(env *testEnv) {
				env.admin.On("Login", mock.Anything, "studio-password").
					Return("signed.jwt.token", nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"password":"guessed"}`,
			mockSetup: func(env *testEnv) {
				env.admin.On("Login", mock.Anything, "guessed").
					Return("", admin.ErrInvalidPassword).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty password rejected by validation",
			body:       `{"password":""}`,
			mockSetup:  func(env *testEnv) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			tt.mockSetup(env)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := env.do(req, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env.admin.AssertExpectations(t)
		})
	}
}

func TestCreateGalleryValidation(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/galleries",
		strings.NewReader(`{"bride_name":"Anna"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := env.do(req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.gallery.AssertNotCalled(t, "CreateGallery", mock.Anything, mock.Anything)
}
