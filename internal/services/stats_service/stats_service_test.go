package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryGetter struct {
	mock.Mock
}

func (m *MockGalleryGetter) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.ClientGallery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ClientGallery), args.Error(1)
}

type MockEngagementCounter struct {
	mock.Mock
}

func (m *MockEngagementCounter) CountFavorites(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementCounter) CountDownloads(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementCounter) CountAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).(int64), args.Error(1)
}

func TestStatsService_GetGalleryStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	galleryID := uuid.New()
	lastAccess := now.Add(-time.Hour)
	gallery := models.ClientGallery{
		ID:             galleryID,
		ViewCount:      5,
		LastAccessedAt: &lastAccess,
		ExpirationDate: now.AddDate(0, 0, 10),
	}

	galleries := new(MockGalleryGetter)
	galleries.On("GetGalleryByID", ctx, galleryID).Return(gallery, nil).Once()

	engagement := new(MockEngagementCounter)
	engagement.On("CountFavorites", ctx, galleryID).Return(int64(0), nil).Once()
	engagement.On("CountDownloads", ctx, galleryID).Return(int64(2), nil).Once()
	engagement.On("CountAnalyticsSessions", ctx, galleryID).Return(int64(3), nil).Once()

	service := NewStatsService(slog.Default(), galleries, engagement, 0)
	service.now = func() time.Time { return now }

	stats, err := service.GetGalleryStats(ctx, galleryID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalViews)
	assert.Equal(t, int64(2), stats.TotalDownloads)
	assert.Equal(t, int64(0), stats.TotalFavorites)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, 10, stats.DaysUntilExpiration)
	assert.Equal(t, &lastAccess, stats.LastAccessed)

	galleries.AssertExpectations(t)
	engagement.AssertExpectations(t)
}

func TestStatsService_PartialAggregationDegradesToZero(t *testing.T) {
	ctx := context.Background()

	galleryID := uuid.New()
	gallery := models.ClientGallery{
		ID:             galleryID,
		ViewCount:      7,
		ExpirationDate: time.Now().AddDate(0, 0, 30),
	}

	galleries := new(MockGalleryGetter)
	galleries.On("GetGalleryByID", ctx, galleryID).Return(gallery, nil).Once()

	engagement := new(MockEngagementCounter)
	engagement.On("CountFavorites", ctx, galleryID).Return(int64(0), errors.New("relation unavailable")).Once()
	engagement.On("CountDownloads", ctx, galleryID).Return(int64(4), nil).Once()
	engagement.On("CountAnalyticsSessions", ctx, galleryID).Return(int64(0), errors.New("timeout")).Once()

	service := NewStatsService(slog.Default(), galleries, engagement, 0)

	stats, err := service.GetGalleryStats(ctx, galleryID)
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TotalViews)
	assert.Equal(t, int64(4), stats.TotalDownloads)
	assert.Equal(t, int64(0), stats.TotalFavorites)
	assert.Equal(t, int64(0), stats.UniqueVisitors)
}

func TestStatsService_GalleryNotFound(t *testing.T) {
	ctx := context.Background()
	galleryID := uuid.New()

	galleries := new(MockGalleryGetter)
	galleries.On("GetGalleryByID", ctx, galleryID).
		Return(models.ClientGallery{}, storage.ErrGalleryNotFound).Once()

	service := NewStatsService(slog.Default(), galleries, new(MockEngagementCounter), 0)

	_, err := service.GetGalleryStats(ctx, galleryID)
	assert.ErrorIs(t, err, storage.ErrGalleryNotFound)
}

func TestStatsService_ExpiredGalleryFloorsAtZeroDays(t *testing.T) {
	ctx := context.Background()
	galleryID := uuid.New()

	gallery := models.ClientGallery{
		ID:             galleryID,
		ExpirationDate: time.Now().AddDate(0, 0, -3),
	}

	galleries := new(MockGalleryGetter)
	galleries.On("GetGalleryByID", ctx, galleryID).Return(gallery, nil).Once()

	engagement := new(MockEngagementCounter)
	engagement.On("CountFavorites", ctx, galleryID).Return(int64(0), nil).Once()
	engagement.On("CountDownloads", ctx, galleryID).Return(int64(0), nil).Once()
	engagement.On("CountAnalyticsSessions", ctx, galleryID).Return(int64(0), nil).Once()

	service := NewStatsService(slog.Default(), galleries, engagement, 0)

	stats, err := service.GetGalleryStats(ctx, galleryID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DaysUntilExpiration)
}

func TestStatsService_CacheServesSecondRead(t *testing.T) {
	ctx := context.Background()
	galleryID := uuid.New()

	gallery := models.ClientGallery{
		ID:             galleryID,
		ViewCount:      1,
		ExpirationDate: time.Now().AddDate(0, 0, 5),
	}

	galleries := new(MockGalleryGetter)
	galleries.On("GetGalleryByID", ctx, galleryID).Return(gallery, nil).Once()

	engagement := new(MockEngagementCounter)
	engagement.On("CountFavorites", ctx, galleryID).Return(int64(0), nil).Once()
	engagement.On("CountDownloads", ctx, galleryID).Return(int64(0), nil).Once()
	engagement.On("CountAnalyticsSessions", ctx, galleryID).Return(int64(0), nil).Once()

	service := NewStatsService(slog.Default(), galleries, engagement, time.Minute)

	first, err := service.GetGalleryStats(ctx, galleryID)
	require.NoError(t, err)

	second, err := service.GetGalleryStats(ctx, galleryID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Single repository round trip: the second read came from cache.
	galleries.AssertNumberOfCalls(t, "GetGalleryByID", 1)
}
