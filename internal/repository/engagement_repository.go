package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	favoriteTable  = "client_gallery_favorites"
	downloadTable  = "client_gallery_downloads"
	analyticsTable = "client_gallery_analytics"
)

type EngagementRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewEngagementRepo(db *pgxpool.Pool) *EngagementRepo {
	return &EngagementRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AddFavorite inserts the (gallery, client, image) tuple. A duplicate
// is swallowed by the conflict clause; the bool reports whether a new
// row was actually written.
func (r *EngagementRepo) AddFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) (bool, error) {
	const op = "repository.EngagementRepo.AddFavorite"

	query, args, err := r.sb.Insert(favoriteTable).
		Columns("gallery_id", "client_email", "image_id").
		Values(galleryID, clientEmail, imageID).
		Suffix("ON CONFLICT (gallery_id, client_email, image_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ct.RowsAffected() > 0, nil
}

func (r *EngagementRepo) RemoveFavorite(ctx context.Context, galleryID uuid.UUID, clientEmail, imageID string) error {
	const op = "repository.EngagementRepo.RemoveFavorite"

	query, args, err := r.sb.Delete(favoriteTable).
		Where(squirrel.Eq{
			"gallery_id":   galleryID,
			"client_email": clientEmail,
			"image_id":     imageID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrFavoriteNotFound)
	}

	return nil
}

func (r *EngagementRepo) ListFavorites(ctx context.Context, galleryID uuid.UUID, clientEmail string) ([]models.Favorite, error) {
	const op = "repository.EngagementRepo.ListFavorites"

	builder := r.sb.Select("id", "gallery_id", "client_email", "image_id", "created_at").
		From(favoriteTable).
		Where(squirrel.Eq{"gallery_id": galleryID})

	if clientEmail != "" {
		builder = builder.Where(squirrel.Eq{"client_email": clientEmail})
	}

	query, args, err := builder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var fav models.Favorite
		err := rows.Scan(&fav.ID, &fav.GalleryID, &fav.ClientEmail, &fav.ImageID, &fav.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		favorites = append(favorites, fav)
	}

	return favorites, nil
}

func (r *EngagementRepo) CountFavorites(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	return r.countRows(ctx, favoriteTable, galleryID)
}

func (r *EngagementRepo) RecordDownload(ctx context.Context, download models.Download) (uuid.UUID, error) {
	const op = "repository.EngagementRepo.RecordDownload"

	query, args, err := r.sb.Insert(downloadTable).
		Columns("gallery_id", "client_email", "image_id").
		Values(download.GalleryID, download.ClientEmail, download.ImageID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *EngagementRepo) CountDownloads(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	return r.countRows(ctx, downloadTable, galleryID)
}

func (r *EngagementRepo) StartAnalyticsSession(ctx context.Context, session models.AnalyticsSession) (models.AnalyticsSession, error) {
	const op = "repository.EngagementRepo.StartAnalyticsSession"

	start := session.SessionStart
	if start.IsZero() {
		start = time.Now().UTC()
	}

	query, args, err := r.sb.Insert(analyticsTable).
		Columns("gallery_id", "client_email", "session_start", "images_viewed", "user_agent", "ip_address").
		Values(session.GalleryID, session.ClientEmail, start, session.ImagesViewed, session.UserAgent, session.IPAddress).
		Suffix("RETURNING id, session_start").
		ToSql()
	if err != nil {
		return models.AnalyticsSession{}, fmt.Errorf("%s: %w", op, err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&session.ID, &session.SessionStart)
	if err != nil {
		return models.AnalyticsSession{}, fmt.Errorf("%s: %w", op, err)
	}

	return session, nil
}

func (r *EngagementRepo) CloseAnalyticsSession(ctx context.Context, sessionID uuid.UUID, sessionEnd time.Time, durationSeconds *int64, imagesViewed *int) error {
	const op = "repository.EngagementRepo.CloseAnalyticsSession"

	builder := r.sb.Update(analyticsTable).
		Set("session_end", sessionEnd).
		Where(squirrel.Eq{"id": sessionID})

	if durationSeconds != nil {
		builder = builder.Set("session_duration_seconds", *durationSeconds)
	}
	if imagesViewed != nil {
		builder = builder.Set("images_viewed", *imagesViewed)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
	}

	return nil
}

func (r *EngagementRepo) ListAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) ([]models.AnalyticsSession, error) {
	const op = "repository.EngagementRepo.ListAnalyticsSessions"

	query, args, err := r.sb.Select(
		"id", "gallery_id", "client_email", "session_start", "session_end",
		"session_duration_seconds", "images_viewed", "user_agent", "ip_address",
	).
		From(analyticsTable).
		Where(squirrel.Eq{"gallery_id": galleryID}).
		OrderBy("session_start DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sessions []models.AnalyticsSession
	for rows.Next() {
		var s models.AnalyticsSession
		err := rows.Scan(
			&s.ID,
			&s.GalleryID,
			&s.ClientEmail,
			&s.SessionStart,
			&s.SessionEnd,
			&s.DurationSeconds,
			&s.ImagesViewed,
			&s.UserAgent,
			&s.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *EngagementRepo) CountAnalyticsSessions(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	return r.countRows(ctx, analyticsTable, galleryID)
}

func (r *EngagementRepo) countRows(ctx context.Context, table string, galleryID uuid.UUID) (int64, error) {
	const op = "repository.EngagementRepo.countRows"

	query, args, err := r.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"gallery_id": galleryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int64
	err = r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
