package repository

import (
	"errors"
	"fmt"
	"time"

	"context"

	"evermore_gallery/internal/domain/models"
	"evermore_gallery/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const galleryTable = "client_galleries"

var galleryColumns = []string{
	"id",
	"client_email",
	"bride_name",
	"groom_name",
	"wedding_date",
	"gallery_slug",
	"access_code",
	"access_password",
	"cover_image",
	"images",
	"status",
	"expiration_date",
	"view_count",
	"last_accessed_at",
	"created_at",
	"updated_at",
}

type GalleryRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewGalleryRepo(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateGallery inserts a new gallery and returns its ID. Slug
// uniqueness is ultimately enforced by the UNIQUE index on
// gallery_slug; a losing race with another insert surfaces here.
func (r *GalleryRepo) CreateGallery(ctx context.Context, gallery models.ClientGallery) (uuid.UUID, error) {
	const op = "repository.GalleryRepo.CreateGallery"

	query, args, err := r.sb.Insert(galleryTable).
		Columns(
			"client_email",
			"bride_name",
			"groom_name",
			"wedding_date",
			"gallery_slug",
			"access_code",
			"access_password",
			"cover_image",
			"images",
			"status",
			"expiration_date",
		).
		Values(
			gallery.ClientEmail,
			gallery.BrideName,
			gallery.GroomName,
			gallery.WeddingDate,
			gallery.GallerySlug,
			gallery.AccessCode,
			gallery.AccessPassword,
			gallery.CoverImage,
			pq.Array(gallery.Images),
			gallery.Status,
			gallery.ExpirationDate,
		).
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

// UpdateGallery overwrites the mutable gallery fields. Slug and ID are
// immutable once assigned and are never part of the SET list.
func (r *GalleryRepo) UpdateGallery(ctx context.Context, gallery models.ClientGallery) error {
	const op = "repository.GalleryRepo.UpdateGallery"

	query, args, err := r.sb.Update(galleryTable).
		Set("client_email", gallery.ClientEmail).
		Set("bride_name", gallery.BrideName).
		Set("groom_name", gallery.GroomName).
		Set("wedding_date", gallery.WeddingDate).
		Set("access_password", gallery.AccessPassword).
		Set("cover_image", gallery.CoverImage).
		Set("images", pq.Array(gallery.Images)).
		Set("status", gallery.Status).
		Set("expiration_date", gallery.ExpirationDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": gallery.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	return nil
}

func (r *GalleryRepo) UpdateGalleryStatus(ctx context.Context, id uuid.UUID, status string) error {
	const op = "repository.GalleryRepo.UpdateGalleryStatus"

	query, args, err := r.sb.Update(galleryTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
	}

	return nil
}

func (r *GalleryRepo) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	const op = "repository.GalleryRepo.DeleteGallery"

	query, args, err := r.sb.Delete(galleryTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *GalleryRepo) GetGalleryByID(ctx context.Context, id uuid.UUID) (models.ClientGallery, error) {
	return r.getGallery(ctx, squirrel.Eq{"id": id})
}

func (r *GalleryRepo) GetGalleryBySlug(ctx context.Context, slug string) (models.ClientGallery, error) {
	return r.getGallery(ctx, squirrel.Eq{"gallery_slug": slug})
}

func (r *GalleryRepo) getGallery(ctx context.Context, pred interface{}) (models.ClientGallery, error) {
	const op = "repository.GalleryRepo.getGallery"

	query, args, err := r.sb.Select(galleryColumns...).
		From(galleryTable).
		Where(pred).
		ToSql()
	if err != nil {
		return models.ClientGallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := r.scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ClientGallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.ClientGallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func (r *GalleryRepo) ListGalleries(ctx context.Context) ([]models.ClientGallery, error) {
	const op = "repository.GalleryRepo.ListGalleries"

	query, args, err := r.sb.Select(galleryColumns...).
		From(galleryTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var galleries []models.ClientGallery
	for rows.Next() {
		gallery, err := r.scanGallery(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		galleries = append(galleries, gallery)
	}

	return galleries, nil
}

// SlugExists is the best-effort collision check used by the slug
// generator. It is not atomic with the eventual insert; the UNIQUE
// index closes the remaining window.
func (r *GalleryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "repository.GalleryRepo.SlugExists"

	query, args, err := r.sb.Select("COUNT(*) > 0").
		From(galleryTable).
		Where(squirrel.Eq{"gallery_slug": slug}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// FindForAuthentication applies every credential predicate in one
// query so the caller cannot tell which one failed.
func (r *GalleryRepo) FindForAuthentication(ctx context.Context, email, slug, code string) (models.ClientGallery, error) {
	const op = "repository.GalleryRepo.FindForAuthentication"

	builder := r.sb.Select(galleryColumns...).
		From(galleryTable).
		Where(squirrel.Eq{"status": models.GalleryStatusActive}).
		Where(squirrel.Expr("expiration_date > NOW()")).
		Where(squirrel.Eq{"access_code": code})

	if email != "" {
		builder = builder.Where(squirrel.Eq{"client_email": email})
	}
	if slug != "" {
		builder = builder.Where(squirrel.Eq{"gallery_slug": slug})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.ClientGallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := r.scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ClientGallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.ClientGallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// IncrementViewCount is evaluated server-side so two concurrent logins
// never lose an increment.
func (r *GalleryRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	const op = "repository.GalleryRepo.IncrementViewCount"

	query, args, err := r.sb.Update(galleryTable).
		Set("view_count", squirrel.Expr("view_count + 1")).
		Set("last_accessed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING view_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int64
	err = r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *GalleryRepo) UpdateExpiration(ctx context.Context, id uuid.UUID, expiration time.Time) (models.ClientGallery, error) {
	const op = "repository.GalleryRepo.UpdateExpiration"

	query, args, err := r.sb.Update(galleryTable).
		Set("expiration_date", expiration).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return models.ClientGallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := r.scanGallery(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ClientGallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.ClientGallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func columnList() string {
	list := galleryColumns[0]
	for _, col := range galleryColumns[1:] {
		list += ", " + col
	}
	return list
}

func (r *GalleryRepo) scanGallery(row pgx.Row) (models.ClientGallery, error) {
	var gallery models.ClientGallery
	err := row.Scan(
		&gallery.ID,
		&gallery.ClientEmail,
		&gallery.BrideName,
		&gallery.GroomName,
		&gallery.WeddingDate,
		&gallery.GallerySlug,
		&gallery.AccessCode,
		&gallery.AccessPassword,
		&gallery.CoverImage,
		&gallery.Images,
		&gallery.Status,
		&gallery.ExpirationDate,
		&gallery.ViewCount,
		&gallery.LastAccessedAt,
		&gallery.CreatedAt,
		&gallery.UpdatedAt,
	)
	if err != nil {
		return models.ClientGallery{}, err
	}

	if gallery.Images == nil {
		gallery.Images = []string{}
	}

	return gallery, nil
}
