package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type ImageRepository struct {
	db DBTX
}

func NewImageRepository(db DBTX) *ImageRepository {
	return &ImageRepository{db: db}
}

const imageColumns = `id, title, description, filename, path, url, mime_type, file_size,
	width, height, category, tags, is_active, uploaded_by, created_at, updated_at`

func scanImage(row interface{ Scan(dest ...any) error }, img *models.Image) error {
	return row.Scan(
		&img.ID,
		&img.Title,
		&img.Description,
		&img.Filename,
		&img.Path,
		&img.URL,
		&img.MimeType,
		&img.FileSize,
		&img.Width,
		&img.Height,
		&img.Category,
		&img.Tags,
		&img.IsActive,
		&img.UploadedBy,
		&img.CreatedAt,
		&img.UpdatedAt,
	)
}

func (r *ImageRepository) Create(ctx context.Context, img *models.Image) error {
	query := `
		INSERT INTO images (title, description, filename, path, url, mime_type, file_size,
			width, height, category, tags, is_active, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		img.Title, img.Description, img.Filename, img.Path, img.URL, img.MimeType,
		img.FileSize, img.Width, img.Height, img.Category, img.Tags, img.IsActive, img.UploadedBy,
	).Scan(&img.ID, &img.CreatedAt, &img.UpdatedAt)
}

func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`
	var img models.Image
	if err := scanImage(r.db.QueryRow(ctx, query, id), &img); err != nil {
		return nil, err
	}
	return &img, nil
}

type MediaListFilter struct {
	Category   *string
	Search     string
	ActiveOnly bool
	Limit      int
	Offset     int
}

func (r *ImageRepository) List(ctx context.Context, filter MediaListFilter) ([]models.Image, int, error) {
	where := `
		WHERE ($1::text IS NULL OR category = $1)
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%')
		  AND (NOT $3 OR is_active)
	`
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM images`+where,
		filter.Category, filter.Search, filter.ActiveOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + imageColumns + ` FROM images` + where + `
		ORDER BY id DESC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query,
		filter.Category, filter.Search, filter.ActiveOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	images := make([]models.Image, 0)
	for rows.Next() {
		var img models.Image
		if err := scanImage(rows, &img); err != nil {
			return nil, 0, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

type UpdateImageInput struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *[]string
	IsActive    *bool
}

func (r *ImageRepository) Update(ctx context.Context, id int64, input UpdateImageInput) (*models.Image, error) {
	query := `
		UPDATE images
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			category = COALESCE($3, category),
			tags = COALESCE($4, tags),
			is_active = COALESCE($5, is_active),
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + imageColumns + `
	`
	var img models.Image
	err := scanImage(r.db.QueryRow(ctx, query,
		input.Title, input.Description, input.Category, input.Tags, input.IsActive, id,
	), &img)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type VideoRepository struct {
	db DBTX
}

func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, title, description, filename, path, url, mime_type, file_size,
	duration, thumbnail_path, thumbnail_url, category, tags, is_active, uploaded_by,
	created_at, updated_at`

func scanVideo(row interface{ Scan(dest ...any) error }, video *models.Video) error {
	return row.Scan(
		&video.ID,
		&video.Title,
		&video.Description,
		&video.Filename,
		&video.Path,
		&video.URL,
		&video.MimeType,
		&video.FileSize,
		&video.Duration,
		&video.ThumbnailPath,
		&video.ThumbnailURL,
		&video.Category,
		&video.Tags,
		&video.IsActive,
		&video.UploadedBy,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	query := `
		INSERT INTO videos (title, description, filename, path, url, mime_type, file_size,
			duration, thumbnail_path, thumbnail_url, category, tags, is_active, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		video.Title, video.Description, video.Filename, video.Path, video.URL,
		video.MimeType, video.FileSize, video.Duration, video.ThumbnailPath,
		video.ThumbnailURL, video.Category, video.Tags, video.IsActive, video.UploadedBy,
	).Scan(&video.ID, &video.CreatedAt, &video.UpdatedAt)
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	var video models.Video
	if err := scanVideo(r.db.QueryRow(ctx, query, id), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) List(ctx context.Context, filter MediaListFilter) ([]models.Video, int, error) {
	where := `
		WHERE ($1::text IS NULL OR category = $1)
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%')
		  AND (NOT $3 OR is_active)
	`
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM videos`+where,
		filter.Category, filter.Search, filter.ActiveOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + videoColumns + ` FROM videos` + where + `
		ORDER BY id DESC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query,
		filter.Category, filter.Search, filter.ActiveOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		var video models.Video
		if err := scanVideo(rows, &video); err != nil {
			return nil, 0, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

type UpdateVideoInput struct {
	Title       *string
	Description *string
	Category    *string
	Tags        *[]string
	IsActive    *bool
}

func (r *VideoRepository) Update(ctx context.Context, id int64, input UpdateVideoInput) (*models.Video, error) {
	query := `
		UPDATE videos
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			category = COALESCE($3, category),
			tags = COALESCE($4, tags),
			is_active = COALESCE($5, is_active),
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + videoColumns + `
	`
	var video models.Video
	err := scanVideo(r.db.QueryRow(ctx, query,
		input.Title, input.Description, input.Category, input.Tags, input.IsActive, id,
	), &video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
