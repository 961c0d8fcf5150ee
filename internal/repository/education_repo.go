package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type EducationRepository struct {
	db DBTX
}

func NewEducationRepository(db DBTX) *EducationRepository {
	return &EducationRepository{db: db}
}

const educationColumns = `id, created_by_admin, title, description, image_url, content,
	content_type, video_url, category, tags, read_time_minutes, is_featured, is_active,
	created_at, updated_at`

func scanEducation(row interface{ Scan(dest ...any) error }, content *models.EducationContent) error {
	return row.Scan(
		&content.ID,
		&content.CreatedByAdmin,
		&content.Title,
		&content.Description,
		&content.ImageURL,
		&content.Content,
		&content.ContentType,
		&content.VideoURL,
		&content.Category,
		&content.Tags,
		&content.ReadTimeMinutes,
		&content.IsFeatured,
		&content.IsActive,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
}

func (r *EducationRepository) Create(ctx context.Context, content *models.EducationContent) error {
	query := `
		INSERT INTO education_contents (created_by_admin, title, description, image_url, content,
			content_type, video_url, category, tags, read_time_minutes, is_featured, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		content.CreatedByAdmin, content.Title, content.Description, content.ImageURL,
		content.Content, content.ContentType, content.VideoURL, content.Category,
		content.Tags, content.ReadTimeMinutes, content.IsFeatured, content.IsActive,
	).Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
}

func (r *EducationRepository) GetByID(ctx context.Context, id int64) (*models.EducationContent, error) {
	query := `SELECT ` + educationColumns + ` FROM education_contents WHERE id = $1`
	var content models.EducationContent
	if err := scanEducation(r.db.QueryRow(ctx, query, id), &content); err != nil {
		return nil, err
	}
	return &content, nil
}

type EducationListFilter struct {
	Category    *string
	ContentType *string
	Featured    *bool
	Search      string
	ActiveOnly  bool
	Limit       int
	Offset      int
}

func (r *EducationRepository) List(ctx context.Context, filter EducationListFilter) ([]models.EducationContent, int, error) {
	where := `
		WHERE ($1::text IS NULL OR category = $1)
		  AND ($2::text IS NULL OR content_type = $2)
		  AND ($3::boolean IS NULL OR is_featured = $3)
		  AND ($4 = '' OR title ILIKE '%' || $4 || '%' OR description ILIKE '%' || $4 || '%')
		  AND (NOT $5 OR is_active)
	`
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM education_contents`+where,
		filter.Category, filter.ContentType, filter.Featured, filter.Search, filter.ActiveOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + educationColumns + ` FROM education_contents` + where + `
		ORDER BY id
		LIMIT $6 OFFSET $7
	`
	rows, err := r.db.Query(ctx, query,
		filter.Category, filter.ContentType, filter.Featured, filter.Search, filter.ActiveOnly,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contents := make([]models.EducationContent, 0)
	for rows.Next() {
		var content models.EducationContent
		if err := scanEducation(rows, &content); err != nil {
			return nil, 0, err
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return contents, total, nil
}

// FeaturedRandom returns up to limit random featured, active entries.
func (r *EducationRepository) FeaturedRandom(ctx context.Context, limit int) ([]models.EducationContent, error) {
	query := `
		SELECT ` + educationColumns + `
		FROM education_contents
		WHERE is_active AND is_featured
		ORDER BY random()
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := make([]models.EducationContent, 0)
	for rows.Next() {
		var content models.EducationContent
		if err := scanEducation(rows, &content); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return contents, nil
}

type UpdateEducationInput struct {
	Title           *string
	Description     *string
	ImageURL        *string
	Content         *string
	ContentType     *string
	VideoURL        *string
	Category        *string
	Tags            *[]string
	ReadTimeMinutes *int
	IsFeatured      *bool
	IsActive        *bool
}

func (r *EducationRepository) Update(ctx context.Context, id int64, input UpdateEducationInput) (*models.EducationContent, error) {
	query := `
		UPDATE education_contents
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			image_url = COALESCE($3, image_url),
			content = COALESCE($4, content),
			content_type = COALESCE($5, content_type),
			video_url = COALESCE($6, video_url),
			category = COALESCE($7, category),
			tags = COALESCE($8, tags),
			read_time_minutes = COALESCE($9, read_time_minutes),
			is_featured = COALESCE($10, is_featured),
			is_active = COALESCE($11, is_active),
			updated_at = NOW()
		WHERE id = $12
		RETURNING ` + educationColumns + `
	`
	var content models.EducationContent
	err := scanEducation(r.db.QueryRow(ctx, query,
		input.Title, input.Description, input.ImageURL, input.Content, input.ContentType,
		input.VideoURL, input.Category, input.Tags, input.ReadTimeMinutes,
		input.IsFeatured, input.IsActive, id,
	), &content)
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *EducationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM education_contents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
