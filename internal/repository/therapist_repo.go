package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type TherapistRepository struct {
	db DBTX
}

func NewTherapistRepository(db DBTX) *TherapistRepository {
	return &TherapistRepository{db: db}
}

const therapistColumns = `id, name, email, password_hash, bio, profile_image, specializations,
	certifications, phone, clinic_id, is_active, created_at, updated_at`

func scanTherapist(row interface{ Scan(dest ...any) error }, therapist *models.Therapist) error {
	return row.Scan(
		&therapist.ID,
		&therapist.Name,
		&therapist.Email,
		&therapist.PasswordHash,
		&therapist.Bio,
		&therapist.ProfileImage,
		&therapist.Specializations,
		&therapist.Certifications,
		&therapist.Phone,
		&therapist.ClinicID,
		&therapist.IsActive,
		&therapist.CreatedAt,
		&therapist.UpdatedAt,
	)
}

func (r *TherapistRepository) Create(ctx context.Context, therapist *models.Therapist) error {
	query := `
		INSERT INTO therapists (name, email, password_hash, bio, profile_image, specializations,
			certifications, phone, clinic_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		therapist.Name, therapist.Email, therapist.PasswordHash, therapist.Bio,
		therapist.ProfileImage, therapist.Specializations, therapist.Certifications,
		therapist.Phone, therapist.ClinicID, therapist.IsActive,
	).Scan(&therapist.ID, &therapist.CreatedAt, &therapist.UpdatedAt)
}

func (r *TherapistRepository) GetByEmail(ctx context.Context, email string) (*models.Therapist, error) {
	query := `SELECT ` + therapistColumns + ` FROM therapists WHERE email = $1`
	var therapist models.Therapist
	if err := scanTherapist(r.db.QueryRow(ctx, query, email), &therapist); err != nil {
		return nil, err
	}
	return &therapist, nil
}

func (r *TherapistRepository) GetByID(ctx context.Context, id int64) (*models.Therapist, error) {
	query := `SELECT ` + therapistColumns + ` FROM therapists WHERE id = $1`
	var therapist models.Therapist
	if err := scanTherapist(r.db.QueryRow(ctx, query, id), &therapist); err != nil {
		return nil, err
	}
	return &therapist, nil
}

type TherapistListFilter struct {
	ClinicID   *int64
	ActiveOnly bool
	Limit      int
	Offset     int
}

func (r *TherapistRepository) List(ctx context.Context, filter TherapistListFilter) ([]models.Therapist, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM therapists
		WHERE ($1::bigint IS NULL OR clinic_id = $1) AND (NOT $2 OR is_active)
	`
	if err := r.db.QueryRow(ctx, countQuery, filter.ClinicID, filter.ActiveOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + therapistColumns + `
		FROM therapists
		WHERE ($1::bigint IS NULL OR clinic_id = $1) AND (NOT $2 OR is_active)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, filter.ClinicID, filter.ActiveOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	therapists := make([]models.Therapist, 0)
	for rows.Next() {
		var therapist models.Therapist
		if err := scanTherapist(rows, &therapist); err != nil {
			return nil, 0, err
		}
		therapists = append(therapists, therapist)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return therapists, total, nil
}

type UpdateTherapistInput struct {
	Name            *string
	Bio             *string
	ProfileImage    *string
	Specializations *[]string
	Certifications  *[]string
	Phone           *string
	ClinicID        *int64
	IsActive        *bool
}

func (r *TherapistRepository) Update(ctx context.Context, id int64, input UpdateTherapistInput) (*models.Therapist, error) {
	query := `
		UPDATE therapists
		SET name = COALESCE($1, name),
			bio = COALESCE($2, bio),
			profile_image = COALESCE($3, profile_image),
			specializations = COALESCE($4, specializations),
			certifications = COALESCE($5, certifications),
			phone = COALESCE($6, phone),
			clinic_id = COALESCE($7, clinic_id),
			is_active = COALESCE($8, is_active),
			updated_at = NOW()
		WHERE id = $9
		RETURNING ` + therapistColumns + `
	`
	var therapist models.Therapist
	err := scanTherapist(r.db.QueryRow(ctx, query,
		input.Name, input.Bio, input.ProfileImage, input.Specializations, input.Certifications,
		input.Phone, input.ClinicID, input.IsActive, id,
	), &therapist)
	if err != nil {
		return nil, err
	}
	return &therapist, nil
}

func (r *TherapistRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM therapists WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
