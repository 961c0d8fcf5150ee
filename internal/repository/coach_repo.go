package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type CoachRepository struct {
	db DBTX
}

func NewCoachRepository(db DBTX) *CoachRepository {
	return &CoachRepository{db: db}
}

const coachColumns = `id, name, email, password_hash, bio, profile_image, specializations,
	certifications, experience_years, hourly_rate, phone, is_active, created_at, updated_at`

func scanCoach(row interface{ Scan(dest ...any) error }, coach *models.Coach) error {
	return row.Scan(
		&coach.ID,
		&coach.Name,
		&coach.Email,
		&coach.PasswordHash,
		&coach.Bio,
		&coach.ProfileImage,
		&coach.Specializations,
		&coach.Certifications,
		&coach.ExperienceYears,
		&coach.HourlyRate,
		&coach.Phone,
		&coach.IsActive,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
}

func (r *CoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `
		INSERT INTO coaches (name, email, password_hash, bio, profile_image, specializations,
			certifications, experience_years, hourly_rate, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		coach.Name, coach.Email, coach.PasswordHash, coach.Bio, coach.ProfileImage,
		coach.Specializations, coach.Certifications, coach.ExperienceYears,
		coach.HourlyRate, coach.Phone, coach.IsActive,
	).Scan(&coach.ID, &coach.CreatedAt, &coach.UpdatedAt)
}

func (r *CoachRepository) GetByEmail(ctx context.Context, email string) (*models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE email = $1`
	var coach models.Coach
	if err := scanCoach(r.db.QueryRow(ctx, query, email), &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) GetByID(ctx context.Context, id int64) (*models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE id = $1`
	var coach models.Coach
	if err := scanCoach(r.db.QueryRow(ctx, query, id), &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]models.Coach, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM coaches WHERE (NOT $1 OR is_active)`
	if err := r.db.QueryRow(ctx, countQuery, activeOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + coachColumns + `
		FROM coaches
		WHERE (NOT $1 OR is_active)
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	coaches := make([]models.Coach, 0)
	for rows.Next() {
		var coach models.Coach
		if err := scanCoach(rows, &coach); err != nil {
			return nil, 0, err
		}
		coaches = append(coaches, coach)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return coaches, total, nil
}

type UpdateCoachInput struct {
	Name            *string
	Bio             *string
	ProfileImage    *string
	Specializations *[]string
	Certifications  *[]string
	ExperienceYears *int
	HourlyRate      *float64
	Phone           *string
	IsActive        *bool
}

func (r *CoachRepository) Update(ctx context.Context, id int64, input UpdateCoachInput) (*models.Coach, error) {
	query := `
		UPDATE coaches
		SET name = COALESCE($1, name),
			bio = COALESCE($2, bio),
			profile_image = COALESCE($3, profile_image),
			specializations = COALESCE($4, specializations),
			certifications = COALESCE($5, certifications),
			experience_years = COALESCE($6, experience_years),
			hourly_rate = COALESCE($7, hourly_rate),
			phone = COALESCE($8, phone),
			is_active = COALESCE($9, is_active),
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + coachColumns + `
	`
	var coach models.Coach
	err := scanCoach(r.db.QueryRow(ctx, query,
		input.Name, input.Bio, input.ProfileImage, input.Specializations, input.Certifications,
		input.ExperienceYears, input.HourlyRate, input.Phone, input.IsActive, id,
	), &coach)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
