package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type ClinicRepository struct {
	db DBTX
}

func NewClinicRepository(db DBTX) *ClinicRepository {
	return &ClinicRepository{db: db}
}

const clinicColumns = `id, name, email, password_hash, description, logo, phone, address,
	website, services, is_active, created_at, updated_at`

func scanClinic(row interface{ Scan(dest ...any) error }, clinic *models.Clinic) error {
	return row.Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.Email,
		&clinic.PasswordHash,
		&clinic.Description,
		&clinic.Logo,
		&clinic.Phone,
		&clinic.Address,
		&clinic.Website,
		&clinic.Services,
		&clinic.IsActive,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	)
}

func (r *ClinicRepository) Create(ctx context.Context, clinic *models.Clinic) error {
	query := `
		INSERT INTO clinics (name, email, password_hash, description, logo, phone, address, website, services, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		clinic.Name, clinic.Email, clinic.PasswordHash, clinic.Description, clinic.Logo,
		clinic.Phone, clinic.Address, clinic.Website, clinic.Services, clinic.IsActive,
	).Scan(&clinic.ID, &clinic.CreatedAt, &clinic.UpdatedAt)
}

func (r *ClinicRepository) GetByEmail(ctx context.Context, email string) (*models.Clinic, error) {
	query := `SELECT ` + clinicColumns + ` FROM clinics WHERE email = $1`
	var clinic models.Clinic
	if err := scanClinic(r.db.QueryRow(ctx, query, email), &clinic); err != nil {
		return nil, err
	}
	return &clinic, nil
}

func (r *ClinicRepository) GetByID(ctx context.Context, id int64) (*models.Clinic, error) {
	query := `SELECT ` + clinicColumns + ` FROM clinics WHERE id = $1`
	var clinic models.Clinic
	if err := scanClinic(r.db.QueryRow(ctx, query, id), &clinic); err != nil {
		return nil, err
	}
	return &clinic, nil
}

func (r *ClinicRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]models.Clinic, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clinics WHERE (NOT $1 OR is_active)`, activeOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + clinicColumns + `
		FROM clinics
		WHERE (NOT $1 OR is_active)
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clinics := make([]models.Clinic, 0)
	for rows.Next() {
		var clinic models.Clinic
		if err := scanClinic(rows, &clinic); err != nil {
			return nil, 0, err
		}
		clinics = append(clinics, clinic)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return clinics, total, nil
}

type UpdateClinicInput struct {
	Name        *string
	Description *string
	Logo        *string
	Phone       *string
	Address     *string
	Website     *string
	Services    *[]string
	IsActive    *bool
}

func (r *ClinicRepository) Update(ctx context.Context, id int64, input UpdateClinicInput) (*models.Clinic, error) {
	query := `
		UPDATE clinics
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			logo = COALESCE($3, logo),
			phone = COALESCE($4, phone),
			address = COALESCE($5, address),
			website = COALESCE($6, website),
			services = COALESCE($7, services),
			is_active = COALESCE($8, is_active),
			updated_at = NOW()
		WHERE id = $9
		RETURNING ` + clinicColumns + `
	`
	var clinic models.Clinic
	err := scanClinic(r.db.QueryRow(ctx, query,
		input.Name, input.Description, input.Logo, input.Phone, input.Address,
		input.Website, input.Services, input.IsActive, id,
	), &clinic)
	if err != nil {
		return nil, err
	}
	return &clinic, nil
}

func (r *ClinicRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
