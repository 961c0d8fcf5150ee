package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, name, email, password_hash, role, permissions, is_active, created_at, updated_at`

func scanAdmin(row interface{ Scan(dest ...any) error }, admin *models.AdminUser) error {
	return row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.Permissions,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (name, email, password_hash, role, permissions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		admin.Name, admin.Email, admin.PasswordHash, admin.Role, admin.Permissions, admin.IsActive,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1`
	var admin models.AdminUser
	if err := scanAdmin(r.db.QueryRow(ctx, query, email), &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`
	var admin models.AdminUser
	if err := scanAdmin(r.db.QueryRow(ctx, query, id), &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) List(ctx context.Context, limit, offset int) ([]models.AdminUser, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + adminColumns + ` FROM admin_users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	admins := make([]models.AdminUser, 0)
	for rows.Next() {
		var admin models.AdminUser
		if err := scanAdmin(rows, &admin); err != nil {
			return nil, 0, err
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

type UpdateAdminInput struct {
	Name        *string
	Role        *string
	Permissions *[]string
	IsActive    *bool
}

func (r *AdminRepository) Update(ctx context.Context, id int64, input UpdateAdminInput) (*models.AdminUser, error) {
	query := `
		UPDATE admin_users
		SET name = COALESCE($1, name),
			role = COALESCE($2, role),
			permissions = COALESCE($3, permissions),
			is_active = COALESCE($4, is_active),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + adminColumns + `
	`
	var admin models.AdminUser
	err := scanAdmin(r.db.QueryRow(ctx, query,
		input.Name, input.Role, input.Permissions, input.IsActive, id,
	), &admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type DashboardRepository struct {
	db DBTX
}

func NewDashboardRepository(db DBTX) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM workouts),
			(SELECT COUNT(*) FROM recipes),
			(SELECT COUNT(*) FROM meal_plans),
			(SELECT COUNT(*) FROM education_contents),
			(SELECT COUNT(*) FROM chats WHERE is_active),
			(SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '7 days')
	`
	var stats models.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Users,
		&stats.Workouts,
		&stats.Recipes,
		&stats.MealPlans,
		&stats.EducationContents,
		&stats.ActiveChats,
		&stats.SignupsLast7Days,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
