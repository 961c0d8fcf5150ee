package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, gender, weight, weight_unit, height, height_unit,
	goal, activity_level, daily_calorie_goal, daily_steps_goal, daily_water_goal, profile_image,
	created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Gender,
		&user.Weight,
		&user.WeightUnit,
		&user.Height,
		&user.HeightUnit,
		&user.Goal,
		&user.ActivityLevel,
		&user.DailyCalorieGoal,
		&user.DailyStepsGoal,
		&user.DailyWaterGoal,
		&user.ProfileImage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, weight_unit, height_unit, daily_calorie_goal, daily_steps_goal, daily_water_goal,
				  created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).Scan(
		&user.ID,
		&user.WeightUnit,
		&user.HeightUnit,
		&user.DailyCalorieGoal,
		&user.DailyStepsGoal,
		&user.DailyWaterGoal,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, email), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type UserListFilter struct {
	Search string
	Limit  int
	Offset int
}

func (r *UserRepository) List(ctx context.Context, filter UserListFilter) ([]models.User, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
	`
	if err := r.db.QueryRow(ctx, countQuery, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

type UpdateUserInput struct {
	Name             *string
	Gender           *string
	Weight           *float64
	WeightUnit       *string
	Height           *float64
	HeightUnit       *string
	Goal             *string
	ActivityLevel    *string
	DailyCalorieGoal *int
	DailyStepsGoal   *int
	DailyWaterGoal   *float64
	ProfileImage     *string
}

func (r *UserRepository) Update(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			gender = COALESCE($2, gender),
			weight = COALESCE($3, weight),
			weight_unit = COALESCE($4, weight_unit),
			height = COALESCE($5, height),
			height_unit = COALESCE($6, height_unit),
			goal = COALESCE($7, goal),
			activity_level = COALESCE($8, activity_level),
			daily_calorie_goal = COALESCE($9, daily_calorie_goal),
			daily_steps_goal = COALESCE($10, daily_steps_goal),
			daily_water_goal = COALESCE($11, daily_water_goal),
			profile_image = COALESCE($12, profile_image),
			updated_at = NOW()
		WHERE id = $13
		RETURNING ` + userColumns + `
	`
	var user models.User
	err := scanUser(r.db.QueryRow(ctx, query,
		input.Name,
		input.Gender,
		input.Weight,
		input.WeightUnit,
		input.Height,
		input.HeightUnit,
		input.Goal,
		input.ActivityLevel,
		input.DailyCalorieGoal,
		input.DailyStepsGoal,
		input.DailyWaterGoal,
		input.ProfileImage,
		id,
	), &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
