package repository

import (
	"context"
	"time"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type UserMealPlanRepository struct {
	db DBTX
}

func NewUserMealPlanRepository(db DBTX) *UserMealPlanRepository {
	return &UserMealPlanRepository{db: db}
}

const userMealPlanColumns = `id, user_id, meal_plan_id, start_date, end_date, is_active, created_at, updated_at`

func scanUserMealPlan(row interface{ Scan(dest ...any) error }, plan *models.UserMealPlan) error {
	return row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.MealPlanID,
		&plan.StartDate,
		&plan.EndDate,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
}

func (r *UserMealPlanRepository) Create(ctx context.Context, plan *models.UserMealPlan) error {
	query := `
		INSERT INTO user_meal_plans (user_id, meal_plan_id, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		plan.UserID, plan.MealPlanID, plan.StartDate, plan.EndDate, plan.IsActive,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
}

func (r *UserMealPlanRepository) GetByID(ctx context.Context, id int64) (*models.UserMealPlan, error) {
	query := `SELECT ` + userMealPlanColumns + ` FROM user_meal_plans WHERE id = $1`
	var plan models.UserMealPlan
	if err := scanUserMealPlan(r.db.QueryRow(ctx, query, id), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *UserMealPlanRepository) GetActiveForUser(ctx context.Context, userID int64) (*models.UserMealPlan, error) {
	query := `
		SELECT ` + userMealPlanColumns + `
		FROM user_meal_plans
		WHERE user_id = $1 AND is_active
		ORDER BY id DESC
		LIMIT 1
	`
	var plan models.UserMealPlan
	if err := scanUserMealPlan(r.db.QueryRow(ctx, query, userID), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *UserMealPlanRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserMealPlan, error) {
	query := `SELECT ` + userMealPlanColumns + ` FROM user_meal_plans WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.UserMealPlan, 0)
	for rows.Next() {
		var plan models.UserMealPlan
		if err := scanUserMealPlan(rows, &plan); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

// DeactivateForUser closes any currently active plan before a new one starts.
func (r *UserMealPlanRepository) DeactivateForUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE user_meal_plans SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_active`,
		userID,
	)
	return err
}

type UpdateUserMealPlanInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  *bool
}

func (r *UserMealPlanRepository) Update(ctx context.Context, id int64, input UpdateUserMealPlanInput) (*models.UserMealPlan, error) {
	query := `
		UPDATE user_meal_plans
		SET start_date = COALESCE($1, start_date),
			end_date = COALESCE($2, end_date),
			is_active = COALESCE($3, is_active),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userMealPlanColumns + `
	`
	var plan models.UserMealPlan
	err := scanUserMealPlan(r.db.QueryRow(ctx, query,
		input.StartDate, input.EndDate, input.IsActive, id,
	), &plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *UserMealPlanRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_meal_plans WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
