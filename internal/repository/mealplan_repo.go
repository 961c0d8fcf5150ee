package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type MealPlanRepository struct {
	db DBTX
}

func NewMealPlanRepository(db DBTX) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

const mealPlanColumns = `id, name, description, image_url, duration_days, goals,
	dietary_preferences, allergen_free, target_calories_min, target_calories_max,
	difficulty, is_featured, is_active, created_by_admin, created_at, updated_at`

func scanMealPlan(row interface{ Scan(dest ...any) error }, plan *models.MealPlan) error {
	return row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.ImageURL,
		&plan.DurationDays,
		&plan.Goals,
		&plan.DietaryPreferences,
		&plan.AllergenFree,
		&plan.TargetCaloriesMin,
		&plan.TargetCaloriesMax,
		&plan.Difficulty,
		&plan.IsFeatured,
		&plan.IsActive,
		&plan.CreatedByAdmin,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
}

func (r *MealPlanRepository) Create(ctx context.Context, plan *models.MealPlan) error {
	query := `
		INSERT INTO meal_plans (name, description, image_url, duration_days, goals,
			dietary_preferences, allergen_free, target_calories_min, target_calories_max,
			difficulty, is_featured, is_active, created_by_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		plan.Name, plan.Description, plan.ImageURL, plan.DurationDays, plan.Goals,
		plan.DietaryPreferences, plan.AllergenFree, plan.TargetCaloriesMin, plan.TargetCaloriesMax,
		plan.Difficulty, plan.IsFeatured, plan.IsActive, plan.CreatedByAdmin,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
}

func (r *MealPlanRepository) GetByID(ctx context.Context, id int64) (*models.MealPlan, error) {
	query := `SELECT ` + mealPlanColumns + ` FROM meal_plans WHERE id = $1`
	var plan models.MealPlan
	if err := scanMealPlan(r.db.QueryRow(ctx, query, id), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// MealPlanFilter mirrors the filter endpoint: every field is optional and
// the preference-driven fields match against jsonb arrays.
type MealPlanFilter struct {
	Difficulty         *string
	Goal               *string
	DietaryPreference  *string
	AllergenFree       []string
	TargetCaloriesMin  *int
	TargetCaloriesMax  *int
	ActiveOnly         bool
	Limit              int
	Offset             int
}

func (r *MealPlanRepository) List(ctx context.Context, filter MealPlanFilter) ([]models.MealPlan, int, error) {
	where := `
		WHERE ($1::text IS NULL OR difficulty = $1)
		  AND ($2::text IS NULL OR goals ? $2)
		  AND ($3::text IS NULL OR dietary_preferences ? $3)
		  AND (cardinality($4::text[]) = 0 OR allergen_free ?& $4)
		  AND ($5::int IS NULL OR target_calories_max IS NULL OR target_calories_max >= $5)
		  AND ($6::int IS NULL OR target_calories_min IS NULL OR target_calories_min <= $6)
		  AND (NOT $7 OR is_active)
	`
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM meal_plans`+where,
		filter.Difficulty, filter.Goal, filter.DietaryPreference, filter.AllergenFree,
		filter.TargetCaloriesMin, filter.TargetCaloriesMax, filter.ActiveOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + mealPlanColumns + ` FROM meal_plans` + where + `
		ORDER BY id
		LIMIT $8 OFFSET $9
	`
	rows, err := r.db.Query(ctx, query,
		filter.Difficulty, filter.Goal, filter.DietaryPreference, filter.AllergenFree,
		filter.TargetCaloriesMin, filter.TargetCaloriesMax, filter.ActiveOnly,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	plans := make([]models.MealPlan, 0)
	for rows.Next() {
		var plan models.MealPlan
		if err := scanMealPlan(rows, &plan); err != nil {
			return nil, 0, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

type UpdateMealPlanInput struct {
	Name               *string
	Description        *string
	ImageURL           *string
	DurationDays       *int
	Goals              *[]string
	DietaryPreferences *[]string
	AllergenFree       *[]string
	TargetCaloriesMin  *int
	TargetCaloriesMax  *int
	Difficulty         *string
	IsFeatured         *bool
	IsActive           *bool
}

func (r *MealPlanRepository) Update(ctx context.Context, id int64, input UpdateMealPlanInput) (*models.MealPlan, error) {
	query := `
		UPDATE meal_plans
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			image_url = COALESCE($3, image_url),
			duration_days = COALESCE($4, duration_days),
			goals = COALESCE($5, goals),
			dietary_preferences = COALESCE($6, dietary_preferences),
			allergen_free = COALESCE($7, allergen_free),
			target_calories_min = COALESCE($8, target_calories_min),
			target_calories_max = COALESCE($9, target_calories_max),
			difficulty = COALESCE($10, difficulty),
			is_featured = COALESCE($11, is_featured),
			is_active = COALESCE($12, is_active),
			updated_at = NOW()
		WHERE id = $13
		RETURNING ` + mealPlanColumns + `
	`
	var plan models.MealPlan
	err := scanMealPlan(r.db.QueryRow(ctx, query,
		input.Name, input.Description, input.ImageURL, input.DurationDays, input.Goals,
		input.DietaryPreferences, input.AllergenFree, input.TargetCaloriesMin,
		input.TargetCaloriesMax, input.Difficulty, input.IsFeatured, input.IsActive, id,
	), &plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *MealPlanRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM meal_plans WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
