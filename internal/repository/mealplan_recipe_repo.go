package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type MealPlanRecipeRepository struct {
	db DBTX
}

func NewMealPlanRecipeRepository(db DBTX) *MealPlanRecipeRepository {
	return &MealPlanRecipeRepository{db: db}
}

const mealPlanRecipeColumns = `id, meal_plan_id, recipe_id, day_number, meal_type,
	servings, position, created_at, updated_at`

func scanMealPlanRecipe(row interface{ Scan(dest ...any) error }, entry *models.MealPlanRecipe) error {
	return row.Scan(
		&entry.ID,
		&entry.MealPlanID,
		&entry.RecipeID,
		&entry.DayNumber,
		&entry.MealType,
		&entry.Servings,
		&entry.Position,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

func (r *MealPlanRecipeRepository) Create(ctx context.Context, entry *models.MealPlanRecipe) error {
	query := `
		INSERT INTO meal_plan_recipes (meal_plan_id, recipe_id, day_number, meal_type, servings, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		entry.MealPlanID, entry.RecipeID, entry.DayNumber, entry.MealType, entry.Servings, entry.Position,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *MealPlanRecipeRepository) GetByID(ctx context.Context, id int64) (*models.MealPlanRecipe, error) {
	query := `SELECT ` + mealPlanRecipeColumns + ` FROM meal_plan_recipes WHERE id = $1`
	var entry models.MealPlanRecipe
	if err := scanMealPlanRecipe(r.db.QueryRow(ctx, query, id), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByPlan returns a plan's entries in calendar order with each recipe joined in.
func (r *MealPlanRecipeRepository) ListByPlan(ctx context.Context, mealPlanID int64) ([]models.MealPlanRecipeDetail, error) {
	query := `
		SELECT mpr.id, mpr.meal_plan_id, mpr.recipe_id, mpr.day_number, mpr.meal_type,
			   mpr.servings, mpr.position, mpr.created_at, mpr.updated_at,
			   r.id, r.name, r.description, r.image_url, r.meal_type, r.prep_time_minutes,
			   r.cook_time_minutes, r.servings, r.calories_per_serving, r.protein_per_serving,
			   r.carbs_per_serving, r.fat_per_serving, r.fiber_per_serving, r.sugar_per_serving,
			   r.ingredients, r.instructions, r.dietary_tags, r.allergen_info, r.difficulty,
			   r.is_featured, r.is_active, r.created_by_admin, r.created_at, r.updated_at
		FROM meal_plan_recipes mpr
		JOIN recipes r ON r.id = mpr.recipe_id
		WHERE mpr.meal_plan_id = $1
		ORDER BY mpr.day_number, mpr.position, mpr.id
	`
	rows, err := r.db.Query(ctx, query, mealPlanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.MealPlanRecipeDetail, 0)
	for rows.Next() {
		var entry models.MealPlanRecipeDetail
		var recipe models.Recipe
		if err := rows.Scan(
			&entry.ID, &entry.MealPlanID, &entry.RecipeID, &entry.DayNumber, &entry.MealType,
			&entry.Servings, &entry.Position, &entry.CreatedAt, &entry.UpdatedAt,
			&recipe.ID, &recipe.Name, &recipe.Description, &recipe.ImageURL, &recipe.MealType,
			&recipe.PrepTimeMinutes, &recipe.CookTimeMinutes, &recipe.Servings,
			&recipe.CaloriesPerServing, &recipe.ProteinPerServing, &recipe.CarbsPerServing,
			&recipe.FatPerServing, &recipe.FiberPerServing, &recipe.SugarPerServing,
			&recipe.Ingredients, &recipe.Instructions, &recipe.DietaryTags, &recipe.AllergenInfo,
			&recipe.Difficulty, &recipe.IsFeatured, &recipe.IsActive, &recipe.CreatedByAdmin,
			&recipe.CreatedAt, &recipe.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entry.Recipe = &recipe
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

type UpdateMealPlanRecipeInput struct {
	DayNumber *int
	MealType  *string
	Servings  *int
	Position  *int
}

func (r *MealPlanRecipeRepository) Update(ctx context.Context, id int64, input UpdateMealPlanRecipeInput) (*models.MealPlanRecipe, error) {
	query := `
		UPDATE meal_plan_recipes
		SET day_number = COALESCE($1, day_number),
			meal_type = COALESCE($2, meal_type),
			servings = COALESCE($3, servings),
			position = COALESCE($4, position),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + mealPlanRecipeColumns + `
	`
	var entry models.MealPlanRecipe
	err := scanMealPlanRecipe(r.db.QueryRow(ctx, query,
		input.DayNumber, input.MealType, input.Servings, input.Position, id,
	), &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *MealPlanRecipeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM meal_plan_recipes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
