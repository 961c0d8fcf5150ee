package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type RecipeRepository struct {
	db DBTX
}

func NewRecipeRepository(db DBTX) *RecipeRepository {
	return &RecipeRepository{db: db}
}

const recipeColumns = `id, name, description, image_url, meal_type, prep_time_minutes,
	cook_time_minutes, servings, calories_per_serving, protein_per_serving, carbs_per_serving,
	fat_per_serving, fiber_per_serving, sugar_per_serving, ingredients, instructions,
	dietary_tags, allergen_info, difficulty, is_featured, is_active, created_by_admin,
	created_at, updated_at`

func scanRecipe(row interface{ Scan(dest ...any) error }, recipe *models.Recipe) error {
	return row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Description,
		&recipe.ImageURL,
		&recipe.MealType,
		&recipe.PrepTimeMinutes,
		&recipe.CookTimeMinutes,
		&recipe.Servings,
		&recipe.CaloriesPerServing,
		&recipe.ProteinPerServing,
		&recipe.CarbsPerServing,
		&recipe.FatPerServing,
		&recipe.FiberPerServing,
		&recipe.SugarPerServing,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.DietaryTags,
		&recipe.AllergenInfo,
		&recipe.Difficulty,
		&recipe.IsFeatured,
		&recipe.IsActive,
		&recipe.CreatedByAdmin,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	query := `
		INSERT INTO recipes (name, description, image_url, meal_type, prep_time_minutes,
			cook_time_minutes, servings, calories_per_serving, protein_per_serving,
			carbs_per_serving, fat_per_serving, fiber_per_serving, sugar_per_serving,
			ingredients, instructions, dietary_tags, allergen_info, difficulty,
			is_featured, is_active, created_by_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		recipe.Name, recipe.Description, recipe.ImageURL, recipe.MealType, recipe.PrepTimeMinutes,
		recipe.CookTimeMinutes, recipe.Servings, recipe.CaloriesPerServing, recipe.ProteinPerServing,
		recipe.CarbsPerServing, recipe.FatPerServing, recipe.FiberPerServing, recipe.SugarPerServing,
		recipe.Ingredients, recipe.Instructions, recipe.DietaryTags, recipe.AllergenInfo,
		recipe.Difficulty, recipe.IsFeatured, recipe.IsActive, recipe.CreatedByAdmin,
	).Scan(&recipe.ID, &recipe.CreatedAt, &recipe.UpdatedAt)
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	var recipe models.Recipe
	if err := scanRecipe(r.db.QueryRow(ctx, query, id), &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

type RecipeListFilter struct {
	MealType   *string
	Difficulty *string
	Featured   *bool
	Search     string
	ActiveOnly bool
	Limit      int
	Offset     int
}

func (r *RecipeRepository) List(ctx context.Context, filter RecipeListFilter) ([]models.Recipe, int, error) {
	where := `
		WHERE ($1::text IS NULL OR meal_type = $1)
		  AND ($2::text IS NULL OR difficulty = $2)
		  AND ($3::boolean IS NULL OR is_featured = $3)
		  AND ($4 = '' OR name ILIKE '%' || $4 || '%' OR description ILIKE '%' || $4 || '%'
			   OR ingredients ILIKE '%' || $4 || '%')
		  AND (NOT $5 OR is_active)
	`
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recipes`+where,
		filter.MealType, filter.Difficulty, filter.Featured, filter.Search, filter.ActiveOnly,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + recipeColumns + ` FROM recipes` + where + `
		ORDER BY id
		LIMIT $6 OFFSET $7
	`
	rows, err := r.db.Query(ctx, query,
		filter.MealType, filter.Difficulty, filter.Featured, filter.Search, filter.ActiveOnly,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var recipe models.Recipe
		if err := scanRecipe(rows, &recipe); err != nil {
			return nil, 0, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

type UpdateRecipeInput struct {
	Name               *string
	Description        *string
	ImageURL           *string
	MealType           *string
	PrepTimeMinutes    *int
	CookTimeMinutes    *int
	Servings           *int
	CaloriesPerServing *int
	ProteinPerServing  *float64
	CarbsPerServing    *float64
	FatPerServing      *float64
	FiberPerServing    *float64
	SugarPerServing    *float64
	Ingredients        *string
	Instructions       *string
	DietaryTags        *[]string
	AllergenInfo       *[]string
	Difficulty         *string
	IsFeatured         *bool
	IsActive           *bool
}

func (r *RecipeRepository) Update(ctx context.Context, id int64, input UpdateRecipeInput) (*models.Recipe, error) {
	query := `
		UPDATE recipes
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			image_url = COALESCE($3, image_url),
			meal_type = COALESCE($4, meal_type),
			prep_time_minutes = COALESCE($5, prep_time_minutes),
			cook_time_minutes = COALESCE($6, cook_time_minutes),
			servings = COALESCE($7, servings),
			calories_per_serving = COALESCE($8, calories_per_serving),
			protein_per_serving = COALESCE($9, protein_per_serving),
			carbs_per_serving = COALESCE($10, carbs_per_serving),
			fat_per_serving = COALESCE($11, fat_per_serving),
			fiber_per_serving = COALESCE($12, fiber_per_serving),
			sugar_per_serving = COALESCE($13, sugar_per_serving),
			ingredients = COALESCE($14, ingredients),
			instructions = COALESCE($15, instructions),
			dietary_tags = COALESCE($16, dietary_tags),
			allergen_info = COALESCE($17, allergen_info),
			difficulty = COALESCE($18, difficulty),
			is_featured = COALESCE($19, is_featured),
			is_active = COALESCE($20, is_active),
			updated_at = NOW()
		WHERE id = $21
		RETURNING ` + recipeColumns + `
	`
	var recipe models.Recipe
	err := scanRecipe(r.db.QueryRow(ctx, query,
		input.Name, input.Description, input.ImageURL, input.MealType, input.PrepTimeMinutes,
		input.CookTimeMinutes, input.Servings, input.CaloriesPerServing, input.ProteinPerServing,
		input.CarbsPerServing, input.FatPerServing, input.FiberPerServing, input.SugarPerServing,
		input.Ingredients, input.Instructions, input.DietaryTags, input.AllergenInfo,
		input.Difficulty, input.IsFeatured, input.IsActive, id,
	), &recipe)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetByOffset returns the n-th active recipe in id order. The recipe-of-the-day
// pick is derived from the current date modulo the active count, so the same
// recipe is served for a whole day without storing any state.
func (r *RecipeRepository) GetByOffset(ctx context.Context, offset int) (*models.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE is_active ORDER BY id OFFSET $1 LIMIT 1`
	var recipe models.Recipe
	if err := scanRecipe(r.db.QueryRow(ctx, query, offset), &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recipes WHERE is_active`).Scan(&count)
	return count, err
}

// RecommendationFilter narrows active recipes by a user's stored preferences.
type RecommendationFilter struct {
	DietaryPreferences []string
	Allergies          []string
	MealTypes          []string
	MaxCalories        *int
	MaxCookTimeMinutes *int
	Limit              int
}

func (r *RecipeRepository) Recommend(ctx context.Context, filter RecommendationFilter) ([]models.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE is_active
		  AND (cardinality($1::text[]) = 0 OR dietary_tags ?| $1)
		  AND (cardinality($2::text[]) = 0 OR NOT (allergen_info ?| $2))
		  AND (cardinality($3::text[]) = 0 OR meal_type = ANY($3))
		  AND ($4::int IS NULL OR calories_per_serving <= $4)
		  AND ($5::int IS NULL OR COALESCE(cook_time_minutes, 0) <= $5)
		ORDER BY is_featured DESC, id
		LIMIT $6
	`
	rows, err := r.db.Query(ctx, query,
		filter.DietaryPreferences, filter.Allergies, filter.MealTypes,
		filter.MaxCalories, filter.MaxCookTimeMinutes, filter.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var recipe models.Recipe
		if err := scanRecipe(rows, &recipe); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recipes, nil
}

// RandomActive returns up to limit random active recipes with calories set.
func (r *RecipeRepository) RandomActive(ctx context.Context, limit int) ([]models.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE is_active AND calories_per_serving > 0
		ORDER BY random()
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var recipe models.Recipe
		if err := scanRecipe(rows, &recipe); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recipes, nil
}
