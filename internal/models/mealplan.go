package models

import "time"

type MealPlan struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        *string   `json:"description"`
	ImageURL           *string   `json:"image_url"`
	DurationDays       int       `json:"duration_days"`
	Goals              *[]string `json:"goals"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	AllergenFree       *[]string `json:"allergen_free"`
	TargetCaloriesMin  *int      `json:"target_calories_min"`
	TargetCaloriesMax  *int      `json:"target_calories_max"`
	Difficulty         string    `json:"difficulty"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           bool      `json:"is_active"`
	CreatedByAdmin     *int64    `json:"created_by_admin"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MealPlanRecipe is the associative entity between meal plans and recipes;
// day_number and meal_type place a recipe inside the plan's calendar.
type MealPlanRecipe struct {
	ID         int64     `json:"id"`
	MealPlanID int64     `json:"meal_plan_id"`
	RecipeID   int64     `json:"recipe_id"`
	DayNumber  int       `json:"day_number"`
	MealType   string    `json:"meal_type"`
	Servings   int       `json:"servings"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MealPlanRecipeDetail struct {
	MealPlanRecipe
	Recipe *Recipe `json:"recipe,omitempty"`
}

type MealPlanDetail struct {
	MealPlan
	Recipes []MealPlanRecipeDetail `json:"recipes"`
}

type UserMealPlan struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	MealPlanID int64     `json:"meal_plan_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
