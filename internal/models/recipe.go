package models

import "time"

type Recipe struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	ImageURL           *string   `json:"image_url"`
	MealType           string    `json:"meal_type"`
	PrepTimeMinutes    *int      `json:"prep_time_minutes"`
	CookTimeMinutes    *int      `json:"cook_time_minutes"`
	Servings           int       `json:"servings"`
	CaloriesPerServing int       `json:"calories_per_serving"`
	ProteinPerServing  *float64  `json:"protein_per_serving"`
	CarbsPerServing    *float64  `json:"carbs_per_serving"`
	FatPerServing      *float64  `json:"fat_per_serving"`
	FiberPerServing    *float64  `json:"fiber_per_serving"`
	SugarPerServing    *float64  `json:"sugar_per_serving"`
	Ingredients        string    `json:"ingredients"`
	Instructions       string    `json:"instructions"`
	DietaryTags        *[]string `json:"dietary_tags"`
	AllergenInfo       *[]string `json:"allergen_info"`
	Difficulty         string    `json:"difficulty"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           bool      `json:"is_active"`
	CreatedByAdmin     *int64    `json:"created_by_admin"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)
