package models

import "time"

// Favoritable content kinds. A favorite points at one row of the named table
// via a (type, id) pair, the same shape chats use for professionals.
const (
	FavoritableWorkout   = "workout"
	FavoritableRecipe    = "recipe"
	FavoritableEducation = "education_content"
	FavoritableMealPlan  = "meal_plan"
)

type UserFavorite struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	FavoritableType string    `json:"favoritable_type"`
	FavoritableID   int64     `json:"favoritable_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
