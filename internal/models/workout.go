package models

import "time"

type Workout struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	ImageURL           *string   `json:"image_url"`
	Difficulty         string    `json:"difficulty"`
	Type               string    `json:"type"`
	DurationMinutes    *int      `json:"duration_minutes"`
	CaloriesPerSession *int      `json:"calories_per_session"`
	EquipmentNeeded    *[]string `json:"equipment_needed"`
	Tags               *[]string `json:"tags"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           bool      `json:"is_active"`
	CreatedByAdmin     *int64    `json:"created_by_admin"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Exercise struct {
	ID              int64     `json:"id"`
	WorkoutID       int64     `json:"workout_id"`
	Name            string    `json:"name"`
	Instructions    *string   `json:"instructions"`
	VideoURL        *string   `json:"video_url"`
	ImageURL        *string   `json:"image_url"`
	DurationSeconds *int      `json:"duration_seconds"`
	Repetitions     *int      `json:"repetitions"`
	Sets            *int      `json:"sets"`
	RestSeconds     *int      `json:"rest_seconds"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type WorkoutDetail struct {
	Workout
	Exercises []Exercise `json:"exercises"`
}

// ExerciseProgressEntry is one exercise's completion snapshot inside a
// workout session. Keys of the enclosing map are exercise ids rendered as
// strings, since they live in a jsonb object.
type ExerciseProgressEntry struct {
	Completed     bool       `json:"completed"`
	SetsCompleted int        `json:"sets_completed,omitempty"`
	RepsCompleted int        `json:"reps_completed,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type ExerciseProgress map[string]ExerciseProgressEntry

type UserWorkout struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	WorkoutID        int64            `json:"workout_id"`
	StartedAt        time.Time        `json:"started_at"`
	CompletedAt      *time.Time       `json:"completed_at"`
	CaloriesBurned   *int             `json:"calories_burned"`
	ExerciseProgress ExerciseProgress `json:"exercise_progress"`
	Rating           *int             `json:"rating"`
	Notes            *string          `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
