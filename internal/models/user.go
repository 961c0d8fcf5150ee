package models

import "time"

type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Gender           *string   `json:"gender"`
	Weight           *float64  `json:"weight"`
	WeightUnit       string    `json:"weight_unit"`
	Height           *float64  `json:"height"`
	HeightUnit       string    `json:"height_unit"`
	Goal             *string   `json:"goal"`
	ActivityLevel    *string   `json:"activity_level"`
	DailyCalorieGoal int       `json:"daily_calorie_goal"`
	DailyStepsGoal   int       `json:"daily_steps_goal"`
	DailyWaterGoal   float64   `json:"daily_water_goal"`
	ProfileImage     *string   `json:"profile_image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type UserGoal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Steps     *int      `json:"steps"`
	Calories  *float64  `json:"calories"`
	Water     *float64  `json:"water"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserPreference struct {
	ID                    int64     `json:"id"`
	UserID                int64     `json:"user_id"`
	DietaryPreferences    *[]string `json:"dietary_preferences"`
	Allergies             *[]string `json:"allergies"`
	MealTypes             *[]string `json:"meal_types"`
	CaloricGoal           *string   `json:"caloric_goal"`
	CookingTimePreference *string   `json:"cooking_time_preference"`
	ServingPreference     *string   `json:"serving_preference"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Measurements is the typed shape of the user_progress.measurements jsonb
// column. Every field is optional; units are centimeters.
type Measurements struct {
	ChestCM *float64 `json:"chest_cm,omitempty"`
	WaistCM *float64 `json:"waist_cm,omitempty"`
	HipsCM  *float64 `json:"hips_cm,omitempty"`
	ArmsCM  *float64 `json:"arms_cm,omitempty"`
	ThighCM *float64 `json:"thigh_cm,omitempty"`
}

type UserProgress struct {
	ID                int64         `json:"id"`
	UserID            int64         `json:"user_id"`
	Date              time.Time     `json:"date"`
	Weight            *float64      `json:"weight"`
	BodyFatPercentage *float64      `json:"body_fat_percentage"`
	MuscleMass        *float64      `json:"muscle_mass"`
	Notes             *string       `json:"notes"`
	Measurements      *Measurements `json:"measurements"`
	ProgressImage     *string       `json:"progress_image"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type DailyActivity struct {
	ID                      int64     `json:"id"`
	UserID                  int64     `json:"user_id"`
	Date                    time.Time `json:"date"`
	Steps                   int       `json:"steps"`
	CaloriesConsumed        int       `json:"calories_consumed"`
	CaloriesBurned          int       `json:"calories_burned"`
	WaterIntake             float64   `json:"water_intake"`
	SleepTime               int       `json:"sleep_time"`
	DailyProgressPercentage float64   `json:"daily_progress_percentage"`
	ProteinGoal             int       `json:"protein_goal"`
	CarbsGoal               int       `json:"carbs_goal"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// AchievementCriteria is the typed shape of user_achievements.criteria.
type AchievementCriteria struct {
	Metric    string  `json:"metric"`
	Threshold float64 `json:"threshold"`
	Window    string  `json:"window,omitempty"`
}

type UserAchievement struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user_id"`
	AchievementType string               `json:"achievement_type"`
	AchievementName string               `json:"achievement_name"`
	Description     *string              `json:"description"`
	Icon            *string              `json:"icon"`
	Criteria        *AchievementCriteria `json:"criteria"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
