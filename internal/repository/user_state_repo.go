package repository

import (
	"context"
	"time"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

// Repositories for the singleton-per-user and per-date state tables:
// user_goals, user_preferences, user_progress, daily_activities.

type UserGoalRepository struct {
	db DBTX
}

func NewUserGoalRepository(db DBTX) *UserGoalRepository {
	return &UserGoalRepository{db: db}
}

func (r *UserGoalRepository) Upsert(ctx context.Context, goal *models.UserGoal) error {
	query := `
		INSERT INTO user_goals (user_id, steps, calories, water)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET steps = COALESCE(EXCLUDED.steps, user_goals.steps),
			calories = COALESCE(EXCLUDED.calories, user_goals.calories),
			water = COALESCE(EXCLUDED.water, user_goals.water),
			updated_at = NOW()
		RETURNING id, steps, calories, water, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, goal.UserID, goal.Steps, goal.Calories, goal.Water).
		Scan(&goal.ID, &goal.Steps, &goal.Calories, &goal.Water, &goal.CreatedAt, &goal.UpdatedAt)
}

func (r *UserGoalRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserGoal, error) {
	query := `
		SELECT id, user_id, steps, calories, water, created_at, updated_at
		FROM user_goals
		WHERE user_id = $1
	`
	var goal models.UserGoal
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&goal.ID, &goal.UserID, &goal.Steps, &goal.Calories, &goal.Water,
		&goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *UserGoalRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_goals WHERE user_id = $1`, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type UserPreferenceRepository struct {
	db DBTX
}

func NewUserPreferenceRepository(db DBTX) *UserPreferenceRepository {
	return &UserPreferenceRepository{db: db}
}

func (r *UserPreferenceRepository) Upsert(ctx context.Context, pref *models.UserPreference) error {
	query := `
		INSERT INTO user_preferences (user_id, dietary_preferences, allergies, meal_types,
			caloric_goal, cooking_time_preference, serving_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET dietary_preferences = COALESCE(EXCLUDED.dietary_preferences, user_preferences.dietary_preferences),
			allergies = COALESCE(EXCLUDED.allergies, user_preferences.allergies),
			meal_types = COALESCE(EXCLUDED.meal_types, user_preferences.meal_types),
			caloric_goal = COALESCE(EXCLUDED.caloric_goal, user_preferences.caloric_goal),
			cooking_time_preference = COALESCE(EXCLUDED.cooking_time_preference, user_preferences.cooking_time_preference),
			serving_preference = COALESCE(EXCLUDED.serving_preference, user_preferences.serving_preference),
			updated_at = NOW()
		RETURNING id, dietary_preferences, allergies, meal_types, caloric_goal,
				  cooking_time_preference, serving_preference, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		pref.UserID, pref.DietaryPreferences, pref.Allergies, pref.MealTypes,
		pref.CaloricGoal, pref.CookingTimePreference, pref.ServingPreference,
	).Scan(
		&pref.ID, &pref.DietaryPreferences, &pref.Allergies, &pref.MealTypes,
		&pref.CaloricGoal, &pref.CookingTimePreference, &pref.ServingPreference,
		&pref.CreatedAt, &pref.UpdatedAt,
	)
}

func (r *UserPreferenceRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserPreference, error) {
	query := `
		SELECT id, user_id, dietary_preferences, allergies, meal_types, caloric_goal,
			   cooking_time_preference, serving_preference, created_at, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`
	var pref models.UserPreference
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&pref.ID, &pref.UserID, &pref.DietaryPreferences, &pref.Allergies, &pref.MealTypes,
		&pref.CaloricGoal, &pref.CookingTimePreference, &pref.ServingPreference,
		&pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *UserPreferenceRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type UserProgressRepository struct {
	db DBTX
}

func NewUserProgressRepository(db DBTX) *UserProgressRepository {
	return &UserProgressRepository{db: db}
}

const userProgressColumns = `id, user_id, date, weight, body_fat_percentage, muscle_mass,
	notes, measurements, progress_image, created_at, updated_at`

func scanUserProgress(row interface{ Scan(dest ...any) error }, progress *models.UserProgress) error {
	return row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.Date,
		&progress.Weight,
		&progress.BodyFatPercentage,
		&progress.MuscleMass,
		&progress.Notes,
		&progress.Measurements,
		&progress.ProgressImage,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
}

// Upsert writes the snapshot for (user, date); a second submission for the
// same day overwrites the supplied fields only.
func (r *UserProgressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	query := `
		INSERT INTO user_progress (user_id, date, weight, body_fat_percentage, muscle_mass,
			notes, measurements, progress_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO UPDATE
		SET weight = COALESCE(EXCLUDED.weight, user_progress.weight),
			body_fat_percentage = COALESCE(EXCLUDED.body_fat_percentage, user_progress.body_fat_percentage),
			muscle_mass = COALESCE(EXCLUDED.muscle_mass, user_progress.muscle_mass),
			notes = COALESCE(EXCLUDED.notes, user_progress.notes),
			measurements = COALESCE(EXCLUDED.measurements, user_progress.measurements),
			progress_image = COALESCE(EXCLUDED.progress_image, user_progress.progress_image),
			updated_at = NOW()
		RETURNING ` + userProgressColumns + `
	`
	return scanUserProgress(r.db.QueryRow(ctx, query,
		progress.UserID, progress.Date, progress.Weight, progress.BodyFatPercentage,
		progress.MuscleMass, progress.Notes, progress.Measurements, progress.ProgressImage,
	), progress)
}

func (r *UserProgressRepository) GetByID(ctx context.Context, id int64) (*models.UserProgress, error) {
	query := `SELECT ` + userProgressColumns + ` FROM user_progress WHERE id = $1`
	var progress models.UserProgress
	if err := scanUserProgress(r.db.QueryRow(ctx, query, id), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *UserProgressRepository) ListForUser(ctx context.Context, userID int64, from, to *time.Time) ([]models.UserProgress, error) {
	query := `
		SELECT ` + userProgressColumns + `
		FROM user_progress
		WHERE user_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.UserProgress, 0)
	for rows.Next() {
		var progress models.UserProgress
		if err := scanUserProgress(rows, &progress); err != nil {
			return nil, err
		}
		entries = append(entries, progress)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *UserProgressRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_progress WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type DailyActivityRepository struct {
	db DBTX
}

func NewDailyActivityRepository(db DBTX) *DailyActivityRepository {
	return &DailyActivityRepository{db: db}
}

const dailyActivityColumns = `id, user_id, date, steps, calories_consumed, calories_burned,
	water_intake, sleep_time, daily_progress_percentage, protein_goal, carbs_goal,
	created_at, updated_at`

func scanDailyActivity(row interface{ Scan(dest ...any) error }, activity *models.DailyActivity) error {
	return row.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.Date,
		&activity.Steps,
		&activity.CaloriesConsumed,
		&activity.CaloriesBurned,
		&activity.WaterIntake,
		&activity.SleepTime,
		&activity.DailyProgressPercentage,
		&activity.ProteinGoal,
		&activity.CarbsGoal,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
}

type UpsertDailyActivityInput struct {
	Steps                   *int
	CaloriesConsumed        *int
	CaloriesBurned          *int
	WaterIntake             *float64
	SleepTime               *int
	DailyProgressPercentage *float64
	ProteinGoal             *int
	CarbsGoal               *int
}

func (r *DailyActivityRepository) Upsert(ctx context.Context, userID int64, date time.Time, input UpsertDailyActivityInput) (*models.DailyActivity, error) {
	query := `
		INSERT INTO daily_activities (user_id, date, steps, calories_consumed, calories_burned,
			water_intake, sleep_time, daily_progress_percentage, protein_goal, carbs_goal)
		VALUES ($1, $2, COALESCE($3, 0), COALESCE($4, 0), COALESCE($5, 0), COALESCE($6, 0),
			COALESCE($7, 0), COALESCE($8, 0), COALESCE($9, 0), COALESCE($10, 0))
		ON CONFLICT (user_id, date) DO UPDATE
		SET steps = COALESCE($3, daily_activities.steps),
			calories_consumed = COALESCE($4, daily_activities.calories_consumed),
			calories_burned = COALESCE($5, daily_activities.calories_burned),
			water_intake = COALESCE($6, daily_activities.water_intake),
			sleep_time = COALESCE($7, daily_activities.sleep_time),
			daily_progress_percentage = COALESCE($8, daily_activities.daily_progress_percentage),
			protein_goal = COALESCE($9, daily_activities.protein_goal),
			carbs_goal = COALESCE($10, daily_activities.carbs_goal),
			updated_at = NOW()
		RETURNING ` + dailyActivityColumns + `
	`
	var activity models.DailyActivity
	err := scanDailyActivity(r.db.QueryRow(ctx, query,
		userID, date, input.Steps, input.CaloriesConsumed, input.CaloriesBurned,
		input.WaterIntake, input.SleepTime, input.DailyProgressPercentage,
		input.ProteinGoal, input.CarbsGoal,
	), &activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *DailyActivityRepository) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*models.DailyActivity, error) {
	query := `SELECT ` + dailyActivityColumns + ` FROM daily_activities WHERE user_id = $1 AND date = $2`
	var activity models.DailyActivity
	if err := scanDailyActivity(r.db.QueryRow(ctx, query, userID, date), &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *DailyActivityRepository) ListForUser(ctx context.Context, userID int64, from, to *time.Time) ([]models.DailyActivity, error) {
	query := `
		SELECT ` + dailyActivityColumns + `
		FROM daily_activities
		WHERE user_id = $1
		  AND ($2::date IS NULL OR date >= $2)
		  AND ($3::date IS NULL OR date <= $3)
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]models.DailyActivity, 0)
	for rows.Next() {
		var activity models.DailyActivity
		if err := scanDailyActivity(rows, &activity); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}
