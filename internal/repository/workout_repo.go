package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

const workoutColumns = `id, name, description, image_url, difficulty, type, duration_minutes,
	calories_per_session, equipment_needed, tags, is_featured, is_active, created_by_admin,
	created_at, updated_at`

func scanWorkout(row interface{ Scan(dest ...any) error }, workout *models.Workout) error {
	return row.Scan(
		&workout.ID,
		&workout.Name,
		&workout.Description,
		&workout.ImageURL,
		&workout.Difficulty,
		&workout.Type,
		&workout.DurationMinutes,
		&workout.CaloriesPerSession,
		&workout.EquipmentNeeded,
		&workout.Tags,
		&workout.IsFeatured,
		&workout.IsActive,
		&workout.CreatedByAdmin,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	)
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := `
		INSERT INTO workouts (name, description, image_url, difficulty, type, duration_minutes,
			calories_per_session, equipment_needed, tags, is_featured, is_active, created_by_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		workout.Name, workout.Description, workout.ImageURL, workout.Difficulty, workout.Type,
		workout.DurationMinutes, workout.CaloriesPerSession, workout.EquipmentNeeded, workout.Tags,
		workout.IsFeatured, workout.IsActive, workout.CreatedByAdmin,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*models.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1`
	var workout models.Workout
	if err := scanWorkout(r.db.QueryRow(ctx, query, id), &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

type WorkoutListFilter struct {
	Difficulty *string
	Type       *string
	Featured   *bool
	Search     string
	ActiveOnly bool
	Limit      int
	Offset     int
}

func (r *WorkoutRepository) List(ctx context.Context, filter WorkoutListFilter) ([]models.Workout, int, error) {
	where := `
		WHERE ($1::text IS NULL OR difficulty = $1)
		  AND ($2::text IS NULL OR type = $2)
		  AND ($3::boolean IS NULL OR is_featured = $3)
		  AND ($4 = '' OR name ILIKE '%' || $4 || '%' OR description ILIKE '%' || $4 || '%')
		  AND (NOT $5 OR is_active)
	`
	var total int
	countQuery := `SELECT COUNT(*) FROM workouts` + where
	err := r.db.QueryRow(ctx, countQuery,
		filter.Difficulty, filter.Type, filter.Featured, filter.Search, filter.ActiveOnly,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + workoutColumns + ` FROM workouts` + where + `
		ORDER BY id
		LIMIT $6 OFFSET $7
	`
	rows, err := r.db.Query(ctx, query,
		filter.Difficulty, filter.Type, filter.Featured, filter.Search, filter.ActiveOnly,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var workout models.Workout
		if err := scanWorkout(rows, &workout); err != nil {
			return nil, 0, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

type UpdateWorkoutInput struct {
	Name               *string
	Description        *string
	ImageURL           *string
	Difficulty         *string
	Type               *string
	DurationMinutes    *int
	CaloriesPerSession *int
	EquipmentNeeded    *[]string
	Tags               *[]string
	IsFeatured         *bool
	IsActive           *bool
}

func (r *WorkoutRepository) Update(ctx context.Context, id int64, input UpdateWorkoutInput) (*models.Workout, error) {
	query := `
		UPDATE workouts
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			image_url = COALESCE($3, image_url),
			difficulty = COALESCE($4, difficulty),
			type = COALESCE($5, type),
			duration_minutes = COALESCE($6, duration_minutes),
			calories_per_session = COALESCE($7, calories_per_session),
			equipment_needed = COALESCE($8, equipment_needed),
			tags = COALESCE($9, tags),
			is_featured = COALESCE($10, is_featured),
			is_active = COALESCE($11, is_active),
			updated_at = NOW()
		WHERE id = $12
		RETURNING ` + workoutColumns + `
	`
	var workout models.Workout
	err := scanWorkout(r.db.QueryRow(ctx, query,
		input.Name, input.Description, input.ImageURL, input.Difficulty, input.Type,
		input.DurationMinutes, input.CaloriesPerSession, input.EquipmentNeeded, input.Tags,
		input.IsFeatured, input.IsActive, id,
	), &workout)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// Delete removes the workout; exercises cascade at the database level.
func (r *WorkoutRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SuggestExercises returns up to limit exercises from active workouts that
// carry a repetition count, randomized per call. Used by the home screen.
func (r *WorkoutRepository) SuggestExercises(ctx context.Context, limit int) ([]models.Exercise, error) {
	query := `
		SELECT e.id, e.workout_id, e.name, e.instructions, e.video_url, e.image_url,
			   e.duration_seconds, e.repetitions, e.sets, e.rest_seconds, e.position,
			   e.created_at, e.updated_at
		FROM exercises e
		JOIN workouts w ON w.id = e.workout_id
		WHERE w.is_active AND e.repetitions IS NOT NULL
		ORDER BY random()
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := scanExercise(rows, &exercise); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
