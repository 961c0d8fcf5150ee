package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

const exerciseColumns = `id, workout_id, name, instructions, video_url, image_url,
	duration_seconds, repetitions, sets, rest_seconds, position, created_at, updated_at`

func scanExercise(row interface{ Scan(dest ...any) error }, exercise *models.Exercise) error {
	return row.Scan(
		&exercise.ID,
		&exercise.WorkoutID,
		&exercise.Name,
		&exercise.Instructions,
		&exercise.VideoURL,
		&exercise.ImageURL,
		&exercise.DurationSeconds,
		&exercise.Repetitions,
		&exercise.Sets,
		&exercise.RestSeconds,
		&exercise.Position,
		&exercise.CreatedAt,
		&exercise.UpdatedAt,
	)
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	query := `
		INSERT INTO exercises (workout_id, name, instructions, video_url, image_url,
			duration_seconds, repetitions, sets, rest_seconds, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		exercise.WorkoutID, exercise.Name, exercise.Instructions, exercise.VideoURL,
		exercise.ImageURL, exercise.DurationSeconds, exercise.Repetitions, exercise.Sets,
		exercise.RestSeconds, exercise.Position,
	).Scan(&exercise.ID, &exercise.CreatedAt, &exercise.UpdatedAt)
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1`
	var exercise models.Exercise
	if err := scanExercise(r.db.QueryRow(ctx, query, id), &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// ListByWorkout returns a workout's exercises in their explicit position order.
func (r *ExerciseRepository) ListByWorkout(ctx context.Context, workoutID int64) ([]models.Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE workout_id = $1
		ORDER BY position, id
	`
	rows, err := r.db.Query(ctx, query, workoutID)
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

type UpdateExerciseInput struct {
	Name            *string
	Instructions    *string
	VideoURL        *string
	ImageURL        *string
	DurationSeconds *int
	Repetitions     *int
	Sets            *int
	RestSeconds     *int
	Position        *int
}

func (r *ExerciseRepository) Update(ctx context.Context, id int64, input UpdateExerciseInput) (*models.Exercise, error) {
	query := `
		UPDATE exercises
		SET name = COALESCE($1, name),
			instructions = COALESCE($2, instructions),
			video_url = COALESCE($3, video_url),
			image_url = COALESCE($4, image_url),
			duration_seconds = COALESCE($5, duration_seconds),
			repetitions = COALESCE($6, repetitions),
			sets = COALESCE($7, sets),
			rest_seconds = COALESCE($8, rest_seconds),
			position = COALESCE($9, position),
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + exerciseColumns + `
	`
	var exercise models.Exercise
	err := scanExercise(r.db.QueryRow(ctx, query,
		input.Name, input.Instructions, input.VideoURL, input.ImageURL, input.DurationSeconds,
		input.Repetitions, input.Sets, input.RestSeconds, input.Position, id,
	), &exercise)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
