package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type UserWorkoutRepository struct {
	db DBTX
}

func NewUserWorkoutRepository(db DBTX) *UserWorkoutRepository {
	return &UserWorkoutRepository{db: db}
}

const userWorkoutColumns = `id, user_id, workout_id, started_at, completed_at, calories_burned,
	exercise_progress, rating, notes, created_at, updated_at`

func scanUserWorkout(row interface{ Scan(dest ...any) error }, session *models.UserWorkout) error {
	return row.Scan(
		&session.ID,
		&session.UserID,
		&session.WorkoutID,
		&session.StartedAt,
		&session.CompletedAt,
		&session.CaloriesBurned,
		&session.ExerciseProgress,
		&session.Rating,
		&session.Notes,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
}

func (r *UserWorkoutRepository) Create(ctx context.Context, session *models.UserWorkout) error {
	query := `
		INSERT INTO user_workouts (user_id, workout_id, started_at, exercise_progress)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id, started_at, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, session.UserID, session.WorkoutID, session.ExerciseProgress).
		Scan(&session.ID, &session.StartedAt, &session.CreatedAt, &session.UpdatedAt)
}

func (r *UserWorkoutRepository) GetByID(ctx context.Context, id int64) (*models.UserWorkout, error) {
	query := `SELECT ` + userWorkoutColumns + ` FROM user_workouts WHERE id = $1`
	var session models.UserWorkout
	if err := scanUserWorkout(r.db.QueryRow(ctx, query, id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetOpen returns the user's uncompleted session for a workout, if any.
func (r *UserWorkoutRepository) GetOpen(ctx context.Context, userID, workoutID int64) (*models.UserWorkout, error) {
	query := `
		SELECT ` + userWorkoutColumns + `
		FROM user_workouts
		WHERE user_id = $1 AND workout_id = $2 AND completed_at IS NULL
		ORDER BY id DESC
		LIMIT 1
	`
	var session models.UserWorkout
	if err := scanUserWorkout(r.db.QueryRow(ctx, query, userID, workoutID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *UserWorkoutRepository) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]models.UserWorkout, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_workouts WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + userWorkoutColumns + `
		FROM user_workouts
		WHERE user_id = $1
		ORDER BY started_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessions := make([]models.UserWorkout, 0)
	for rows.Next() {
		var session models.UserWorkout
		if err := scanUserWorkout(rows, &session); err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// UpdateProgress merges the given entries into the stored progress map;
// existing keys not present in the patch are kept.
func (r *UserWorkoutRepository) UpdateProgress(ctx context.Context, id int64, progress models.ExerciseProgress) (*models.UserWorkout, error) {
	query := `
		UPDATE user_workouts
		SET exercise_progress = COALESCE(exercise_progress, '{}'::jsonb) || $1,
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userWorkoutColumns + `
	`
	var session models.UserWorkout
	if err := scanUserWorkout(r.db.QueryRow(ctx, query, progress, id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

type CompleteWorkoutInput struct {
	CaloriesBurned *int
	Rating         *int
	Notes          *string
}

func (r *UserWorkoutRepository) Complete(ctx context.Context, id int64, input CompleteWorkoutInput) (*models.UserWorkout, error) {
	query := `
		UPDATE user_workouts
		SET completed_at = NOW(),
			calories_burned = COALESCE($1, calories_burned),
			rating = COALESCE($2, rating),
			notes = COALESCE($3, notes),
			updated_at = NOW()
		WHERE id = $4 AND completed_at IS NULL
		RETURNING ` + userWorkoutColumns + `
	`
	var session models.UserWorkout
	err := scanUserWorkout(r.db.QueryRow(ctx, query,
		input.CaloriesBurned, input.Rating, input.Notes, id,
	), &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *UserWorkoutRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_workouts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
