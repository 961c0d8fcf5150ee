package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type WorkoutService struct {
	db              *pgxpool.Pool
	workoutRepo     *repository.WorkoutRepository
	exerciseRepo    *repository.ExerciseRepository
	userWorkoutRepo *repository.UserWorkoutRepository
}

func NewWorkoutService(
	db *pgxpool.Pool,
	workoutRepo *repository.WorkoutRepository,
	exerciseRepo *repository.ExerciseRepository,
	userWorkoutRepo *repository.UserWorkoutRepository,
) *WorkoutService {
	return &WorkoutService{
		db:              db,
		workoutRepo:     workoutRepo,
		exerciseRepo:    exerciseRepo,
		userWorkoutRepo: userWorkoutRepo,
	}
}

func (s *WorkoutService) GetWorkout(ctx context.Context, id int64) (*models.WorkoutDetail, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	exercises, err := s.exerciseRepo.ListByWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.WorkoutDetail{Workout: *workout, Exercises: exercises}, nil
}

// StartWorkout opens a session for the user, or returns the already open one.
// The advisory lock serializes concurrent starts for the same user+workout
// pair so at most one uncompleted session exists.
func (s *WorkoutService) StartWorkout(ctx context.Context, userID, workoutID int64) (*models.UserWorkout, bool, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	if !workout.IsActive {
		return nil, false, ErrNotFound
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", userID, workoutID); err != nil {
		return nil, false, err
	}

	txRepo := repository.NewUserWorkoutRepository(tx)

	existing, err := txRepo.GetOpen(ctx, userID, workoutID)
	if err == nil {
		if err := tx.Commit(ctx); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	session := &models.UserWorkout{
		UserID:           userID,
		WorkoutID:        workoutID,
		ExerciseProgress: models.ExerciseProgress{},
	}
	if err := txRepo.Create(ctx, session); err != nil {
		return nil, false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

func (s *WorkoutService) getOwnedSession(ctx context.Context, userID, sessionID int64) (*models.UserWorkout, error) {
	session, err := s.userWorkoutRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

func (s *WorkoutService) GetSession(ctx context.Context, userID, sessionID int64) (*models.UserWorkout, error) {
	return s.getOwnedSession(ctx, userID, sessionID)
}

func (s *WorkoutService) ListSessions(ctx context.Context, userID int64, limit, offset int) ([]models.UserWorkout, int, error) {
	return s.userWorkoutRepo.ListForUser(ctx, userID, limit, offset)
}

// UpdateProgress merges per-exercise progress into the open session. Entries
// are keyed by exercise id; only exercises of the session's workout count.
func (s *WorkoutService) UpdateProgress(ctx context.Context, userID, sessionID int64, progress models.ExerciseProgress) (*models.UserWorkout, error) {
	if len(progress) == 0 {
		return nil, ErrInvalidInput
	}

	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CompletedAt != nil {
		return nil, ErrConflict
	}

	updated, err := s.userWorkoutRepo.UpdateProgress(ctx, sessionID, progress)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

type CompleteSessionInput struct {
	CaloriesBurned *int
	Rating         *int
	Notes          *string
}

func (s *WorkoutService) CompleteSession(ctx context.Context, userID, sessionID int64, input CompleteSessionInput) (*models.UserWorkout, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, ErrInvalidInput
	}

	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CompletedAt != nil {
		return nil, ErrConflict
	}

	completed, err := s.userWorkoutRepo.Complete(ctx, sessionID, repository.CompleteWorkoutInput{
		CaloriesBurned: input.CaloriesBurned,
		Rating:         input.Rating,
		Notes:          input.Notes,
	})
	if err != nil {
		// The guard in the update means a concurrent completion surfaces
		// here as no rows.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return completed, nil
}
