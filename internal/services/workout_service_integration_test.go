package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

var (
	integrationDBOnce sync.Once
	integrationDBPool *pgxpool.Pool
	integrationDBErr  error
)

// integrationPool connects once per test binary and skips every caller when
// TEST_DB_URL is not set. The target database must have migrations applied.
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	integrationDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("TEST_DB_URL")
		if dbURL == "" {
			integrationDBErr = fmt.Errorf("TEST_DB_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			integrationDBErr = err
			return
		}

		integrationDBPool, integrationDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if integrationDBErr != nil {
			return
		}
		integrationDBErr = integrationDBPool.Ping(context.Background())
	})

	if integrationDBErr != nil {
		t.Skipf("skipping integration test: %v", integrationDBErr)
	}
	return integrationDBPool
}

func createIntegrationUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, label string) int64 {
	t.Helper()

	user := &models.User{
		Name:         "Test " + label,
		Email:        fmt.Sprintf("%s-%d@example.com", label, time.Now().UnixNano()),
		PasswordHash: "test-hash",
	}
	if err := repository.NewUserRepository(pool).Create(ctx, user); err != nil {
		t.Fatalf("create user %s: %v", label, err)
	}
	return user.ID
}

func createIntegrationWorkout(t *testing.T, ctx context.Context, pool *pgxpool.Pool, exerciseCount int) int64 {
	t.Helper()

	workout := &models.Workout{
		Name:       "Morning Routine",
		Difficulty: "beginner",
		Type:       "strength",
		IsActive:   true,
	}
	if err := repository.NewWorkoutRepository(pool).Create(ctx, workout); err != nil {
		t.Fatalf("create workout: %v", err)
	}

	exerciseRepo := repository.NewExerciseRepository(pool)
	for i := 0; i < exerciseCount; i++ {
		exercise := &models.Exercise{
			WorkoutID: workout.ID,
			Name:      fmt.Sprintf("Exercise %d", i+1),
			Position:  i + 1,
		}
		if err := exerciseRepo.Create(ctx, exercise); err != nil {
			t.Fatalf("create exercise %d: %v", i+1, err)
		}
	}
	return workout.ID
}

func cleanupWorkoutFixtures(t *testing.T, ctx context.Context, pool *pgxpool.Pool, workoutIDs, userIDs []int64) {
	t.Helper()

	if len(workoutIDs) > 0 {
		if _, err := pool.Exec(ctx, "DELETE FROM workouts WHERE id = ANY($1)", workoutIDs); err != nil {
			t.Fatalf("cleanup workouts: %v", err)
		}
	}
	if len(userIDs) > 0 {
		if _, err := pool.Exec(ctx, "DELETE FROM users WHERE id = ANY($1)", userIDs); err != nil {
			t.Fatalf("cleanup users: %v", err)
		}
	}
}

func newIntegrationWorkoutService(pool *pgxpool.Pool) *WorkoutService {
	return NewWorkoutService(
		pool,
		repository.NewWorkoutRepository(pool),
		repository.NewExerciseRepository(pool),
		repository.NewUserWorkoutRepository(pool),
	)
}

func TestStartWorkoutReturnsOpenSessionOnSecondStart(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationWorkoutService(pool)

	userID := createIntegrationUser(t, ctx, pool, "session-user")
	workoutID := createIntegrationWorkout(t, ctx, pool, 2)
	t.Cleanup(func() { cleanupWorkoutFixtures(t, ctx, pool, []int64{workoutID}, []int64{userID}) })

	first, created, err := service.StartWorkout(ctx, userID, workoutID)
	if err != nil {
		t.Fatalf("first StartWorkout: %v", err)
	}
	if !created {
		t.Fatal("expected first start to create a session")
	}

	second, created, err := service.StartWorkout(ctx, userID, workoutID)
	if err != nil {
		t.Fatalf("second StartWorkout: %v", err)
	}
	if created {
		t.Fatal("expected second start to reuse the open session")
	}
	if second.ID != first.ID {
		t.Fatalf("expected session %d, got %d", first.ID, second.ID)
	}

	if _, err := service.CompleteSession(ctx, userID, first.ID, CompleteSessionInput{}); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	third, created, err := service.StartWorkout(ctx, userID, workoutID)
	if err != nil {
		t.Fatalf("third StartWorkout: %v", err)
	}
	if !created || third.ID == first.ID {
		t.Fatalf("expected a fresh session after completion, got created=%v id=%d", created, third.ID)
	}
}

func TestDeletingWorkoutRemovesItsExercises(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)

	userID := createIntegrationUser(t, ctx, pool, "cascade-user")
	workoutID := createIntegrationWorkout(t, ctx, pool, 3)
	t.Cleanup(func() { cleanupWorkoutFixtures(t, ctx, pool, nil, []int64{userID}) })

	exerciseRepo := repository.NewExerciseRepository(pool)
	before, err := exerciseRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		t.Fatalf("ListByWorkout: %v", err)
	}
	if len(before) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(before))
	}

	deleted, err := repository.NewWorkoutRepository(pool).Delete(ctx, workoutID)
	if err != nil {
		t.Fatalf("Delete workout: %v", err)
	}
	if !deleted {
		t.Fatal("expected workout to be deleted")
	}

	after, err := exerciseRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		t.Fatalf("ListByWorkout after delete: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("expected exercises to cascade away, got %d", len(after))
	}
}

func TestStartWorkoutUnknownWorkout(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(t)
	service := newIntegrationWorkoutService(pool)

	userID := createIntegrationUser(t, ctx, pool, "missing-workout-user")
	t.Cleanup(func() { cleanupWorkoutFixtures(t, ctx, pool, nil, []int64{userID}) })

	_, _, err := service.StartWorkout(ctx, userID, 1<<40)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
