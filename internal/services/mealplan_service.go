package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type MealPlanService struct {
	db               *pgxpool.Pool
	mealPlanRepo     *repository.MealPlanRepository
	planRecipeRepo   *repository.MealPlanRecipeRepository
	userMealPlanRepo *repository.UserMealPlanRepository
	preferenceRepo   *repository.UserPreferenceRepository
}

func NewMealPlanService(
	db *pgxpool.Pool,
	mealPlanRepo *repository.MealPlanRepository,
	planRecipeRepo *repository.MealPlanRecipeRepository,
	userMealPlanRepo *repository.UserMealPlanRepository,
	preferenceRepo *repository.UserPreferenceRepository,
) *MealPlanService {
	return &MealPlanService{
		db:               db,
		mealPlanRepo:     mealPlanRepo,
		planRecipeRepo:   planRecipeRepo,
		userMealPlanRepo: userMealPlanRepo,
		preferenceRepo:   preferenceRepo,
	}
}

func (s *MealPlanService) GetPlan(ctx context.Context, id int64) (*models.MealPlanDetail, error) {
	plan, err := s.mealPlanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	recipes, err := s.planRecipeRepo.ListByPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.MealPlanDetail{MealPlan: *plan, Recipes: recipes}, nil
}

// ListPersonalized filters plans by the user's stored preferences. Users
// without preferences get the unfiltered active list.
func (s *MealPlanService) ListPersonalized(ctx context.Context, userID int64, limit, offset int) ([]models.MealPlan, int, error) {
	filter := repository.MealPlanFilter{ActiveOnly: true, Limit: limit, Offset: offset}

	pref, err := s.preferenceRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, err
	}
	if err == nil {
		if pref.DietaryPreferences != nil && len(*pref.DietaryPreferences) > 0 {
			filter.DietaryPreference = &(*pref.DietaryPreferences)[0]
		}
		if pref.Allergies != nil {
			filter.AllergenFree = *pref.Allergies
		}
	}

	return s.mealPlanRepo.List(ctx, filter)
}

// ActivatePlan starts the plan for the user, deactivating any current plan.
// The advisory lock keeps concurrent activations from leaving two rows
// active.
func (s *MealPlanService) ActivatePlan(ctx context.Context, userID, mealPlanID int64, startDate time.Time) (*models.UserMealPlan, error) {
	plan, err := s.mealPlanRepo.GetByID(ctx, mealPlanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, ErrNotFound
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", userID); err != nil {
		return nil, err
	}

	txRepo := repository.NewUserMealPlanRepository(tx)
	if err := txRepo.DeactivateForUser(ctx, userID); err != nil {
		return nil, err
	}

	start := startDate.Truncate(24 * time.Hour)
	userPlan := &models.UserMealPlan{
		UserID:     userID,
		MealPlanID: mealPlanID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, plan.DurationDays),
		IsActive:   true,
	}
	if err := txRepo.Create(ctx, userPlan); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return userPlan, nil
}

func (s *MealPlanService) ActivePlan(ctx context.Context, userID int64) (*models.MealPlanDetail, *models.UserMealPlan, error) {
	userPlan, err := s.userMealPlanRepo.GetActiveForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	detail, err := s.GetPlan(ctx, userPlan.MealPlanID)
	if err != nil {
		return nil, nil, err
	}
	return detail, userPlan, nil
}

func (s *MealPlanService) DeactivatePlan(ctx context.Context, userID int64) error {
	return s.userMealPlanRepo.DeactivateForUser(ctx, userID)
}

// DayRecipes returns the active plan's recipes for one calendar date,
// resolved against the plan's start date.
func (s *MealPlanService) DayRecipes(ctx context.Context, userID int64, date time.Time) ([]models.MealPlanRecipeDetail, error) {
	userPlan, err := s.userMealPlanRepo.GetActiveForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	day := int(date.Truncate(24*time.Hour).Sub(userPlan.StartDate.Truncate(24*time.Hour)).Hours()/24) + 1
	if day < 1 {
		return nil, ErrInvalidInput
	}

	entries, err := s.planRecipeRepo.ListByPlan(ctx, userPlan.MealPlanID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.MealPlanRecipeDetail, 0)
	for _, entry := range entries {
		if entry.DayNumber == day {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
