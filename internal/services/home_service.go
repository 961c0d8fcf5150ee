package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

const (
	homeExerciseCount  = 3
	homeRecipeCount    = 2
	homeEducationCount = 4
)

// HomeSummary is the single payload behind the mobile home screen.
type HomeSummary struct {
	User               *models.User              `json:"user"`
	TodayActivity      *models.DailyActivity     `json:"today_activity"`
	GoalProgress       GoalProgress              `json:"goal_progress"`
	SuggestedExercises []models.Exercise         `json:"suggested_exercises"`
	RecommendedRecipes []models.Recipe           `json:"recommended_recipes"`
	RecipeOfTheDay     *models.Recipe            `json:"recipe_of_the_day"`
	FeaturedEducation  []models.EducationContent `json:"featured_education"`
}

type GoalProgress struct {
	StepsPercent    float64 `json:"steps_percent"`
	CaloriesPercent float64 `json:"calories_percent"`
	WaterPercent    float64 `json:"water_percent"`
}

type HomeService struct {
	userRepo      *repository.UserRepository
	activityRepo  *repository.DailyActivityRepository
	workoutRepo   *repository.WorkoutRepository
	educationRepo *repository.EducationRepository
	recipeService *RecipeService
}

func NewHomeService(
	userRepo *repository.UserRepository,
	activityRepo *repository.DailyActivityRepository,
	workoutRepo *repository.WorkoutRepository,
	educationRepo *repository.EducationRepository,
	recipeService *RecipeService,
) *HomeService {
	return &HomeService{
		userRepo:      userRepo,
		activityRepo:  activityRepo,
		workoutRepo:   workoutRepo,
		educationRepo: educationRepo,
		recipeService: recipeService,
	}
}

// Summary assembles the home screen for one user. Missing pieces degrade to
// empty sections rather than failing the whole screen; only the user lookup
// is fatal.
func (s *HomeService) Summary(ctx context.Context, userID int64, now time.Time) (*HomeSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summary := &HomeSummary{User: user}

	activity, err := s.activityRepo.GetByUserAndDate(ctx, userID, now)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		summary.TodayActivity = activity
		summary.GoalProgress = GoalProgress{
			StepsPercent:    percent(float64(activity.Steps), float64(user.DailyStepsGoal)),
			CaloriesPercent: percent(float64(activity.CaloriesConsumed), float64(user.DailyCalorieGoal)),
			WaterPercent:    percent(activity.WaterIntake, user.DailyWaterGoal),
		}
	}

	exercises, err := s.workoutRepo.SuggestExercises(ctx, homeExerciseCount)
	if err != nil {
		return nil, err
	}
	summary.SuggestedExercises = exercises

	recipes, err := s.recipeService.Recommend(ctx, userID, homeRecipeCount)
	if err != nil {
		return nil, err
	}
	summary.RecommendedRecipes = recipes

	daily, err := s.recipeService.RecipeOfTheDay(ctx, now)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	summary.RecipeOfTheDay = daily

	education, err := s.educationRepo.FeaturedRandom(ctx, homeEducationCount)
	if err != nil {
		return nil, err
	}
	summary.FeaturedEducation = education

	return summary, nil
}

func percent(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := value / goal * 100
	if p > 100 {
		return 100
	}
	return p
}
