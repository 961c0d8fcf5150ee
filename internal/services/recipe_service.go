package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type RecipeService struct {
	recipeRepo     *repository.RecipeRepository
	preferenceRepo *repository.UserPreferenceRepository
	searchLogRepo  *repository.SearchLogRepository
	log            *logger.Logger
}

func NewRecipeService(
	recipeRepo *repository.RecipeRepository,
	preferenceRepo *repository.UserPreferenceRepository,
	searchLogRepo *repository.SearchLogRepository,
	log *logger.Logger,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		preferenceRepo: preferenceRepo,
		searchLogRepo:  searchLogRepo,
		log:            log,
	}
}

// RecipeOfTheDay picks a stable recipe for the calendar date: the day number
// modulo the active recipe count indexes into the id-ordered list.
func (s *RecipeService) RecipeOfTheDay(ctx context.Context, now time.Time) (*models.Recipe, error) {
	count, err := s.recipeRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	days := int(now.UTC().Unix() / 86400)
	recipe, err := s.recipeRepo.GetByOffset(ctx, days%count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Recommend narrows active recipes by the user's stored preferences. A user
// without preferences gets featured-first active recipes.
func (s *RecipeService) Recommend(ctx context.Context, userID int64, limit int) ([]models.Recipe, error) {
	filter := repository.RecommendationFilter{Limit: limit}

	pref, err := s.preferenceRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		if pref.DietaryPreferences != nil {
			filter.DietaryPreferences = *pref.DietaryPreferences
		}
		if pref.Allergies != nil {
			filter.Allergies = *pref.Allergies
		}
		if pref.MealTypes != nil {
			filter.MealTypes = *pref.MealTypes
		}
		if pref.CookingTimePreference != nil {
			if minutes, ok := cookingTimeToMinutes(*pref.CookingTimePreference); ok {
				filter.MaxCookTimeMinutes = &minutes
			}
		}
	}

	return s.recipeRepo.Recommend(ctx, filter)
}

func cookingTimeToMinutes(preference string) (int, bool) {
	switch preference {
	case "quick":
		return 15, true
	case "moderate":
		return 30, true
	case "elaborate":
		return 60, true
	default:
		return 0, false
	}
}

// Search lists recipes and records the query for the popular-searches feed.
// Logging failures never fail the search.
func (s *RecipeService) Search(ctx context.Context, userID *int64, filter repository.RecipeListFilter) ([]models.Recipe, int, error) {
	recipes, total, err := s.recipeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.Search != "" {
		entry := &models.SearchLog{
			UserID:      userID,
			SearchQuery: filter.Search,
			SearchType:  "recipes",
			FiltersApplied: &models.SearchFilters{
				Difficulty: filter.Difficulty,
				MealType:   filter.MealType,
			},
			ResultsCount: total,
		}
		if err := s.searchLogRepo.Create(ctx, entry); err != nil {
			s.log.Warn("search log write failed", "query", filter.Search, "error", err)
		}
	}
	return recipes, total, nil
}
