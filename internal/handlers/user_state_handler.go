package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

// UserStateHandler covers the per-user state the mobile app syncs: goals,
// food preferences, progress entries and daily activity.
type UserStateHandler struct {
	goalRepo       *repository.UserGoalRepository
	preferenceRepo *repository.UserPreferenceRepository
	progressRepo   *repository.UserProgressRepository
	activityRepo   *repository.DailyActivityRepository
}

func NewUserStateHandler(
	goalRepo *repository.UserGoalRepository,
	preferenceRepo *repository.UserPreferenceRepository,
	progressRepo *repository.UserProgressRepository,
	activityRepo *repository.DailyActivityRepository,
) *UserStateHandler {
	return &UserStateHandler{
		goalRepo:       goalRepo,
		preferenceRepo: preferenceRepo,
		progressRepo:   progressRepo,
		activityRepo:   activityRepo,
	}
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

type upsertGoalsRequest struct {
	Steps    *int     `json:"steps" validate:"omitempty,gte=0"`
	Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
	Water    *float64 `json:"water" validate:"omitempty,gte=0"`
}

func (h *UserStateHandler) GetGoals(c *fiber.Ctx) error {
	goal, err := h.goalRepo.GetByUserID(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, goal)
}

func (h *UserStateHandler) UpsertGoals(c *fiber.Ctx) error {
	var req upsertGoalsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	goal := &models.UserGoal{
		UserID:   principalID(c),
		Steps:    req.Steps,
		Calories: req.Calories,
		Water:    req.Water,
	}
	if err := h.goalRepo.Upsert(c.Context(), goal); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, goal)
}

type upsertPreferencesRequest struct {
	DietaryPreferences    *[]string `json:"dietary_preferences"`
	Allergies             *[]string `json:"allergies"`
	MealTypes             *[]string `json:"meal_types"`
	CaloricGoal           *string   `json:"caloric_goal" validate:"omitempty,oneof=lose_weight maintain_weight gain_weight"`
	CookingTimePreference *string   `json:"cooking_time_preference" validate:"omitempty,oneof=quick moderate elaborate"`
	ServingPreference     *string   `json:"serving_preference" validate:"omitempty,oneof=single couple family"`
}

func (h *UserStateHandler) GetPreferences(c *fiber.Ctx) error {
	pref, err := h.preferenceRepo.GetByUserID(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, pref)
}

func (h *UserStateHandler) UpsertPreferences(c *fiber.Ctx) error {
	var req upsertPreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	pref := &models.UserPreference{
		UserID:                principalID(c),
		DietaryPreferences:    req.DietaryPreferences,
		Allergies:             req.Allergies,
		MealTypes:             req.MealTypes,
		CaloricGoal:           req.CaloricGoal,
		CookingTimePreference: req.CookingTimePreference,
		ServingPreference:     req.ServingPreference,
	}
	if err := h.preferenceRepo.Upsert(c.Context(), pref); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, pref)
}

type upsertProgressRequest struct {
	Date              string               `json:"date" validate:"required"`
	Weight            *float64             `json:"weight" validate:"omitempty,gt=0"`
	BodyFatPercentage *float64             `json:"body_fat_percentage" validate:"omitempty,gte=0,max=100"`
	MuscleMass        *float64             `json:"muscle_mass" validate:"omitempty,gte=0"`
	Notes             *string              `json:"notes"`
	Measurements      *models.Measurements `json:"measurements"`
	ProgressImage     *string              `json:"progress_image" validate:"omitempty,url"`
}

func (h *UserStateHandler) UpsertProgress(c *fiber.Ctx) error {
	var req upsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return respondValidation(c, map[string]string{"date": "must be YYYY-MM-DD"})
	}

	progress := &models.UserProgress{
		UserID:            principalID(c),
		Date:              date,
		Weight:            req.Weight,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		Notes:             req.Notes,
		Measurements:      req.Measurements,
		ProgressImage:     req.ProgressImage,
	}
	if err := h.progressRepo.Upsert(c.Context(), progress); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, progress)
}

func (h *UserStateHandler) ListProgress(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return respondValidation(c, map[string]string{"from": "must be YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return respondValidation(c, map[string]string{"to": "must be YYYY-MM-DD"})
	}

	entries, err := h.progressRepo.ListForUser(c.Context(), principalID(c), from, to)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, entries, len(entries))
}

type upsertActivityRequest struct {
	Date                    string   `json:"date" validate:"required"`
	Steps                   *int     `json:"steps" validate:"omitempty,gte=0"`
	CaloriesConsumed        *int     `json:"calories_consumed" validate:"omitempty,gte=0"`
	CaloriesBurned          *int     `json:"calories_burned" validate:"omitempty,gte=0"`
	WaterIntake             *float64 `json:"water_intake" validate:"omitempty,gte=0"`
	SleepTime               *int     `json:"sleep_time" validate:"omitempty,gte=0"`
	DailyProgressPercentage *float64 `json:"daily_progress_percentage" validate:"omitempty,gte=0,max=100"`
	ProteinGoal             *int     `json:"protein_goal" validate:"omitempty,gte=0"`
	CarbsGoal               *int     `json:"carbs_goal" validate:"omitempty,gte=0"`
}

func (h *UserStateHandler) UpsertActivity(c *fiber.Ctx) error {
	var req upsertActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return respondValidation(c, map[string]string{"date": "must be YYYY-MM-DD"})
	}

	activity, err := h.activityRepo.Upsert(c.Context(), principalID(c), date, repository.UpsertDailyActivityInput{
		Steps:                   req.Steps,
		CaloriesConsumed:        req.CaloriesConsumed,
		CaloriesBurned:          req.CaloriesBurned,
		WaterIntake:             req.WaterIntake,
		SleepTime:               req.SleepTime,
		DailyProgressPercentage: req.DailyProgressPercentage,
		ProteinGoal:             req.ProteinGoal,
		CarbsGoal:               req.CarbsGoal,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, activity)
}

func (h *UserStateHandler) TodayActivity(c *fiber.Ctx) error {
	activity, err := h.activityRepo.GetByUserAndDate(c.Context(), principalID(c), time.Now().UTC())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, activity)
}

func (h *UserStateHandler) ListActivity(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return respondValidation(c, map[string]string{"from": "must be YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return respondValidation(c, map[string]string{"to": "must be YYYY-MM-DD"})
	}

	entries, err := h.activityRepo.ListForUser(c.Context(), principalID(c), from, to)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, entries, len(entries))
}
