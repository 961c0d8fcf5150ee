package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type MealPlanHandler struct {
	mealPlanRepo    *repository.MealPlanRepository
	planRecipeRepo  *repository.MealPlanRecipeRepository
	mealPlanService *services.MealPlanService
}

func NewMealPlanHandler(
	mealPlanRepo *repository.MealPlanRepository,
	planRecipeRepo *repository.MealPlanRecipeRepository,
	mealPlanService *services.MealPlanService,
) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanRepo:    mealPlanRepo,
		planRecipeRepo:  planRecipeRepo,
		mealPlanService: mealPlanService,
	}
}

func optionalIntQuery(c *fiber.Ctx, key string) *int {
	value := c.QueryInt(key, -1)
	if value < 0 {
		return nil
	}
	return &value
}

// List serves the catalog with explicit filters. The personalized variant
// lives on /meal-plans/personalized.
func (h *MealPlanHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	filter := repository.MealPlanFilter{
		Difficulty:        optionalQuery(c, "difficulty"),
		Goal:              optionalQuery(c, "goal"),
		DietaryPreference: optionalQuery(c, "dietary_preference"),
		TargetCaloriesMin: optionalIntQuery(c, "calories_min"),
		TargetCaloriesMax: optionalIntQuery(c, "calories_max"),
		ActiveOnly:        principalKind(c) != services.PrincipalAdmin,
		Limit:             limit,
		Offset:            offset,
	}

	plans, total, err := h.mealPlanRepo.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, plans, len(plans), buildPaginationMeta(page, limit, total))
}

func (h *MealPlanHandler) Personalized(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	plans, total, err := h.mealPlanService.ListPersonalized(c.Context(), principalID(c), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, plans, len(plans), buildPaginationMeta(page, limit, total))
}

func (h *MealPlanHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	detail, err := h.mealPlanService.GetPlan(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !detail.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, detail)
}

type activatePlanRequest struct {
	StartDate *string `json:"start_date"`
}

func (h *MealPlanHandler) Activate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req activatePlanRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	start := time.Now().UTC()
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return respondValidation(c, map[string]string{"start_date": "must be YYYY-MM-DD"})
		}
		start = parsed
	}

	userPlan, err := h.mealPlanService.ActivatePlan(c.Context(), principalID(c), int64(id), start)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, userPlan)
}

func (h *MealPlanHandler) Active(c *fiber.Ctx) error {
	detail, userPlan, err := h.mealPlanService.ActivePlan(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"plan": detail, "enrollment": userPlan})
}

func (h *MealPlanHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.mealPlanService.DeactivatePlan(c.Context(), principalID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Meal plan deactivated"})
}

func (h *MealPlanHandler) DayRecipes(c *fiber.Ctx) error {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondValidation(c, map[string]string{"date": "must be YYYY-MM-DD"})
		}
		date = parsed
	}

	entries, err := h.mealPlanService.DayRecipes(c.Context(), principalID(c), date)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, entries, len(entries))
}

type createMealPlanRequest struct {
	Name               string    `json:"name" validate:"required,max=255"`
	Description        *string   `json:"description"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	DurationDays       int       `json:"duration_days" validate:"required,gt=0"`
	Goals              *[]string `json:"goals"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	AllergenFree       *[]string `json:"allergen_free"`
	TargetCaloriesMin  *int      `json:"target_calories_min" validate:"omitempty,gt=0"`
	TargetCaloriesMax  *int      `json:"target_calories_max" validate:"omitempty,gt=0"`
	Difficulty         string    `json:"difficulty" validate:"required,oneof=easy medium hard"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           *bool     `json:"is_active"`
}

func (h *MealPlanHandler) Create(c *fiber.Ctx) error {
	var req createMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	if req.TargetCaloriesMin != nil && req.TargetCaloriesMax != nil && *req.TargetCaloriesMin > *req.TargetCaloriesMax {
		return respondValidation(c, map[string]string{"target_calories_min": "must not exceed target_calories_max"})
	}

	adminID := principalID(c)
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	plan := &models.MealPlan{
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		DurationDays:       req.DurationDays,
		Goals:              req.Goals,
		DietaryPreferences: req.DietaryPreferences,
		AllergenFree:       req.AllergenFree,
		TargetCaloriesMin:  req.TargetCaloriesMin,
		TargetCaloriesMax:  req.TargetCaloriesMax,
		Difficulty:         req.Difficulty,
		IsFeatured:         req.IsFeatured,
		IsActive:           active,
		CreatedByAdmin:     &adminID,
	}
	if err := h.mealPlanRepo.Create(c.Context(), plan); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, plan)
}

type updateMealPlanRequest struct {
	Name               *string   `json:"name" validate:"omitempty,max=255"`
	Description        *string   `json:"description"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	DurationDays       *int      `json:"duration_days" validate:"omitempty,gt=0"`
	Goals              *[]string `json:"goals"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	AllergenFree       *[]string `json:"allergen_free"`
	TargetCaloriesMin  *int      `json:"target_calories_min" validate:"omitempty,gt=0"`
	TargetCaloriesMax  *int      `json:"target_calories_max" validate:"omitempty,gt=0"`
	Difficulty         *string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	IsFeatured         *bool     `json:"is_featured"`
	IsActive           *bool     `json:"is_active"`
}

func (h *MealPlanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	plan, err := h.mealPlanRepo.Update(c.Context(), int64(id), repository.UpdateMealPlanInput{
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		DurationDays:       req.DurationDays,
		Goals:              req.Goals,
		DietaryPreferences: req.DietaryPreferences,
		AllergenFree:       req.AllergenFree,
		TargetCaloriesMin:  req.TargetCaloriesMin,
		TargetCaloriesMax:  req.TargetCaloriesMax,
		Difficulty:         req.Difficulty,
		IsFeatured:         req.IsFeatured,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, plan)
}

func (h *MealPlanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.mealPlanRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Meal plan deleted"})
}

type addPlanRecipeRequest struct {
	RecipeID  int64  `json:"recipe_id" validate:"required,gt=0"`
	DayNumber int    `json:"day_number" validate:"required,gt=0"`
	MealType  string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Servings  int    `json:"servings" validate:"required,gt=0"`
	Position  int    `json:"position" validate:"gte=0"`
}

func (h *MealPlanHandler) AddRecipe(c *fiber.Ctx) error {
	planID, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req addPlanRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	entry := &models.MealPlanRecipe{
		MealPlanID: int64(planID),
		RecipeID:   req.RecipeID,
		DayNumber:  req.DayNumber,
		MealType:   req.MealType,
		Servings:   req.Servings,
		Position:   req.Position,
	}
	if err := h.planRecipeRepo.Create(c.Context(), entry); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, entry)
}

type updatePlanRecipeRequest struct {
	DayNumber *int    `json:"day_number" validate:"omitempty,gt=0"`
	MealType  *string `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Servings  *int    `json:"servings" validate:"omitempty,gt=0"`
	Position  *int    `json:"position" validate:"omitempty,gte=0"`
}

func (h *MealPlanHandler) UpdateRecipe(c *fiber.Ctx) error {
	entryID, err := c.ParamsInt("recipeId")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updatePlanRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	entry, err := h.planRecipeRepo.Update(c.Context(), int64(entryID), repository.UpdateMealPlanRecipeInput{
		DayNumber: req.DayNumber,
		MealType:  req.MealType,
		Servings:  req.Servings,
		Position:  req.Position,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, entry)
}

func (h *MealPlanHandler) RemoveRecipe(c *fiber.Ctx) error {
	entryID, err := c.ParamsInt("recipeId")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.planRecipeRepo.Delete(c.Context(), int64(entryID))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Recipe removed from plan"})
}
