package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type RecipeHandler struct {
	recipeRepo    *repository.RecipeRepository
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeRepo *repository.RecipeRepository, recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeRepo: recipeRepo, recipeService: recipeService}
}

func (h *RecipeHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	filter := repository.RecipeListFilter{
		MealType:   optionalQuery(c, "meal_type"),
		Difficulty: optionalQuery(c, "difficulty"),
		Featured:   optionalBoolQuery(c, "featured"),
		Search:     c.Query("search"),
		ActiveOnly: principalKind(c) != services.PrincipalAdmin,
		Limit:      limit,
		Offset:     offset,
	}

	var callerID *int64
	if principalKind(c) == services.PrincipalUser {
		id := principalID(c)
		callerID = &id
	}

	recipes, total, err := h.recipeService.Search(c.Context(), callerID, filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, recipes, len(recipes), buildPaginationMeta(page, limit, total))
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	recipe, err := h.recipeRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !recipe.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, recipe)
}

// Nutrition returns the per-serving nutrition facts for the detail screen.
func (h *RecipeHandler) Nutrition(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	recipe, err := h.recipeRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !recipe.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"recipe_id":            recipe.ID,
		"name":                 recipe.Name,
		"servings":             recipe.Servings,
		"calories_per_serving": recipe.CaloriesPerServing,
		"protein_per_serving":  recipe.ProteinPerServing,
		"carbs_per_serving":    recipe.CarbsPerServing,
		"fat_per_serving":      recipe.FatPerServing,
		"fiber_per_serving":    recipe.FiberPerServing,
		"sugar_per_serving":    recipe.SugarPerServing,
	})
}

func (h *RecipeHandler) RecipeOfTheDay(c *fiber.Ctx) error {
	recipe, err := h.recipeService.RecipeOfTheDay(c.Context(), time.Now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, recipe)
}

func (h *RecipeHandler) Recommendations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	recipes, err := h.recipeService.Recommend(c.Context(), principalID(c), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, recipes, len(recipes))
}

type createRecipeRequest struct {
	Name               string    `json:"name" validate:"required,max=255"`
	Description        string    `json:"description"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	MealType           string    `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	PrepTimeMinutes    *int      `json:"prep_time_minutes" validate:"omitempty,gte=0"`
	CookTimeMinutes    *int      `json:"cook_time_minutes" validate:"omitempty,gte=0"`
	Servings           int       `json:"servings" validate:"required,gt=0"`
	CaloriesPerServing int       `json:"calories_per_serving" validate:"required,gt=0"`
	ProteinPerServing  *float64  `json:"protein_per_serving" validate:"omitempty,gte=0"`
	CarbsPerServing    *float64  `json:"carbs_per_serving" validate:"omitempty,gte=0"`
	FatPerServing      *float64  `json:"fat_per_serving" validate:"omitempty,gte=0"`
	FiberPerServing    *float64  `json:"fiber_per_serving" validate:"omitempty,gte=0"`
	SugarPerServing    *float64  `json:"sugar_per_serving" validate:"omitempty,gte=0"`
	Ingredients        string    `json:"ingredients" validate:"required"`
	Instructions       string    `json:"instructions" validate:"required"`
	DietaryTags        *[]string `json:"dietary_tags"`
	AllergenInfo       *[]string `json:"allergen_info"`
	Difficulty         string    `json:"difficulty" validate:"required,oneof=easy medium hard"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           *bool     `json:"is_active"`
}

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var req createRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	adminID := principalID(c)
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	recipe := &models.Recipe{
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		MealType:           req.MealType,
		PrepTimeMinutes:    req.PrepTimeMinutes,
		CookTimeMinutes:    req.CookTimeMinutes,
		Servings:           req.Servings,
		CaloriesPerServing: req.CaloriesPerServing,
		ProteinPerServing:  req.ProteinPerServing,
		CarbsPerServing:    req.CarbsPerServing,
		FatPerServing:      req.FatPerServing,
		FiberPerServing:    req.FiberPerServing,
		SugarPerServing:    req.SugarPerServing,
		Ingredients:        req.Ingredients,
		Instructions:       req.Instructions,
		DietaryTags:        req.DietaryTags,
		AllergenInfo:       req.AllergenInfo,
		Difficulty:         req.Difficulty,
		IsFeatured:         req.IsFeatured,
		IsActive:           active,
		CreatedByAdmin:     &adminID,
	}
	if err := h.recipeRepo.Create(c.Context(), recipe); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, recipe)
}

type updateRecipeRequest struct {
	Name               *string   `json:"name" validate:"omitempty,max=255"`
	Description        *string   `json:"description"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	MealType           *string   `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	PrepTimeMinutes    *int      `json:"prep_time_minutes" validate:"omitempty,gte=0"`
	CookTimeMinutes    *int      `json:"cook_time_minutes" validate:"omitempty,gte=0"`
	Servings           *int      `json:"servings" validate:"omitempty,gt=0"`
	CaloriesPerServing *int      `json:"calories_per_serving" validate:"omitempty,gt=0"`
	ProteinPerServing  *float64  `json:"protein_per_serving" validate:"omitempty,gte=0"`
	CarbsPerServing    *float64  `json:"carbs_per_serving" validate:"omitempty,gte=0"`
	FatPerServing      *float64  `json:"fat_per_serving" validate:"omitempty,gte=0"`
	FiberPerServing    *float64  `json:"fiber_per_serving" validate:"omitempty,gte=0"`
	SugarPerServing    *float64  `json:"sugar_per_serving" validate:"omitempty,gte=0"`
	Ingredients        *string   `json:"ingredients"`
	Instructions       *string   `json:"instructions"`
	DietaryTags        *[]string `json:"dietary_tags"`
	AllergenInfo       *[]string `json:"allergen_info"`
	Difficulty         *string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	IsFeatured         *bool     `json:"is_featured"`
	IsActive           *bool     `json:"is_active"`
}

func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	recipe, err := h.recipeRepo.Update(c.Context(), int64(id), repository.UpdateRecipeInput{
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		MealType:           req.MealType,
		PrepTimeMinutes:    req.PrepTimeMinutes,
		CookTimeMinutes:    req.CookTimeMinutes,
		Servings:           req.Servings,
		CaloriesPerServing: req.CaloriesPerServing,
		ProteinPerServing:  req.ProteinPerServing,
		CarbsPerServing:    req.CarbsPerServing,
		FatPerServing:      req.FatPerServing,
		FiberPerServing:    req.FiberPerServing,
		SugarPerServing:    req.SugarPerServing,
		Ingredients:        req.Ingredients,
		Instructions:       req.Instructions,
		DietaryTags:        req.DietaryTags,
		AllergenInfo:       req.AllergenInfo,
		Difficulty:         req.Difficulty,
		IsFeatured:         req.IsFeatured,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.recipeRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Recipe deleted"})
}
