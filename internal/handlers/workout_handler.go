package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type WorkoutHandler struct {
	workoutRepo    *repository.WorkoutRepository
	exerciseRepo   *repository.ExerciseRepository
	workoutService *services.WorkoutService
}

func NewWorkoutHandler(
	workoutRepo *repository.WorkoutRepository,
	exerciseRepo *repository.ExerciseRepository,
	workoutService *services.WorkoutService,
) *WorkoutHandler {
	return &WorkoutHandler{
		workoutRepo:    workoutRepo,
		exerciseRepo:   exerciseRepo,
		workoutService: workoutService,
	}
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	return &value
}

func optionalBoolQuery(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}

// List serves the catalog. Non-admin callers only ever see active workouts.
func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	filter := repository.WorkoutListFilter{
		Difficulty: optionalQuery(c, "difficulty"),
		Type:       optionalQuery(c, "type"),
		Featured:   optionalBoolQuery(c, "featured"),
		Search:     c.Query("search"),
		ActiveOnly: principalKind(c) != services.PrincipalAdmin,
		Limit:      limit,
		Offset:     offset,
	}

	workouts, total, err := h.workoutRepo.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, workouts, len(workouts), buildPaginationMeta(page, limit, total))
}

func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	detail, err := h.workoutService.GetWorkout(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !detail.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, detail)
}

type createWorkoutRequest struct {
	Name               string    `json:"name" validate:"required,max=255"`
	Description        string    `json:"description" validate:"required"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	Difficulty         string    `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Type               string    `json:"type" validate:"required,oneof=strength cardio flexibility balance mixed"`
	DurationMinutes    *int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	CaloriesPerSession *int      `json:"calories_per_session" validate:"omitempty,gt=0"`
	EquipmentNeeded    *[]string `json:"equipment_needed"`
	Tags               *[]string `json:"tags"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           *bool     `json:"is_active"`
}

func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	var req createWorkoutRequest
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
	workout := &models.Workout{
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		Difficulty:         req.Difficulty,
		Type:               req.Type,
		DurationMinutes:    req.DurationMinutes,
		CaloriesPerSession: req.CaloriesPerSession,
		EquipmentNeeded:    req.EquipmentNeeded,
		Tags:               req.Tags,
		IsFeatured:         req.IsFeatured,
		IsActive:           active,
		CreatedByAdmin:     &adminID,
	}
	if err := h.workoutRepo.Create(c.Context(), workout); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, workout)
}

type updateWorkoutRequest struct {
	Name               *string   `json:"name" validate:"omitempty,max=255"`
	Description        *string   `json:"description"`
	ImageURL           *string   `json:"image_url" validate:"omitempty,url"`
	Difficulty         *string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Type               *string   `json:"type" validate:"omitempty,oneof=strength cardio flexibility balance mixed"`
	DurationMinutes    *int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	CaloriesPerSession *int      `json:"calories_per_session" validate:"omitempty,gt=0"`
	EquipmentNeeded    *[]string `json:"equipment_needed"`
	Tags               *[]string `json:"tags"`
	IsFeatured         *bool     `json:"is_featured"`
	IsActive           *bool     `json:"is_active"`
}

func (h *WorkoutHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	workout, err := h.workoutRepo.Update(c.Context(), int64(id), repository.UpdateWorkoutInput{
		Name:               req.Name,
		Description:        req.Description,
		ImageURL:           req.ImageURL,
		Difficulty:         req.Difficulty,
		Type:               req.Type,
		DurationMinutes:    req.DurationMinutes,
		CaloriesPerSession: req.CaloriesPerSession,
		EquipmentNeeded:    req.EquipmentNeeded,
		Tags:               req.Tags,
		IsFeatured:         req.IsFeatured,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, workout)
}

func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.workoutRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Workout deleted"})
}

func (h *WorkoutHandler) ListExercises(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	exercises, err := h.exerciseRepo.ListByWorkout(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, exercises, len(exercises))
}

type createExerciseRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Instructions    *string `json:"instructions"`
	VideoURL        *string `json:"video_url" validate:"omitempty,url"`
	ImageURL        *string `json:"image_url" validate:"omitempty,url"`
	DurationSeconds *int    `json:"duration_seconds" validate:"omitempty,gt=0"`
	Repetitions     *int    `json:"repetitions" validate:"omitempty,gt=0"`
	Sets            *int    `json:"sets" validate:"omitempty,gt=0"`
	RestSeconds     *int    `json:"rest_seconds" validate:"omitempty,gte=0"`
	Position        int     `json:"position" validate:"gte=0"`
}

func (h *WorkoutHandler) CreateExercise(c *fiber.Ctx) error {
	workoutID, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req createExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	exercise := &models.Exercise{
		WorkoutID:       int64(workoutID),
		Name:            req.Name,
		Instructions:    req.Instructions,
		VideoURL:        req.VideoURL,
		ImageURL:        req.ImageURL,
		DurationSeconds: req.DurationSeconds,
		Repetitions:     req.Repetitions,
		Sets:            req.Sets,
		RestSeconds:     req.RestSeconds,
		Position:        req.Position,
	}
	if err := h.exerciseRepo.Create(c.Context(), exercise); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, exercise)
}

type updateExerciseRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=255"`
	Instructions    *string `json:"instructions"`
	VideoURL        *string `json:"video_url" validate:"omitempty,url"`
	ImageURL        *string `json:"image_url" validate:"omitempty,url"`
	DurationSeconds *int    `json:"duration_seconds" validate:"omitempty,gt=0"`
	Repetitions     *int    `json:"repetitions" validate:"omitempty,gt=0"`
	Sets            *int    `json:"sets" validate:"omitempty,gt=0"`
	RestSeconds     *int    `json:"rest_seconds" validate:"omitempty,gte=0"`
	Position        *int    `json:"position" validate:"omitempty,gte=0"`
}

func (h *WorkoutHandler) UpdateExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("exerciseId")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	exercise, err := h.exerciseRepo.Update(c.Context(), int64(id), repository.UpdateExerciseInput{
		Name:            req.Name,
		Instructions:    req.Instructions,
		VideoURL:        req.VideoURL,
		ImageURL:        req.ImageURL,
		DurationSeconds: req.DurationSeconds,
		Repetitions:     req.Repetitions,
		Sets:            req.Sets,
		RestSeconds:     req.RestSeconds,
		Position:        req.Position,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, exercise)
}

func (h *WorkoutHandler) DeleteExercise(c *fiber.Ctx) error {
	id, err := c.ParamsInt("exerciseId")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.exerciseRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Exercise deleted"})
}
