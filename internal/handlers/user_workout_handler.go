package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type UserWorkoutHandler struct {
	workoutService *services.WorkoutService
}

func NewUserWorkoutHandler(workoutService *services.WorkoutService) *UserWorkoutHandler {
	return &UserWorkoutHandler{workoutService: workoutService}
}

// Start opens a session, or returns the one already in flight. The status
// code distinguishes the two: 201 for a fresh session, 200 for an existing.
func (h *UserWorkoutHandler) Start(c *fiber.Ctx) error {
	workoutID, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	session, created, err := h.workoutService.StartWorkout(c.Context(), principalID(c), int64(workoutID))
	if err != nil {
		return respondServiceError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return respondData(c, status, session)
}

func (h *UserWorkoutHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	sessions, total, err := h.workoutService.ListSessions(c.Context(), principalID(c), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, sessions, len(sessions), buildPaginationMeta(page, limit, total))
}

func (h *UserWorkoutHandler) Get(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	session, err := h.workoutService.GetSession(c.Context(), principalID(c), int64(sessionID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}

type updateProgressRequest struct {
	ExerciseProgress models.ExerciseProgress `json:"exercise_progress" validate:"required"`
}

func (h *UserWorkoutHandler) UpdateProgress(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.ExerciseProgress) == 0 {
		return respondValidation(c, map[string]string{"exercise_progress": "is required"})
	}

	session, err := h.workoutService.UpdateProgress(c.Context(), principalID(c), int64(sessionID), req.ExerciseProgress)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}

type completeSessionRequest struct {
	CaloriesBurned *int    `json:"calories_burned" validate:"omitempty,gte=0"`
	Rating         *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Notes          *string `json:"notes"`
}

func (h *UserWorkoutHandler) Complete(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req completeSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	session, err := h.workoutService.CompleteSession(c.Context(), principalID(c), int64(sessionID), services.CompleteSessionInput{
		CaloriesBurned: req.CaloriesBurned,
		Rating:         req.Rating,
		Notes:          req.Notes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, session)
}
