package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/pkg/utils"
)

type ProfileHandler struct {
	userRepo *repository.UserRepository
}

func NewProfileHandler(userRepo *repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo}
}

func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	user, err := h.userRepo.GetByID(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

type updateProfileRequest struct {
	Name             *string  `json:"name" validate:"omitempty,max=255"`
	Gender           *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	WeightUnit       *string  `json:"weight_unit" validate:"omitempty,oneof=kg lbs"`
	Height           *float64 `json:"height" validate:"omitempty,gt=0"`
	HeightUnit       *string  `json:"height_unit" validate:"omitempty,oneof=cm ft"`
	Goal             *string  `json:"goal" validate:"omitempty,oneof=lose_weight gain_weight maintain_weight build_muscle"`
	ActivityLevel    *string  `json:"activity_level" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal" validate:"omitempty,gt=0"`
	DailyStepsGoal   *int     `json:"daily_steps_goal" validate:"omitempty,gt=0"`
	DailyWaterGoal   *float64 `json:"daily_water_goal" validate:"omitempty,gt=0"`
	ProfileImage     *string  `json:"profile_image" validate:"omitempty,url"`
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	user, err := h.userRepo.Update(c.Context(), principalID(c), repository.UpdateUserInput{
		Name:             req.Name,
		Gender:           req.Gender,
		Weight:           req.Weight,
		WeightUnit:       req.WeightUnit,
		Height:           req.Height,
		HeightUnit:       req.HeightUnit,
		Goal:             req.Goal,
		ActivityLevel:    req.ActivityLevel,
		DailyCalorieGoal: req.DailyCalorieGoal,
		DailyStepsGoal:   req.DailyStepsGoal,
		DailyWaterGoal:   req.DailyWaterGoal,
		ProfileImage:     req.ProfileImage,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	user, err := h.userRepo.GetByID(c.Context(), principalID(c))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, fiber.StatusNotFound, "Not found")
		}
		return respondServiceError(c, err)
	}
	if !utils.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return respondError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := h.userRepo.UpdatePassword(c.Context(), user.ID, hash); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}

func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	deleted, err := h.userRepo.Delete(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Account deleted"})
}
