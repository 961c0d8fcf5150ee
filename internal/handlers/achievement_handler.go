package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type AchievementHandler struct {
	achievementRepo *repository.AchievementRepository
}

func NewAchievementHandler(achievementRepo *repository.AchievementRepository) *AchievementHandler {
	return &AchievementHandler{achievementRepo: achievementRepo}
}

func (h *AchievementHandler) List(c *fiber.Ctx) error {
	achievements, err := h.achievementRepo.ListForUser(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, achievements, len(achievements))
}

type createAchievementRequest struct {
	UserID          int64                       `json:"user_id" validate:"required,gt=0"`
	AchievementType string                      `json:"achievement_type" validate:"required,max=100"`
	AchievementName string                      `json:"achievement_name" validate:"required,max=255"`
	Description     *string                     `json:"description"`
	Icon            *string                     `json:"icon"`
	Criteria        *models.AchievementCriteria `json:"criteria"`
}

func (h *AchievementHandler) Create(c *fiber.Ctx) error {
	var req createAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	achievement := &models.UserAchievement{
		UserID:          req.UserID,
		AchievementType: req.AchievementType,
		AchievementName: req.AchievementName,
		Description:     req.Description,
		Icon:            req.Icon,
		Criteria:        req.Criteria,
	}
	if err := h.achievementRepo.Create(c.Context(), achievement); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, achievement)
}

func (h *AchievementHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.achievementRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Achievement deleted"})
}
