package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type SettingHandler struct {
	settingRepo *repository.SettingRepository
}

func NewSettingHandler(settingRepo *repository.SettingRepository) *SettingHandler {
	return &SettingHandler{settingRepo: settingRepo}
}

func (h *SettingHandler) List(c *fiber.Ctx) error {
	settings, err := h.settingRepo.ListForUser(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, settings, len(settings))
}

func (h *SettingHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	setting, err := h.settingRepo.GetByID(c.Context(), int64(id), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, setting)
}

type createSettingRequest struct {
	Key   string `json:"key" validate:"required,max=255"`
	Value string `json:"value" validate:"required"`
}

func (h *SettingHandler) Create(c *fiber.Ctx) error {
	var req createSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	setting := &models.UserSetting{
		UserID: principalID(c),
		Key:    req.Key,
		Value:  req.Value,
	}
	if err := h.settingRepo.Create(c.Context(), setting); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, setting)
}

type updateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

func (h *SettingHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	setting, err := h.settingRepo.UpdateValue(c.Context(), int64(id), principalID(c), req.Value)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, setting)
}

func (h *SettingHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.settingRepo.Delete(c.Context(), int64(id), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Setting deleted"})
}
