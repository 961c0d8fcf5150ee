package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type HomeHandler struct {
	homeService *services.HomeService
}

func NewHomeHandler(homeService *services.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

func (h *HomeHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.homeService.Summary(c.Context(), principalID(c), time.Now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, summary)
}
