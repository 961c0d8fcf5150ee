package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/middleware"
)

func principalID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(middleware.LocalPrincipalID).(int64)
	return id
}

func principalKind(c *fiber.Ctx) string {
	kind, _ := c.Locals(middleware.LocalPrincipalKind).(string)
	return kind
}

func tokenID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalTokenID).(string)
	return id
}
