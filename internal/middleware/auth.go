package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

const (
	LocalPrincipalID   = "principal_id"
	LocalPrincipalKind = "principal_kind"
	LocalTokenID       = "token_id"
)

// AuthRequired validates the bearer token and requires its anchoring row to
// still exist, so logged-out tokens stop working immediately.
func AuthRequired(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing bearer token"})
		}

		token, err := auth.Authenticate(c.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or revoked token"})
		}

		c.Locals(LocalPrincipalID, token.PrincipalID)
		c.Locals(LocalPrincipalKind, token.PrincipalKind)
		c.Locals(LocalTokenID, token.ID)
		return c.Next()
	}
}

// RequireKind gates a route group to the given principal kinds. It must run
// after AuthRequired.
func RequireKind(kinds ...string) fiber.Handler {
	allowed := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		allowed[kind] = true
	}
	return func(c *fiber.Ctx) error {
		kind, _ := c.Locals(LocalPrincipalKind).(string)
		if !allowed[kind] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return RequireKind(services.PrincipalAdmin)
}
