package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

// Every endpoint answers in one of two shapes: {"data": ...} on success,
// {"error": ...} on failure. Lists add "count" and optionally "meta".

func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

func respondList(c *fiber.Ctx, data any, count int) error {
	return c.JSON(fiber.Map{"data": data, "count": count})
}

func respondPage(c *fiber.Ctx, data any, count int, meta models.PaginationMeta) error {
	return c.JSON(fiber.Map{"data": data, "count": count, "meta": meta})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func respondValidation(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": fields,
	})
}

// respondServiceError maps the service error taxonomy, plus the two database
// errors that leak through plain repository calls, onto statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return respondError(c, fiber.StatusUnprocessableEntity, "Invalid input")
	case errors.Is(err, services.ErrInvalidCredentials):
		return respondError(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrAccountDisabled):
		return respondError(c, fiber.StatusForbidden, "Account is disabled")
	case errors.Is(err, services.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		return respondError(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrConflict):
		return respondError(c, fiber.StatusConflict, "Conflict")
	case errors.Is(err, services.ErrTokenExpired):
		return respondError(c, fiber.StatusUnauthorized, "Token expired")
	case errors.Is(err, services.ErrUpstream):
		return respondError(c, fiber.StatusServiceUnavailable, "Upstream service unavailable")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return respondError(c, fiber.StatusConflict, "Already exists")
	}
	return respondError(c, fiber.StatusInternalServerError, "Internal server error")
}
