package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	user, token, err := h.auth.Register(c.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginAs builds a login handler for one principal kind; every credential
// table gets its own route off the same flow.
func (h *AuthHandler) loginAs(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if fields := validateStruct(req); fields != nil {
			return respondValidation(c, fields)
		}

		token, principal, err := h.auth.Login(c.Context(), kind, req.Email, req.Password)
		if err != nil {
			return respondServiceError(c, err)
		}
		return respondData(c, fiber.StatusOK, fiber.Map{"token": token, "account": principal})
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.loginAs(services.PrincipalUser)(c)
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.loginAs(services.PrincipalAdmin)(c)
}

func (h *AuthHandler) CoachLogin(c *fiber.Ctx) error {
	return h.loginAs(services.PrincipalCoach)(c)
}

func (h *AuthHandler) ClinicLogin(c *fiber.Ctx) error {
	return h.loginAs(services.PrincipalClinic)(c)
}

func (h *AuthHandler) TherapistLogin(c *fiber.Ctx) error {
	return h.loginAs(services.PrincipalTherapist)(c)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), tokenID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	if err := h.auth.LogoutAll(c.Context(), principalID(c), principalKind(c)); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Logged out everywhere"})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	if err := h.auth.ForgotPassword(c.Context(), req.Email); err != nil {
		return respondServiceError(c, err)
	}
	// Same answer whether or not the address exists.
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "If the address exists, a reset code was sent"})
}

type resetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	if err := h.auth.ResetPassword(c.Context(), services.ResetPasswordInput{
		Email:    req.Email,
		Token:    req.Token,
		Password: req.Password,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
