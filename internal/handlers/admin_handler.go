package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/pkg/utils"
)

type AdminHandler struct {
	adminRepo     *repository.AdminRepository
	userRepo      *repository.UserRepository
	dashboardRepo *repository.DashboardRepository
}

func NewAdminHandler(
	adminRepo *repository.AdminRepository,
	userRepo *repository.UserRepository,
	dashboardRepo *repository.DashboardRepository,
) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo, userRepo: userRepo, dashboardRepo: dashboardRepo}
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.dashboardRepo.Stats(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

type createAdminRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"password" validate:"required,min=8"`
	Role        string    `json:"role" validate:"required,oneof=super_admin admin editor"`
	Permissions *[]string `json:"permissions"`
	IsActive    *bool     `json:"is_active"`
}

func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	admin := &models.AdminUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Permissions:  req.Permissions,
		IsActive:     active,
	}
	if err := h.adminRepo.Create(c.Context(), admin); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, admin)
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	admins, total, err := h.adminRepo.List(c.Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, admins, len(admins), buildPaginationMeta(page, limit, total))
}

func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	admin, err := h.adminRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, admin)
}

type updateAdminRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=255"`
	Role        *string   `json:"role" validate:"omitempty,oneof=super_admin admin editor"`
	Permissions *[]string `json:"permissions"`
	IsActive    *bool     `json:"is_active"`
}

func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	admin, err := h.adminRepo.Update(c.Context(), int64(id), repository.UpdateAdminInput{
		Name:        req.Name,
		Role:        req.Role,
		Permissions: req.Permissions,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, admin)
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}
	// An admin cannot remove their own account.
	if int64(id) == principalID(c) {
		return respondError(c, fiber.StatusConflict, "Cannot delete your own account")
	}

	deleted, err := h.adminRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Admin deleted"})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	users, total, err := h.userRepo.List(c.Context(), repository.UserListFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, users, len(users), buildPaginationMeta(page, limit, total))
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	user, err := h.userRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.userRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "User deleted"})
}
