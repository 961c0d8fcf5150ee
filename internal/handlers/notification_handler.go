package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type NotificationHandler struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationHandler(notificationRepo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	notifications, total, err := h.notificationRepo.ListForUser(c.Context(), principalID(c), repository.NotificationListFilter{
		UnreadOnly: c.QueryBool("unread", false),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, notifications, len(notifications), buildPaginationMeta(page, limit, total))
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationRepo.CountUnread(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	notification, err := h.notificationRepo.MarkRead(c.Context(), int64(id), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	marked, err := h.notificationRepo.MarkAllRead(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"marked_read": marked})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.notificationRepo.Delete(c.Context(), int64(id), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Notification deleted"})
}

type createNotificationRequest struct {
	UserID       int64                    `json:"user_id" validate:"required,gt=0"`
	Title        string                   `json:"title" validate:"required,max=255"`
	Message      string                   `json:"message" validate:"required"`
	Type         string                   `json:"type" validate:"required,oneof=reminder achievement system chat"`
	Data         *models.NotificationData `json:"data"`
	ScheduledFor *time.Time               `json:"scheduled_for"`
}

// Create is admin-only; users receive notifications, they do not mint them.
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req createNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	notification := &models.Notification{
		UserID:       req.UserID,
		Title:        req.Title,
		Message:      req.Message,
		Type:         req.Type,
		Data:         req.Data,
		ScheduledFor: req.ScheduledFor,
	}
	if err := h.notificationRepo.Create(c.Context(), notification); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, notification)
}
