package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type startChatRequest struct {
	ProfessionalType string  `json:"professional_type" validate:"required,oneof=coach clinic therapist"`
	ProfessionalID   int64   `json:"professional_id" validate:"required,gt=0"`
	ChatTitle        *string `json:"chat_title" validate:"omitempty,max=255"`
}

func (h *ChatHandler) Start(c *fiber.Ctx) error {
	var req startChatRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	chat, created, err := h.chatService.StartChat(c.Context(), principalID(c), req.ProfessionalType, req.ProfessionalID, req.ChatTitle)
	if err != nil {
		return respondServiceError(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return respondData(c, status, chat)
}

func (h *ChatHandler) List(c *fiber.Ctx) error {
	chats, err := h.chatService.ListChats(c.Context(), principalKind(c), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, chats, len(chats))
}

func (h *ChatHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	chat, err := h.chatService.GetChat(c.Context(), principalKind(c), principalID(c), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, chat)
}

func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}
	page, limit, offset := parsePage(c)

	messages, total, err := h.chatService.ListMessages(c.Context(), principalKind(c), principalID(c), int64(id), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, messages, len(messages), buildPaginationMeta(page, limit, total))
}

type sendMessageRequest struct {
	Message     string    `json:"message" validate:"required,max=5000"`
	Attachments *[]string `json:"attachments"`
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	msg, err := h.chatService.SendMessage(c.Context(), principalKind(c), principalID(c), int64(id), services.SendMessageInput{
		Message:     req.Message,
		Attachments: req.Attachments,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, msg)
}

func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	marked, err := h.chatService.MarkRead(c.Context(), principalKind(c), principalID(c), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"marked_read": marked})
}

func (h *ChatHandler) Close(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	chat, err := h.chatService.CloseChat(c.Context(), principalKind(c), principalID(c), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, chat)
}
