package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type AiChatHandler struct {
	aiChatService *services.AiChatService
}

func NewAiChatHandler(aiChatService *services.AiChatService) *AiChatHandler {
	return &AiChatHandler{aiChatService: aiChatService}
}

func (h *AiChatHandler) List(c *fiber.Ctx) error {
	chats, err := h.aiChatService.ListChats(c.Context(), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, chats, len(chats))
}

func (h *AiChatHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	chat, messages, err := h.aiChatService.GetChat(c.Context(), principalID(c), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"chat": chat, "messages": messages})
}

type aiMessageRequest struct {
	AiChatID *int64 `json:"ai_chat_id" validate:"omitempty,gt=0"`
	Message  string `json:"message" validate:"required,max=5000"`
}

// SendMessage answers a user message; omitting ai_chat_id starts a new chat.
func (h *AiChatHandler) SendMessage(c *fiber.Ctx) error {
	var req aiMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	chat, reply, err := h.aiChatService.SendMessage(c.Context(), principalID(c), req.AiChatID, req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, fiber.Map{"chat": chat, "reply": reply})
}

type renameAiChatRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

func (h *AiChatHandler) Rename(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req renameAiChatRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	chat, err := h.aiChatService.RenameChat(c.Context(), principalID(c), int64(id), req.Title)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, chat)
}

func (h *AiChatHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.aiChatService.DeleteChat(c.Context(), principalID(c), int64(id)); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Chat deleted"})
}
