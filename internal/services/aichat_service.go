package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

// fallbackReply is stored and returned when the model call fails, so a chat
// never ends on a user message without an answer.
const fallbackReply = "Sorry, I encountered an error. Please try again."

const (
	aiHistoryLimit = 20
	aiTitleMaxLen  = 60
)

type AiChatService struct {
	chatRepo    *repository.AiChatRepository
	messageRepo *repository.AiChatMessageRepository
	client      AiClient
	log         *logger.Logger
}

func NewAiChatService(
	chatRepo *repository.AiChatRepository,
	messageRepo *repository.AiChatMessageRepository,
	client AiClient,
	log *logger.Logger,
) *AiChatService {
	return &AiChatService{chatRepo: chatRepo, messageRepo: messageRepo, client: client, log: log}
}

func (s *AiChatService) getOwnedChat(ctx context.Context, userID, chatID int64) (*models.AiChat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if chat.UserID != userID {
		return nil, ErrForbidden
	}
	return chat, nil
}

func (s *AiChatService) ListChats(ctx context.Context, userID int64) ([]models.AiChatSummary, error) {
	return s.chatRepo.ListForUser(ctx, userID)
}

func (s *AiChatService) GetChat(ctx context.Context, userID, chatID int64) (*models.AiChat, []models.AiChatMessage, error) {
	chat, err := s.getOwnedChat(ctx, userID, chatID)
	if err != nil {
		return nil, nil, err
	}
	messages, err := s.messageRepo.ListForChat(ctx, chatID)
	if err != nil {
		return nil, nil, err
	}
	return chat, messages, nil
}

// SendMessage appends the user message, calls the model with the recent
// history and appends the reply. A failed model call stores a fallback reply
// instead of failing the request.
func (s *AiChatService) SendMessage(ctx context.Context, userID int64, chatID *int64, content string) (*models.AiChat, *models.AiChatMessage, error) {
	if content == "" {
		return nil, nil, ErrInvalidInput
	}

	var chat *models.AiChat
	if chatID != nil {
		owned, err := s.getOwnedChat(ctx, userID, *chatID)
		if err != nil {
			return nil, nil, err
		}
		chat = owned
	} else {
		title := deriveTitle(content)
		chat = &models.AiChat{UserID: userID, Title: &title, IsActive: true}
		if err := s.chatRepo.Create(ctx, chat); err != nil {
			return nil, nil, err
		}
	}

	userMsg := &models.AiChatMessage{
		AiChatID: chat.ID,
		Role:     models.AiRoleUser,
		Content:  content,
	}
	if err := s.messageRepo.Create(ctx, userMsg); err != nil {
		return nil, nil, err
	}

	history, err := s.messageRepo.ListRecent(ctx, chat.ID, aiHistoryLimit)
	if err != nil {
		return nil, nil, err
	}
	turns := make([]AiTurn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, AiTurn{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.client.Generate(ctx, turns)
	metadata := &models.AiMessageMetadata{Model: geminiModel}
	if err != nil {
		s.log.Error("ai reply failed", "chat_id", chat.ID, "error", err)
		reply = fallbackReply
		metadata.FinishReason = "error"
	}

	assistantMsg := &models.AiChatMessage{
		AiChatID: chat.ID,
		Role:     models.AiRoleAssistant,
		Content:  reply,
		Metadata: metadata,
	}
	if err := s.messageRepo.Create(ctx, assistantMsg); err != nil {
		return nil, nil, err
	}
	if err := s.chatRepo.Touch(ctx, chat.ID); err != nil {
		return nil, nil, err
	}
	return chat, assistantMsg, nil
}

func (s *AiChatService) RenameChat(ctx context.Context, userID, chatID int64, title string) (*models.AiChat, error) {
	if title == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.getOwnedChat(ctx, userID, chatID); err != nil {
		return nil, err
	}
	return s.chatRepo.Update(ctx, chatID, repository.UpdateAiChatInput{Title: &title})
}

func (s *AiChatService) DeleteChat(ctx context.Context, userID, chatID int64) error {
	if _, err := s.getOwnedChat(ctx, userID, chatID); err != nil {
		return err
	}
	if err := s.messageRepo.DeleteForChat(ctx, chatID); err != nil {
		return err
	}
	_, err := s.chatRepo.Delete(ctx, chatID)
	return err
}

// deriveTitle makes a chat title from the first message.
func deriveTitle(content string) string {
	if utf8.RuneCountInString(content) <= aiTitleMaxLen {
		return content
	}
	runes := []rune(content)
	return string(runes[:aiTitleMaxLen]) + "..."
}
