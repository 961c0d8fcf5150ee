package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type ChatService struct {
	chatRepo      *repository.ChatRepository
	messageRepo   *repository.ChatMessageRepository
	coachRepo     *repository.CoachRepository
	clinicRepo    *repository.ClinicRepository
	therapistRepo *repository.TherapistRepository
}

func NewChatService(
	chatRepo *repository.ChatRepository,
	messageRepo *repository.ChatMessageRepository,
	coachRepo *repository.CoachRepository,
	clinicRepo *repository.ClinicRepository,
	therapistRepo *repository.TherapistRepository,
) *ChatService {
	return &ChatService{
		chatRepo:      chatRepo,
		messageRepo:   messageRepo,
		coachRepo:     coachRepo,
		clinicRepo:    clinicRepo,
		therapistRepo: therapistRepo,
	}
}

// professionalExists checks the table the (type, id) pair points at and that
// the row is still active.
func (s *ChatService) professionalExists(ctx context.Context, professionalType string, professionalID int64) (bool, error) {
	switch professionalType {
	case models.ProfessionalTypeCoach:
		coach, err := s.coachRepo.GetByID(ctx, professionalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, nil
			}
			return false, err
		}
		return coach.IsActive, nil
	case models.ProfessionalTypeClinic:
		clinic, err := s.clinicRepo.GetByID(ctx, professionalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, nil
			}
			return false, err
		}
		return clinic.IsActive, nil
	case models.ProfessionalTypeTherapist:
		therapist, err := s.therapistRepo.GetByID(ctx, professionalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, nil
			}
			return false, err
		}
		return therapist.IsActive, nil
	default:
		return false, ErrInvalidInput
	}
}

// StartChat opens a chat between the user and a professional, reusing an
// existing one if the pair already has it.
func (s *ChatService) StartChat(ctx context.Context, userID int64, professionalType string, professionalID int64, title *string) (*models.Chat, bool, error) {
	ok, err := s.professionalExists(ctx, professionalType, professionalID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, ErrNotFound
	}

	existing, err := s.chatRepo.GetByParticipants(ctx, userID, professionalType, professionalID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	chat := &models.Chat{
		UserID:           userID,
		ProfessionalType: professionalType,
		ProfessionalID:   professionalID,
		ChatTitle:        title,
		IsActive:         true,
	}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, false, err
	}
	return chat, true, nil
}

// canAccessChat decides whether the principal is a side of the chat. Users
// own their side; a professional matches when both kind and id line up.
func canAccessChat(kind string, principalID int64, chat *models.Chat) bool {
	if kind == PrincipalUser {
		return chat.UserID == principalID
	}
	return chat.ProfessionalType == kind && chat.ProfessionalID == principalID
}

// senderSide maps a principal kind to the sender_type stored on messages.
func senderSide(kind string) string {
	if kind == PrincipalUser {
		return models.SenderTypeUser
	}
	return models.SenderTypeProfessional
}

func (s *ChatService) GetChat(ctx context.Context, kind string, principalID, chatID int64) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canAccessChat(kind, principalID, chat) {
		return nil, ErrForbidden
	}
	return chat, nil
}

func (s *ChatService) ListChats(ctx context.Context, kind string, principalID int64) ([]models.Chat, error) {
	if kind == PrincipalUser {
		return s.chatRepo.ListForUser(ctx, principalID)
	}
	return s.chatRepo.ListForProfessional(ctx, kind, principalID)
}

type SendMessageInput struct {
	Message     string
	Attachments *[]string
}

func (s *ChatService) SendMessage(ctx context.Context, kind string, principalID, chatID int64, input SendMessageInput) (*models.ChatMessage, error) {
	if input.Message == "" {
		return nil, ErrInvalidInput
	}

	chat, err := s.GetChat(ctx, kind, principalID, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.IsActive {
		return nil, ErrConflict
	}

	msg := &models.ChatMessage{
		ChatID:      chatID,
		SenderType:  senderSide(kind),
		Message:     input.Message,
		Attachments: input.Attachments,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.chatRepo.TouchLastMessage(ctx, chatID); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns a page of the chat's history and marks the other
// side's messages read for the caller.
func (s *ChatService) ListMessages(ctx context.Context, kind string, principalID, chatID int64, limit, offset int) ([]models.ChatMessage, int, error) {
	if _, err := s.GetChat(ctx, kind, principalID, chatID); err != nil {
		return nil, 0, err
	}

	messages, total, err := s.messageRepo.ListForChat(ctx, chatID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.messageRepo.MarkRead(ctx, chatID, senderSide(kind)); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (s *ChatService) MarkRead(ctx context.Context, kind string, principalID, chatID int64) (int64, error) {
	if _, err := s.GetChat(ctx, kind, principalID, chatID); err != nil {
		return 0, err
	}
	return s.messageRepo.MarkRead(ctx, chatID, senderSide(kind))
}

func (s *ChatService) CloseChat(ctx context.Context, kind string, principalID, chatID int64) (*models.Chat, error) {
	if _, err := s.GetChat(ctx, kind, principalID, chatID); err != nil {
		return nil, err
	}
	inactive := false
	return s.chatRepo.Update(ctx, chatID, repository.UpdateChatInput{IsActive: &inactive})
}
