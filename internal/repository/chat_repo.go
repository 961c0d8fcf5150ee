package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type ChatRepository struct {
	db DBTX
}

func NewChatRepository(db DBTX) *ChatRepository {
	return &ChatRepository{db: db}
}

const chatColumns = `id, user_id, professional_type, professional_id, chat_title, is_active,
	last_message_at, created_at, updated_at`

func scanChat(row interface{ Scan(dest ...any) error }, chat *models.Chat) error {
	return row.Scan(
		&chat.ID,
		&chat.UserID,
		&chat.ProfessionalType,
		&chat.ProfessionalID,
		&chat.ChatTitle,
		&chat.IsActive,
		&chat.LastMessageAt,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
}

func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	query := `
		INSERT INTO chats (user_id, professional_type, professional_id, chat_title, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		chat.UserID, chat.ProfessionalType, chat.ProfessionalID, chat.ChatTitle, chat.IsActive,
	).Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt)
}

func (r *ChatRepository) GetByID(ctx context.Context, id int64) (*models.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE id = $1`
	var chat models.Chat
	if err := scanChat(r.db.QueryRow(ctx, query, id), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetByParticipants finds an existing chat between a user and a professional.
func (r *ChatRepository) GetByParticipants(ctx context.Context, userID int64, professionalType string, professionalID int64) (*models.Chat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE user_id = $1 AND professional_type = $2 AND professional_id = $3
		ORDER BY id DESC
		LIMIT 1
	`
	var chat models.Chat
	if err := scanChat(r.db.QueryRow(ctx, query, userID, professionalType, professionalID), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) ListForUser(ctx context.Context, userID int64) ([]models.Chat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE user_id = $1
		ORDER BY last_message_at DESC NULLS LAST, id DESC
	`
	return r.list(ctx, query, userID)
}

func (r *ChatRepository) ListForProfessional(ctx context.Context, professionalType string, professionalID int64) ([]models.Chat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE professional_type = $1 AND professional_id = $2
		ORDER BY last_message_at DESC NULLS LAST, id DESC
	`
	return r.list(ctx, query, professionalType, professionalID)
}

func (r *ChatRepository) list(ctx context.Context, query string, args ...any) ([]models.Chat, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := make([]models.Chat, 0)
	for rows.Next() {
		var chat models.Chat
		if err := scanChat(rows, &chat); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *ChatRepository) TouchLastMessage(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE chats SET last_message_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}

type UpdateChatInput struct {
	ChatTitle *string
	IsActive  *bool
}

func (r *ChatRepository) Update(ctx context.Context, id int64, input UpdateChatInput) (*models.Chat, error) {
	query := `
		UPDATE chats
		SET chat_title = COALESCE($1, chat_title),
			is_active = COALESCE($2, is_active),
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + chatColumns + `
	`
	var chat models.Chat
	if err := scanChat(r.db.QueryRow(ctx, query, input.ChatTitle, input.IsActive, id), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM chats WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
