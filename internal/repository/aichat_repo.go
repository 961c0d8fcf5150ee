package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type AiChatRepository struct {
	db DBTX
}

func NewAiChatRepository(db DBTX) *AiChatRepository {
	return &AiChatRepository{db: db}
}

const aiChatColumns = `id, user_id, title, is_active, created_at, updated_at`

func scanAiChat(row interface{ Scan(dest ...any) error }, chat *models.AiChat) error {
	return row.Scan(
		&chat.ID,
		&chat.UserID,
		&chat.Title,
		&chat.IsActive,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
}

func (r *AiChatRepository) Create(ctx context.Context, chat *models.AiChat) error {
	query := `
		INSERT INTO ai_chats (user_id, title, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, chat.UserID, chat.Title, chat.IsActive).
		Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt)
}

func (r *AiChatRepository) GetByID(ctx context.Context, id int64) (*models.AiChat, error) {
	query := `SELECT ` + aiChatColumns + ` FROM ai_chats WHERE id = $1`
	var chat models.AiChat
	if err := scanAiChat(r.db.QueryRow(ctx, query, id), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *AiChatRepository) ListForUser(ctx context.Context, userID int64) ([]models.AiChatSummary, error) {
	query := `
		SELECT c.id, c.user_id, c.title, c.is_active, c.created_at, c.updated_at,
			COUNT(m.id) AS message_count
		FROM ai_chats c
		LEFT JOIN ai_chat_messages m ON m.ai_chat_id = c.id
		WHERE c.user_id = $1
		GROUP BY c.id
		ORDER BY c.updated_at DESC, c.id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := make([]models.AiChatSummary, 0)
	for rows.Next() {
		var chat models.AiChatSummary
		err := rows.Scan(
			&chat.ID, &chat.UserID, &chat.Title, &chat.IsActive,
			&chat.CreatedAt, &chat.UpdatedAt, &chat.MessageCount,
		)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return chats, nil
}

type UpdateAiChatInput struct {
	Title    *string
	IsActive *bool
}

func (r *AiChatRepository) Update(ctx context.Context, id int64, input UpdateAiChatInput) (*models.AiChat, error) {
	query := `
		UPDATE ai_chats
		SET title = COALESCE($1, title),
			is_active = COALESCE($2, is_active),
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + aiChatColumns + `
	`
	var chat models.AiChat
	if err := scanAiChat(r.db.QueryRow(ctx, query, input.Title, input.IsActive, id), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *AiChatRepository) Touch(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE ai_chats SET updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *AiChatRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ai_chats WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type AiChatMessageRepository struct {
	db DBTX
}

func NewAiChatMessageRepository(db DBTX) *AiChatMessageRepository {
	return &AiChatMessageRepository{db: db}
}

const aiChatMessageColumns = `id, ai_chat_id, role, content, metadata, created_at, updated_at`

func scanAiChatMessage(row interface{ Scan(dest ...any) error }, msg *models.AiChatMessage) error {
	return row.Scan(
		&msg.ID,
		&msg.AiChatID,
		&msg.Role,
		&msg.Content,
		&msg.Metadata,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
}

func (r *AiChatMessageRepository) Create(ctx context.Context, msg *models.AiChatMessage) error {
	query := `
		INSERT INTO ai_chat_messages (ai_chat_id, role, content, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, msg.AiChatID, msg.Role, msg.Content, msg.Metadata).
		Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

// ListForChat returns the chat's messages in conversation order.
func (r *AiChatMessageRepository) ListForChat(ctx context.Context, aiChatID int64) ([]models.AiChatMessage, error) {
	query := `SELECT ` + aiChatMessageColumns + ` FROM ai_chat_messages WHERE ai_chat_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, aiChatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.AiChatMessage, 0)
	for rows.Next() {
		var msg models.AiChatMessage
		if err := scanAiChatMessage(rows, &msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListRecent returns the last limit messages, oldest first, for prompt context.
func (r *AiChatMessageRepository) ListRecent(ctx context.Context, aiChatID int64, limit int) ([]models.AiChatMessage, error) {
	query := `
		SELECT ` + aiChatMessageColumns + ` FROM (
			SELECT ` + aiChatMessageColumns + `
			FROM ai_chat_messages
			WHERE ai_chat_id = $1
			ORDER BY id DESC
			LIMIT $2
		) recent
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, aiChatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.AiChatMessage, 0)
	for rows.Next() {
		var msg models.AiChatMessage
		if err := scanAiChatMessage(rows, &msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *AiChatMessageRepository) DeleteForChat(ctx context.Context, aiChatID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ai_chat_messages WHERE ai_chat_id = $1`, aiChatID)
	return err
}
