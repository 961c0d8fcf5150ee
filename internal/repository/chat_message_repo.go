package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type ChatMessageRepository struct {
	db DBTX
}

func NewChatMessageRepository(db DBTX) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

const chatMessageColumns = `id, chat_id, sender_type, message, attachments, is_read, read_at,
	created_at, updated_at`

func scanChatMessage(row interface{ Scan(dest ...any) error }, msg *models.ChatMessage) error {
	return row.Scan(
		&msg.ID,
		&msg.ChatID,
		&msg.SenderType,
		&msg.Message,
		&msg.Attachments,
		&msg.IsRead,
		&msg.ReadAt,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
}

func (r *ChatMessageRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (chat_id, sender_type, message, attachments)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, msg.ChatID, msg.SenderType, msg.Message, msg.Attachments).
		Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt, &msg.UpdatedAt)
}

func (r *ChatMessageRepository) GetByID(ctx context.Context, id int64) (*models.ChatMessage, error) {
	query := `SELECT ` + chatMessageColumns + ` FROM chat_messages WHERE id = $1`
	var msg models.ChatMessage
	if err := scanChatMessage(r.db.QueryRow(ctx, query, id), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *ChatMessageRepository) ListForChat(ctx context.Context, chatID int64, limit, offset int) ([]models.ChatMessage, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_messages WHERE chat_id = $1`, chatID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + chatMessageColumns + `
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, chatID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var msg models.ChatMessage
		if err := scanChatMessage(rows, &msg); err != nil {
			return nil, 0, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// MarkRead marks every unread message in the chat not sent by senderType.
// Readers only mark the other side's messages.
func (r *ChatMessageRepository) MarkRead(ctx context.Context, chatID int64, senderType string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE chat_messages
		SET is_read = TRUE, read_at = NOW(), updated_at = NOW()
		WHERE chat_id = $1 AND sender_type <> $2 AND NOT is_read
	`, chatID, senderType)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *ChatMessageRepository) CountUnread(ctx context.Context, chatID int64, senderType string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE chat_id = $1 AND sender_type <> $2 AND NOT is_read`,
		chatID, senderType,
	).Scan(&count)
	return count, err
}

func (r *ChatMessageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM chat_messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
