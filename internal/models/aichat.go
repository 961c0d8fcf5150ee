package models

import "time"

type AiChat struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     *string   `json:"title"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AiRoleUser      = "user"
	AiRoleAssistant = "assistant"
	AiRoleSystem    = "system"
)

// AiMessageMetadata is the typed shape of ai_chat_messages.metadata.
type AiMessageMetadata struct {
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	TokensUsed   int    `json:"tokens_used,omitempty"`
}

type AiChatMessage struct {
	ID        int64              `json:"id"`
	AiChatID  int64              `json:"ai_chat_id"`
	Role      string             `json:"role"`
	Content   string             `json:"content"`
	Metadata  *AiMessageMetadata `json:"metadata"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type AiChatSummary struct {
	AiChat
	MessageCount int `json:"message_count"`
}
