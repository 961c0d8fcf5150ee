package models

import "time"

// Chat links a user with one professional. The professional is referenced by
// a (type, id) pair because coaches, clinics and therapists live in three
// disjoint tables; no single foreign key can hold the target.
type Chat struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	ProfessionalType string     `json:"professional_type"`
	ProfessionalID   int64      `json:"professional_id"`
	ChatTitle        *string    `json:"chat_title"`
	IsActive         bool       `json:"is_active"`
	LastMessageAt    *time.Time `json:"last_message_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

const (
	SenderTypeUser         = "user"
	SenderTypeProfessional = "professional"
)

type ChatMessage struct {
	ID          int64      `json:"id"`
	ChatID      int64      `json:"chat_id"`
	SenderType  string     `json:"sender_type"`
	Message     string     `json:"message"`
	Attachments *[]string  `json:"attachments"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
