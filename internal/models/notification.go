package models

import "time"

// NotificationData is the typed payload behind notifications.data: a deep
// link to the entity the notification is about.
type NotificationData struct {
	EntityType string `json:"entity_type,omitempty"`
	EntityID   int64  `json:"entity_id,omitempty"`
	Action     string `json:"action,omitempty"`
}

type Notification struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Type         string            `json:"type"`
	Data         *NotificationData `json:"data"`
	IsRead       bool              `json:"is_read"`
	ReadAt       *time.Time        `json:"read_at"`
	ScheduledFor *time.Time        `json:"scheduled_for"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
