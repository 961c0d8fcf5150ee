package models

import "time"

// UserSetting is one free-form key/value pair owned by a user, for client
// preferences the backend does not interpret.
type UserSetting struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
