package models

import "time"

// AccessToken anchors an issued bearer token to a revocable row. A token is
// valid from issuance until the row is deleted (logout); no sliding expiry.
type AccessToken struct {
	ID            string    `json:"id"`
	PrincipalID   int64     `json:"principal_id"`
	PrincipalKind string    `json:"principal_kind"`
	CreatedAt     time.Time `json:"created_at"`
	LastUsedAt    time.Time `json:"last_used_at"`
}

type PasswordResetToken struct {
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
