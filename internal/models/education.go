package models

import "time"

type EducationContent struct {
	ID              int64     `json:"id"`
	CreatedByAdmin  *int64    `json:"created_by_admin"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        *string   `json:"image_url"`
	Content         *string   `json:"content"`
	ContentType     string    `json:"content_type"`
	VideoURL        *string   `json:"video_url"`
	Category        string    `json:"category"`
	Tags            *[]string `json:"tags"`
	ReadTimeMinutes *int      `json:"read_time_minutes"`
	IsFeatured      bool      `json:"is_featured"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
