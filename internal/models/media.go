package models

import "time"

type Image struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"`
	URL         string    `json:"url"`
	MimeType    string    `json:"mime_type"`
	FileSize    int64     `json:"file_size"`
	Width       *int      `json:"width"`
	Height      *int      `json:"height"`
	Category    string    `json:"category"`
	Tags        *[]string `json:"tags"`
	IsActive    bool      `json:"is_active"`
	UploadedBy  *int64    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Video struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Filename      string    `json:"filename"`
	Path          string    `json:"path"`
	URL           string    `json:"url"`
	MimeType      string    `json:"mime_type"`
	FileSize      int64     `json:"file_size"`
	Duration      *int      `json:"duration"`
	ThumbnailPath *string   `json:"thumbnail_path"`
	ThumbnailURL  *string   `json:"thumbnail_url"`
	Category      string    `json:"category"`
	Tags          *[]string `json:"tags"`
	IsActive      bool      `json:"is_active"`
	UploadedBy    *int64    `json:"uploaded_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
