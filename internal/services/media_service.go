package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

const maxUploadBytes = 50 << 20

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var videoMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/webm":      true,
}

type MediaService struct {
	imageRepo *repository.ImageRepository
	videoRepo *repository.VideoRepository
	storage   StorageService
}

func NewMediaService(imageRepo *repository.ImageRepository, videoRepo *repository.VideoRepository, storage StorageService) *MediaService {
	return &MediaService{imageRepo: imageRepo, videoRepo: videoRepo, storage: storage}
}

type UploadInput struct {
	Title       string
	Description *string
	Category    string
	Tags        *[]string
	UploadedBy  *int64
}

// objectName keeps the original extension but replaces the name, so
// colliding client filenames cannot overwrite each other.
func objectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}

func (s *MediaService) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader, input UploadInput) (*models.Image, error) {
	if header.Size <= 0 || header.Size > maxUploadBytes {
		return nil, ErrInvalidInput
	}
	mimeType := header.Header.Get("Content-Type")
	if !imageMimeTypes[mimeType] {
		return nil, ErrInvalidInput
	}

	if s.storage == nil {
		return nil, fmt.Errorf("%w: storage is not configured", ErrUpstream)
	}

	filename := objectName(header.Filename)
	fileURL, err := s.storage.UploadFile(ctx, file, filename, "images")
	if err != nil {
		return nil, fmt.Errorf("%w: store image: %v", ErrUpstream, err)
	}

	img := &models.Image{
		Title:       input.Title,
		Description: input.Description,
		Filename:    filename,
		Path:        "images/" + filename,
		URL:         fileURL,
		MimeType:    mimeType,
		FileSize:    header.Size,
		Category:    input.Category,
		Tags:        input.Tags,
		IsActive:    true,
		UploadedBy:  input.UploadedBy,
	}
	if err := s.imageRepo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *MediaService) UploadVideo(ctx context.Context, file multipart.File, header *multipart.FileHeader, input UploadInput) (*models.Video, error) {
	if header.Size <= 0 || header.Size > maxUploadBytes {
		return nil, ErrInvalidInput
	}
	mimeType := header.Header.Get("Content-Type")
	if !videoMimeTypes[mimeType] {
		return nil, ErrInvalidInput
	}

	if s.storage == nil {
		return nil, fmt.Errorf("%w: storage is not configured", ErrUpstream)
	}

	filename := objectName(header.Filename)
	fileURL, err := s.storage.UploadFile(ctx, file, filename, "videos")
	if err != nil {
		return nil, fmt.Errorf("%w: store video: %v", ErrUpstream, err)
	}

	video := &models.Video{
		Title:       input.Title,
		Description: input.Description,
		Filename:    filename,
		Path:        "videos/" + filename,
		URL:         fileURL,
		MimeType:    mimeType,
		FileSize:    header.Size,
		Category:    input.Category,
		Tags:        input.Tags,
		IsActive:    true,
		UploadedBy:  input.UploadedBy,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteImage removes the database row first; the storage object is cleaned
// up best effort afterwards.
func (s *MediaService) DeleteImage(ctx context.Context, id int64) error {
	img, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	deleted, err := s.imageRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	if s.storage != nil {
		_ = s.storage.DeleteFile(ctx, img.URL)
	}
	return nil
}

// SignedImageURL returns a short-lived direct link to the stored object.
func (s *MediaService) SignedImageURL(ctx context.Context, id int64) (string, error) {
	img, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.signedURL(ctx, img.URL)
}

func (s *MediaService) SignedVideoURL(ctx context.Context, id int64) (string, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return s.signedURL(ctx, video.URL)
}

func (s *MediaService) signedURL(ctx context.Context, fileURL string) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("%w: storage is not configured", ErrUpstream)
	}
	signed, err := s.storage.GetSignedURL(ctx, fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: sign url: %v", ErrUpstream, err)
	}
	return signed, nil
}

func (s *MediaService) DeleteVideo(ctx context.Context, id int64) error {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	deleted, err := s.videoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	if s.storage != nil {
		_ = s.storage.DeleteFile(ctx, video.URL)
	}
	return nil
}
