package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type MediaHandler struct {
	imageRepo    *repository.ImageRepository
	videoRepo    *repository.VideoRepository
	mediaService *services.MediaService
}

func NewMediaHandler(
	imageRepo *repository.ImageRepository,
	videoRepo *repository.VideoRepository,
	mediaService *services.MediaService,
) *MediaHandler {
	return &MediaHandler{imageRepo: imageRepo, videoRepo: videoRepo, mediaService: mediaService}
}

// uploadInput reads the multipart form fields that accompany a file.
func uploadInput(c *fiber.Ctx) services.UploadInput {
	input := services.UploadInput{
		Title:    c.FormValue("title"),
		Category: c.FormValue("category", "general"),
	}
	if desc := c.FormValue("description"); desc != "" {
		input.Description = &desc
	}
	if raw := c.FormValue("tags"); raw != "" {
		tags := strings.Split(raw, ",")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}
		input.Tags = &tags
	}
	uploader := principalID(c)
	input.UploadedBy = &uploader
	return input
}

func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Missing file")
	}
	input := uploadInput(c)
	if input.Title == "" {
		return respondValidation(c, map[string]string{"title": "is required"})
	}

	file, err := header.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Unreadable file")
	}
	defer file.Close()

	img, err := h.mediaService.UploadImage(c.Context(), file, header, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, img)
}

func (h *MediaHandler) UploadVideo(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Missing file")
	}
	input := uploadInput(c)
	if input.Title == "" {
		return respondValidation(c, map[string]string{"title": "is required"})
	}

	file, err := header.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Unreadable file")
	}
	defer file.Close()

	video, err := h.mediaService.UploadVideo(c.Context(), file, header, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, video)
}

func (h *MediaHandler) mediaFilter(c *fiber.Ctx, limit, offset int) repository.MediaListFilter {
	return repository.MediaListFilter{
		Category:   optionalQuery(c, "category"),
		Search:     c.Query("search"),
		ActiveOnly: principalKind(c) != services.PrincipalAdmin,
		Limit:      limit,
		Offset:     offset,
	}
}

func (h *MediaHandler) ListImages(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	images, total, err := h.imageRepo.List(c.Context(), h.mediaFilter(c, limit, offset))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, images, len(images), buildPaginationMeta(page, limit, total))
}

func (h *MediaHandler) ListVideos(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	videos, total, err := h.videoRepo.List(c.Context(), h.mediaFilter(c, limit, offset))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, videos, len(videos), buildPaginationMeta(page, limit, total))
}

func (h *MediaHandler) GetImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	img, err := h.imageRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, img)
}

func (h *MediaHandler) GetVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	video, err := h.videoRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, video)
}

// SignedImageURL hands out a short-lived direct link for objects in a
// non-public bucket.
func (h *MediaHandler) SignedImageURL(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	signed, err := h.mediaService.SignedImageURL(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"signed_url": signed})
}

func (h *MediaHandler) SignedVideoURL(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	signed, err := h.mediaService.SignedVideoURL(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"signed_url": signed})
}

type updateMediaRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=255"`
	Description *string   `json:"description"`
	Category    *string   `json:"category" validate:"omitempty,max=100"`
	Tags        *[]string `json:"tags"`
	IsActive    *bool     `json:"is_active"`
}

func (h *MediaHandler) UpdateImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	img, err := h.imageRepo.Update(c.Context(), int64(id), repository.UpdateImageInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, img)
}

func (h *MediaHandler) UpdateVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	video, err := h.videoRepo.Update(c.Context(), int64(id), repository.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, video)
}

func (h *MediaHandler) DeleteImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.mediaService.DeleteImage(c.Context(), int64(id)); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Image deleted"})
}

func (h *MediaHandler) DeleteVideo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.mediaService.DeleteVideo(c.Context(), int64(id)); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Video deleted"})
}
