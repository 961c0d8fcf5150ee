package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

type EducationHandler struct {
	educationRepo *repository.EducationRepository
}

func NewEducationHandler(educationRepo *repository.EducationRepository) *EducationHandler {
	return &EducationHandler{educationRepo: educationRepo}
}

func (h *EducationHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	filter := repository.EducationListFilter{
		Category:    optionalQuery(c, "category"),
		ContentType: optionalQuery(c, "content_type"),
		Featured:    optionalBoolQuery(c, "featured"),
		Search:      c.Query("search"),
		ActiveOnly:  principalKind(c) != services.PrincipalAdmin,
		Limit:       limit,
		Offset:      offset,
	}

	contents, total, err := h.educationRepo.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, contents, len(contents), buildPaginationMeta(page, limit, total))
}

func (h *EducationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	content, err := h.educationRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !content.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, content)
}

func (h *EducationHandler) Featured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > maxPageLimit {
		limit = 5
	}

	contents, err := h.educationRepo.FeaturedRandom(c.Context(), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, contents, len(contents))
}

type createEducationRequest struct {
	Title           string    `json:"title" validate:"required,max=255"`
	Description     string    `json:"description" validate:"required"`
	ImageURL        *string   `json:"image_url" validate:"omitempty,url"`
	Content         *string   `json:"content"`
	ContentType     string    `json:"content_type" validate:"required,oneof=article video"`
	VideoURL        *string   `json:"video_url" validate:"omitempty,url"`
	Category        string    `json:"category" validate:"required,max=100"`
	Tags            *[]string `json:"tags"`
	ReadTimeMinutes *int      `json:"read_time_minutes" validate:"omitempty,gt=0"`
	IsFeatured      bool      `json:"is_featured"`
	IsActive        *bool     `json:"is_active"`
}

func (h *EducationHandler) Create(c *fiber.Ctx) error {
	var req createEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}
	// Articles need text, videos need a url.
	if req.ContentType == "article" && req.Content == nil {
		return respondValidation(c, map[string]string{"content": "is required for articles"})
	}
	if req.ContentType == "video" && req.VideoURL == nil {
		return respondValidation(c, map[string]string{"video_url": "is required for videos"})
	}

	adminID := principalID(c)
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	content := &models.EducationContent{
		CreatedByAdmin:  &adminID,
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		Content:         req.Content,
		ContentType:     req.ContentType,
		VideoURL:        req.VideoURL,
		Category:        req.Category,
		Tags:            req.Tags,
		ReadTimeMinutes: req.ReadTimeMinutes,
		IsFeatured:      req.IsFeatured,
		IsActive:        active,
	}
	if err := h.educationRepo.Create(c.Context(), content); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, content)
}

type updateEducationRequest struct {
	Title           *string   `json:"title" validate:"omitempty,max=255"`
	Description     *string   `json:"description"`
	ImageURL        *string   `json:"image_url" validate:"omitempty,url"`
	Content         *string   `json:"content"`
	ContentType     *string   `json:"content_type" validate:"omitempty,oneof=article video"`
	VideoURL        *string   `json:"video_url" validate:"omitempty,url"`
	Category        *string   `json:"category" validate:"omitempty,max=100"`
	Tags            *[]string `json:"tags"`
	ReadTimeMinutes *int      `json:"read_time_minutes" validate:"omitempty,gt=0"`
	IsFeatured      *bool     `json:"is_featured"`
	IsActive        *bool     `json:"is_active"`
}

func (h *EducationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	content, err := h.educationRepo.Update(c.Context(), int64(id), repository.UpdateEducationInput{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		Content:         req.Content,
		ContentType:     req.ContentType,
		VideoURL:        req.VideoURL,
		Category:        req.Category,
		Tags:            req.Tags,
		ReadTimeMinutes: req.ReadTimeMinutes,
		IsFeatured:      req.IsFeatured,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, content)
}

func (h *EducationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.educationRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Content deleted"})
}
