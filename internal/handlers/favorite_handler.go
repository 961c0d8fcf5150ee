package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

type FavoriteHandler struct {
	favoriteRepo *repository.FavoriteRepository
}

func NewFavoriteHandler(favoriteRepo *repository.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{favoriteRepo: favoriteRepo}
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	filter := repository.FavoriteListFilter{
		FavoritableType: optionalQuery(c, "type"),
		Limit:           limit,
		Offset:          offset,
	}

	favorites, total, err := h.favoriteRepo.ListForUser(c.Context(), principalID(c), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, favorites, len(favorites), buildPaginationMeta(page, limit, total))
}

func (h *FavoriteHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	fav, err := h.favoriteRepo.GetByID(c.Context(), int64(id), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, fav)
}

type createFavoriteRequest struct {
	FavoritableType string `json:"favoritable_type" validate:"required,oneof=workout recipe education_content meal_plan"`
	FavoritableID   int64  `json:"favoritable_id" validate:"required,gt=0"`
}

func (h *FavoriteHandler) Create(c *fiber.Ctx) error {
	var req createFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	fav := &models.UserFavorite{
		UserID:          principalID(c),
		FavoritableType: req.FavoritableType,
		FavoritableID:   req.FavoritableID,
	}
	// A duplicate favorite trips the unique constraint and maps to 409.
	if err := h.favoriteRepo.Create(c.Context(), fav); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, fav)
}

func (h *FavoriteHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.favoriteRepo.Delete(c.Context(), int64(id), principalID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Favorite removed"})
}
