package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
)

const (
	defaultRecentSearches  = 10
	defaultPopularSearches = 10
)

type SearchHandler struct {
	searchLogRepo *repository.SearchLogRepository
}

func NewSearchHandler(searchLogRepo *repository.SearchLogRepository) *SearchHandler {
	return &SearchHandler{searchLogRepo: searchLogRepo}
}

func (h *SearchHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecentSearches)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultRecentSearches
	}

	logs, err := h.searchLogRepo.ListRecentForUser(c.Context(), principalID(c), limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, logs, len(logs))
}

// ListLogs is the admin view over the raw search log.
func (h *SearchHandler) ListLogs(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	filter := repository.SearchLogListFilter{
		SearchType: optionalQuery(c, "type"),
		Limit:      limit,
		Offset:     offset,
	}
	if userID := c.QueryInt("user_id"); userID > 0 {
		id := int64(userID)
		filter.UserID = &id
	}

	logs, total, err := h.searchLogRepo.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, logs, len(logs), buildPaginationMeta(page, limit, total))
}

func (h *SearchHandler) Popular(c *fiber.Ctx) error {
	searchType := c.Query("type", "recipes")
	limit := c.QueryInt("limit", defaultPopularSearches)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPopularSearches
	}

	queries, err := h.searchLogRepo.PopularQueries(c.Context(), searchType, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondList(c, queries, len(queries))
}
