package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parsePageFor(t *testing.T, target string) (page, limit, offset int) {
	t.Helper()
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		page, limit, offset = parsePage(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return page, limit, offset
}

func TestParsePageDefaults(t *testing.T) {
	page, limit, offset := parsePageFor(t, "/items")
	if page != 1 || limit != defaultPageLimit || offset != 0 {
		t.Fatalf("unexpected defaults: page=%d limit=%d offset=%d", page, limit, offset)
	}
}

func TestParsePageComputesOffset(t *testing.T) {
	page, limit, offset := parsePageFor(t, "/items?page=3&limit=20")
	if page != 3 || limit != 20 || offset != 40 {
		t.Fatalf("unexpected values: page=%d limit=%d offset=%d", page, limit, offset)
	}
}

func TestParsePageClampsLimit(t *testing.T) {
	_, limit, _ := parsePageFor(t, "/items?limit=5000")
	if limit != maxPageLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxPageLimit, limit)
	}

	_, limit, _ = parsePageFor(t, "/items?limit=-1")
	if limit != defaultPageLimit {
		t.Fatalf("expected default limit for negative input, got %d", limit)
	}
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := buildPaginationMeta(2, 10, 35)
	if meta.TotalPages != 4 {
		t.Fatalf("expected 4 total pages, got %d", meta.TotalPages)
	}

	empty := buildPaginationMeta(1, 10, 0)
	if empty.TotalPages != 0 {
		t.Fatalf("expected 0 total pages for empty result, got %d", empty.TotalPages)
	}
}
