package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newFavoriteTestApp() *fiber.App {
	h := NewFavoriteHandler(nil)
	app := fiber.New()
	app.Post("/api/v1/users/favorites", h.Create)
	return app
}

func TestCreateFavoriteRejectsUnknownType(t *testing.T) {
	app := newFavoriteTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/favorites",
		strings.NewReader(`{"favoritable_type":"podcast","favoritable_id":9}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Fields["favoritabletype"] == "" {
		t.Fatalf("expected favoritable_type failure, got %v", body.Fields)
	}
}

func TestCreateFavoriteRequiresTarget(t *testing.T) {
	app := newFavoriteTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/favorites",
		strings.NewReader(`{"favoritable_type":"recipe"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestCreateSettingValidatesKey(t *testing.T) {
	h := NewSettingHandler(nil)
	app := fiber.New()
	app.Post("/api/v1/users/settings", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/settings",
		strings.NewReader(`{"key":"","value":"dark"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
