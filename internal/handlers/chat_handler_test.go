package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newChatTestApp() *fiber.App {
	h := NewChatHandler(nil)
	app := fiber.New()
	app.Post("/api/v1/chats", h.Start)
	app.Post("/api/v1/chats/:id/messages", h.SendMessage)
	return app
}

func TestStartChatRejectsUnknownProfessionalType(t *testing.T) {
	app := newChatTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chats",
		strings.NewReader(`{"professional_type":"plumber","professional_id":3}`))
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
	if body.Fields["professionaltype"] == "" {
		t.Fatalf("expected professional_type failure, got %v", body.Fields)
	}
}

func TestStartChatRejectsMalformedBody(t *testing.T) {
	app := newChatTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chats", strings.NewReader("oops"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSendMessageRequiresContent(t *testing.T) {
	app := newChatTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chats/5/messages",
		strings.NewReader(`{"message":""}`))
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
