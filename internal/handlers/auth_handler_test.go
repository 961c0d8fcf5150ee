package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newAuthTestApp() *fiber.App {
	// A nil service is fine here: these tests only exercise paths that
	// reject the request before the service is touched.
	h := NewAuthHandler(nil)
	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/forgot-password", h.ForgotPassword)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	app := newAuthTestApp()

	resp := postJSON(t, app, "/api/auth/register", "{not json")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Error != "Invalid request body" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestRegisterValidatesFields(t *testing.T) {
	app := newAuthTestApp()

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"","email":"nope","password":"short"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, field := range []string{"name", "email", "password"} {
		if body.Fields[field] == "" {
			t.Errorf("expected failure for %s, got %v", field, body.Fields)
		}
	}
}

func TestLoginValidatesEmail(t *testing.T) {
	app := newAuthTestApp()

	resp := postJSON(t, app, "/api/auth/login", `{"email":"nope","password":"whatever1"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestForgotPasswordValidatesEmail(t *testing.T) {
	app := newAuthTestApp()

	resp := postJSON(t, app, "/api/auth/forgot-password", `{"email":"not-an-email"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
