package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

func statusForError(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return respondServiceError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	if testErr != nil {
		t.Fatalf("app.Test: %v", testErr)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestRespondServiceErrorMapsTaxonomy(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.ErrInvalidInput, http.StatusUnprocessableEntity},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrAccountDisabled, http.StatusForbidden},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrNotFound, http.StatusNotFound},
		{pgx.ErrNoRows, http.StatusNotFound},
		{services.ErrConflict, http.StatusConflict},
		{services.ErrTokenExpired, http.StatusUnauthorized},
		{services.ErrUpstream, http.StatusServiceUnavailable},
		{&pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := statusForError(t, tc.err); got != tc.status {
			t.Errorf("error %v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}

func TestRespondDataEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return respondData(c, fiber.StatusOK, fiber.Map{"id": 7})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Data map[string]int `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Data["id"] != 7 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestRespondValidationEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return respondValidation(c, map[string]string{"email": "is required"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/invalid", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
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
	if body.Error != "Validation failed" || body.Fields["email"] != "is required" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}
