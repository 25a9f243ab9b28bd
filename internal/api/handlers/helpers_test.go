package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestUUIDParam_BadIDShortCircuits(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		return c.SendString("reached handler with " + id.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/things/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "reached handler") {
		t.Errorf("handler ran past a bad id: %q", body)
	}
}

func TestUUIDParam_ValidID(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return err
		}
		return c.SendString(id.String())
	})

	want := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/things/"+want.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != want.String() {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestUserID_MissingLocalShortCircuits(t *testing.T) {
	app := fiber.New()
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := userID(c)
		if err != nil {
			return err
		}
		return c.SendString("reached handler with " + id.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "reached handler") {
		t.Errorf("handler ran without an authenticated user: %q", body)
	}
}

func TestUserID_SetLocal(t *testing.T) {
	want := uuid.New()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", want.String())
		return c.Next()
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := userID(c)
		if err != nil {
			return err
		}
		return c.SendString(id.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != want.String() {
		t.Errorf("body = %q, want %q", body, want)
	}
}
