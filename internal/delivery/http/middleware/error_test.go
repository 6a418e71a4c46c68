package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"movies/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(h fiber.Handler) *fiber.App {
	logger := log.New(io.Discard, "", 0)
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())
	app.Get("/", h)
	return app
}

func doGet(t *testing.T, app *fiber.App) (int, response.SemanticResponse, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var body response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, body, resp.Header.Get(HeaderRequestID)
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "Profile is already being edited", nil, errors.New("cause"))
	})

	status, body, rid := doGet(t, app)
	if status != fiber.StatusConflict || body.Message != "Profile is already being edited" {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
	if rid == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestErrorMiddleware_HidesServerErrors(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "redis: connection refused", nil, errors.New("dial"))
	})

	status, body, _ := doGet(t, app)
	if status != fiber.StatusInternalServerError || body.Message != response.MessageInternalServerError {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	status, body, _ := doGet(t, app)
	if status != fiber.StatusInternalServerError || body.Status != fiber.StatusInternalServerError {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
}

func TestErrorMiddleware_FiberError(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	status, body, _ := doGet(t, app)
	if status != fiber.StatusNotFound || body.Message == "" {
		t.Fatalf("unexpected response: %d %+v", status, body)
	}
}

func TestAccessLog_KeepsIncomingRequestID(t *testing.T) {
	app := newTestApp(func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", RequestID(c))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderRequestID, "rid-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(HeaderRequestID); got != "rid-123" {
		t.Fatalf("expected rid-123, got %q", got)
	}
	var body response.SemanticResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Data != "rid-123" {
		t.Fatalf("expected request id in locals, got %v", body.Data)
	}
}
