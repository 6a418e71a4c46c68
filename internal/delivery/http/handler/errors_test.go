package handler

import (
	"errors"
	"fmt"
	"testing"

	"movies/internal/delivery/http/middleware"
	"movies/internal/domain/profile"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func TestMapUsecaseError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"session", fmt.Errorf("%w: %w", usecase.ErrNotFound, usecase.ErrSessionNotFound), fiber.StatusNotFound},
		{"movie", fmt.Errorf("%w: %w", usecase.ErrNotFound, usecase.ErrMovieNotFound), fiber.StatusNotFound},
		{"editing", fmt.Errorf("%w: %w", usecase.ErrConflict, usecase.ErrEditInProgress), fiber.StatusConflict},
		{"composer", fmt.Errorf("%w: %w", usecase.ErrConflict, usecase.ErrComposerClosed), fiber.StatusConflict},
		{"already editing", fmt.Errorf("%w: %w", usecase.ErrConflict, profile.ErrAlreadyEditing), fiber.StatusConflict},
		{"avatar", fmt.Errorf("%w: %w", usecase.ErrInvalidInput, profile.ErrEmptyAvatar), fiber.StatusBadRequest},
		{"invalid", usecase.ErrInvalidInput, fiber.StatusBadRequest},
		{"internal", usecase.ErrInternal, fiber.StatusInternalServerError},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var appErr *middleware.AppError
			if !errors.As(mapUsecaseError(tc.err), &appErr) {
				t.Fatalf("expected *AppError")
			}
			if appErr.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, appErr.StatusCode)
			}
			if !errors.Is(appErr, tc.err) {
				t.Fatalf("cause should be preserved")
			}
		})
	}

	if mapUsecaseError(nil) != nil {
		t.Fatalf("nil should map to nil")
	}
}
