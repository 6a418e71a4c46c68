package handler

import (
	"errors"

	"movies/internal/delivery/http/middleware"
	"movies/internal/domain/profile"
	"movies/internal/pkg/response"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func sessionIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid session id", nil, err)
	}
	return id, nil
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	case errors.Is(err, usecase.ErrMovieNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Movie not found", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrEditInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "Finish editing the profile first", nil, err)
	case errors.Is(err, usecase.ErrComposerClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Review composer is not open", nil, err)
	case errors.Is(err, profile.ErrAlreadyEditing):
		return middleware.NewAppError(fiber.StatusConflict, "Profile is already being edited", nil, err)
	case errors.Is(err, profile.ErrNotEditing):
		return middleware.NewAppError(fiber.StatusConflict, "Profile is not being edited", nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, response.MessageConflict, nil, err)
	case errors.Is(err, profile.ErrEmptyAvatar):
		return middleware.NewAppError(fiber.StatusBadRequest, "Avatar reference is required", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
