package handler

import (
	"movies/internal/delivery/http/dto"
	"movies/internal/pkg/response"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/sessions")
	grp.Post("/", h.Open)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", h.SignOut)
}

func (h *SessionHandler) Open(c fiber.Ctx) error {
	snap, err := h.uc.Open(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewSessionResponse(snap))
}

func (h *SessionHandler) Get(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	snap, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(snap))
}

func (h *SessionHandler) SignOut(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.SignOut(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Signed out", nil)
}
