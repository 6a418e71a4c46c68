package handler

import (
	"context"

	"movies/internal/delivery/http/dto"
	"movies/internal/pkg/response"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/sessions/:id/profile")
	grp.Get("/", h.Get)
	grp.Put("/", h.Commit)
	grp.Post("/edit", h.BeginEdit)
	grp.Put("/edit", h.UpdateBuffer)
	grp.Post("/edit/confirm", h.Confirm)
	grp.Post("/edit/cancel", h.Cancel)
	grp.Post("/toggle", h.Toggle)
	grp.Put("/avatar", h.SetAvatar)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	return h.do(c, h.uc.Get)
}

func (h *ProfileHandler) BeginEdit(c fiber.Ctx) error {
	return h.do(c, h.uc.BeginEdit)
}

func (h *ProfileHandler) Confirm(c fiber.Ctx) error {
	return h.do(c, h.uc.Confirm)
}

func (h *ProfileHandler) Cancel(c fiber.Ctx) error {
	return h.do(c, h.uc.Cancel)
}

func (h *ProfileHandler) Toggle(c fiber.Ctx) error {
	return h.do(c, h.uc.Toggle)
}

func (h *ProfileHandler) UpdateBuffer(c fiber.Ctx) error {
	var req dto.ProfileNamesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	return h.do(c, func(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
		return h.uc.UpdateBuffer(ctx, id, req.FirstName, req.LastName)
	})
}

// Commit writes names straight to the committed record, edit mode or not.
func (h *ProfileHandler) Commit(c fiber.Ctx) error {
	var req dto.ProfileNamesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	return h.do(c, func(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
		return h.uc.Commit(ctx, id, req.FirstName, req.LastName)
	})
}

func (h *ProfileHandler) SetAvatar(c fiber.Ctx) error {
	var req dto.AvatarRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	return h.do(c, func(ctx context.Context, id uuid.UUID) (usecase.ProfileView, error) {
		return h.uc.SetAvatar(ctx, id, req.AvatarRef)
	})
}

func (h *ProfileHandler) do(c fiber.Ctx, fn func(context.Context, uuid.UUID) (usecase.ProfileView, error)) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	v, err := fn(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, v)
}
