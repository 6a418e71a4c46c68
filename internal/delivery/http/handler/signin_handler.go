package handler

import (
	"movies/internal/delivery/http/dto"
	"movies/internal/pkg/response"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SignInHandler struct {
	uc usecase.SignInUsecase
}

func NewSignInHandler(uc usecase.SignInUsecase) *SignInHandler {
	return &SignInHandler{uc: uc}
}

func (h *SignInHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signin/validate", h.Validate)

	grp := r.Group("/sessions/:id/signin")
	grp.Put("/", h.UpdateForm)
	grp.Post("/visibility", h.ToggleVisibility)
	grp.Post("/", h.Submit)
}

// Validate checks credentials without touching any session.
func (h *SignInHandler) Validate(c fiber.Ctx) error {
	var req dto.ValidateCredentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res := h.uc.Validate(req.Email, req.Password)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewValidationResponse(res))
}

func (h *SignInHandler) UpdateForm(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSignInFormRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	form, err := h.uc.UpdateForm(c.Context(), id, usecase.SignInFormInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSignInFormResponse(form))
}

func (h *SignInHandler) ToggleVisibility(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	form, err := h.uc.TogglePasswordVisibility(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSignInFormResponse(form))
}

// Submit validates the session's form. A valid result only means the
// client may move on; nothing is authenticated.
func (h *SignInHandler) Submit(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Submit(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !res.Valid() {
		return response.Error(c, fiber.StatusUnprocessableEntity, "Invalid credentials", dto.NewValidationResponse(res))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewValidationResponse(res))
}
