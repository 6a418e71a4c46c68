package handler

import (
	"errors"
	"fmt"

	"movies/internal/delivery/http/dto"
	"movies/internal/delivery/http/middleware"
	"movies/internal/domain/review"
	"movies/internal/pkg/response"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

var errRatingOutOfRange = fmt.Errorf("rating must be between %d and %d", review.MinRating, review.MaxRating)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/sessions/:id/movies/:movieID/review", h.Open)

	grp := r.Group("/sessions/:id/review")
	grp.Get("/", h.Get)
	grp.Delete("/", h.Cancel)
	grp.Put("/text", h.SetText)
	grp.Put("/rating", h.SetRating)
	grp.Post("/submit", h.Submit)
}

func (h *ReviewHandler) Open(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	v, err := h.uc.Open(c.Context(), id, c.Params("movieID"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, v)
}

func (h *ReviewHandler) Get(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	v, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, v)
}

func (h *ReviewHandler) SetText(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	var req dto.ReviewTextRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	v, err := h.uc.SetText(c.Context(), id, req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, v)
}

// SetRating only accepts star taps, 1 through 5.
func (h *ReviewHandler) SetRating(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	var req dto.ReviewRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	if req.Rating == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Rating is required", nil, errors.New("missing rating"))
	}
	if !review.InRange(*req.Rating) {
		return middleware.NewAppError(fiber.StatusBadRequest, errRatingOutOfRange.Error(), nil, errRatingOutOfRange)
	}

	v, err := h.uc.SetRating(c.Context(), id, *req.Rating)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, v)
}

func (h *ReviewHandler) Submit(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	r, err := h.uc.Submit(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewReviewResponse(r))
}

func (h *ReviewHandler) Cancel(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Cancel(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Draft discarded", nil)
}
