package handler

import (
	"movies/internal/delivery/http/dto"
	"movies/internal/pkg/response"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MovieHandler struct {
	uc usecase.MovieUsecase
}

func NewMovieHandler(uc usecase.MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

func (h *MovieHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	movies := r.Group("/movies")
	movies.Get("/", h.List)
	movies.Get("/:movieID", h.Details)

	sess := r.Group("/sessions/:id")
	sess.Get("/movies/:movieID", h.SessionDetails)
	sess.Post("/movies/:movieID/bookmark", h.ToggleBookmark)
	sess.Get("/saved", h.Saved)
}

// List returns the catalogue, or ranked matches when ?q= is given.
func (h *MovieHandler) List(c fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		items, err := h.uc.Search(c.Context(), q)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, items)
	}

	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *MovieHandler) Details(c fiber.Ctx) error {
	d, err := h.uc.Details(c.Context(), c.Params("movieID"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMovieDetailsResponse(d, false))
}

func (h *MovieHandler) SessionDetails(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	d, err := h.uc.SessionDetails(c.Context(), id, c.Params("movieID"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMovieDetailsResponse(d, true))
}

func (h *MovieHandler) ToggleBookmark(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	movieID := c.Params("movieID")
	saved, err := h.uc.ToggleBookmark(c.Context(), id, movieID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.BookmarkResponse{MovieID: movieID, Bookmarked: saved})
}

func (h *MovieHandler) Saved(c fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Saved(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
