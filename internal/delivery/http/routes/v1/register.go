package v1

import (
	"movies/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Session *handler.SessionHandler
	SignIn  *handler.SignInHandler
	Profile *handler.ProfileHandler
	Review  *handler.ReviewHandler
	Movie   *handler.MovieHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Session != nil {
		h.Session.RegisterRoutes(r)
	}
	if h.SignIn != nil {
		h.SignIn.RegisterRoutes(r)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r)
	}
	if h.Review != nil {
		h.Review.RegisterRoutes(r)
	}
	if h.Movie != nil {
		h.Movie.RegisterRoutes(r)
	}
}
