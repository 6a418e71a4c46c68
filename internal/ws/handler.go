package ws

import (
	"context"
	"errors"
	"log"
	"net/http"

	"movies/internal/delivery/http/middleware"
	"movies/internal/domain/session"
	"movies/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SessionLookup confirms a session exists before a stream is opened.
type SessionLookup interface {
	Get(ctx context.Context, id uuid.UUID) (session.Snapshot, error)
}

type Handler struct {
	hub      *Hub
	sessions SessionLookup
	logger   *log.Logger
}

func NewHandler(hub *Hub, sessions SessionLookup, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{hub: hub, sessions: sessions, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws/sessions/:id", h.HandleSessionWS)
}

func (h *Handler) HandleSessionWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid session id", nil, err)
	}
	if h.sessions != nil {
		if _, err := h.sessions.Get(c.Context(), id); err != nil {
			if errors.Is(err, usecase.ErrSessionNotFound) {
				return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
			}
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("WS upgrade error | session=%s err=%v", id, err)
			return
		}

		client := NewClient(h.hub, conn, id)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
