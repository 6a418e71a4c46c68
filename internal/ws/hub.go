package ws

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

type message struct {
	sessionID uuid.UUID
	payload   []byte
}

// Hub fans messages out to the clients watching a session.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stop       sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		broadcast:  make(chan message, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run owns the client set until ctx is done, then closes every client.
// Register and Unregister become no-ops once Run has returned.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stop.Do(func() { close(h.done) })
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.sessionID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.sessionID] = set
			}
			set[client] = struct{}{}
			watching := len(set)
			h.mutex.Unlock()
			h.logger.Printf("WS connected | session=%s clients=%d", client.sessionID, watching)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			if h.remove(client) {
				h.logger.Printf("WS disconnected | session=%s", client.sessionID)
			}

		case msg := <-h.broadcast:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.sessionID]))
			for c := range h.clients[msg.sessionID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.clients[client.sessionID]
	if !ok {
		return false
	}
	if _, ok := set[client]; !ok {
		return false
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.sessionID)
	}
	return true
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for id, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, id)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) Broadcast(sessionID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message{sessionID: sessionID, payload: payload}:
	default:
		h.logger.Printf("WS broadcast dropped | session=%s reason=buffer_full", sessionID)
	}
}

func (h *Hub) ClientCount(sessionID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[sessionID])
}
