package ws

import (
	"encoding/json"

	"movies/internal/usecase"
)

// Notifier publishes use case events to the websocket hub.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) Publish(evt usecase.Event) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		n.hub.logger.Printf("WS event encode failed | type=%s err=%v", evt.Type, err)
		return
	}
	n.hub.Broadcast(evt.SessionID, b)
}

var _ usecase.Publisher = (*Notifier)(nil)
