package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"newsportal/pkg/models"
)

const writeWait = 2 * time.Second

// Hub fans article events out to connected websocket clients. Clients that
// fail a write are dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     zerolog.Logger
	now     func() time.Time
}

type Stats struct {
	Clients int `json:"clients"`
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
		now:     time.Now,
	}
}

type welcome struct {
	Type    string `json:"type"`
	Clients int    `json:"clients"`
}

// addWithWelcome registers ws so that the welcome is its first message.
func (h *Hub) addWithWelcome(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ws] = struct{}{}
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteJSON(welcome{Type: "welcome", Clients: len(h.clients)})
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// Publish implements articles.Publisher.
func (h *Hub) Publish(v models.ArticleView) {
	h.BroadcastJSON(NewArticleEvent(v, h.now()))
}

func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.log.Error().Err(err).Msg("encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			h.log.Debug().Err(err).Str("remote", ws.RemoteAddr().String()).Msg("dropping client")
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{Clients: len(h.clients)}
}
