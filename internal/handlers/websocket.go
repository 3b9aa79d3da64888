package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"bingo-arena-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHub fans advisory events out to connected dashboard clients. It
// implements services.Broadcaster; dashboards still pull actual balances and
// reports over the REST surface.
type WebSocketHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan *Message
	log        logrus.FieldLogger
}

type Message struct {
	Type    string      `json:"type"`
	GameID  string      `json:"game_id,omitempty"`
	Payload interface{} `json:"payload"`
}

func NewWebSocketHub(logger logrus.FieldLogger) *WebSocketHub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	hub := &WebSocketHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan *Message, 100),
		log:        logger,
	}

	go hub.run()
	return hub
}

func (h *WebSocketHub) run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case msg := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(msg); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

func (h *WebSocketHub) BroadcastSessionEvent(event string, session *models.GameSession) {
	select {
	case h.broadcast <- &Message{Type: event, GameID: session.ID, Payload: session}:
	default:
		h.log.Warn("event feed buffer full, dropping session event")
	}
}

func (h *WebSocketHub) BroadcastFundAlert(health models.FundHealth) {
	select {
	case h.broadcast <- &Message{Type: "fund_alert", Payload: health}:
	default:
		h.log.Warn("event feed buffer full, dropping fund alert")
	}
}

type WebSocketHandler struct {
	hub *WebSocketHub
}

func NewWebSocketHandler(hub *WebSocketHub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.log.WithError(err).Warn("failed to upgrade to websocket")
		return
	}

	h.hub.register <- conn

	// Drain reads to notice client disconnects; the feed is one-way.
	go func() {
		defer func() { h.hub.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
