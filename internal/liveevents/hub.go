package liveevents

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	clientSendSize = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan models.LiveEvent
}

// Hub раздает события агрегатора подключенным дашбордам по websocket
type Hub struct {
	clients map[string]*client
	mu      sync.RWMutex
	logger  *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		logger:  logger,
	}
}

// Run подписывается на агрегатор и рассылает события до отмены ctx
func (h *Hub) Run(ctx context.Context, aggregator *Aggregator) {
	events, unsubscribe := aggregator.Subscribe(256)
	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				h.closeAll()
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				h.Broadcast(event)
			}
		}
	}()
}

// Broadcast не блокируется: клиент с переполненной очередью отключается
func (h *Hub) Broadcast(event models.LiveEvent) {
	h.mu.RLock()
	var slow []string
	for id, c := range h.clients {
		select {
		case c.send <- event:
		default:
			slow = append(slow, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range slow {
		h.logger.WithField("client_id", id).Warn("Live feed client too slow, disconnecting")
		h.removeClient(id)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS переводит соединение в websocket и сначала отправляет снимок журнала.
// Клиент регистрируется до снятия снимка, поэтому события между снимком и подпиской
// не теряются; события, уже попавшие в снимок, из очереди клиента не повторяются.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, snapshot func() models.LiveSnapshot) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade live feed connection")
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan models.LiveEvent, clientSendSize),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	snap := snapshot()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(snap); err != nil {
		h.logger.WithError(err).Warn("Failed to send live snapshot")
		h.removeClient(c.id)
		conn.Close()
		return
	}
	h.logger.WithField("client_id", c.id).Info("Live feed client connected")

	seen := make(map[string]struct{}, len(snap.Events))
	for _, event := range snap.Events {
		seen[event.ID] = struct{}{}
	}

	go h.writePump(c, seen)
	go h.readPump(c)
}

func (h *Hub) removeClient(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		close(c.send)
		delete(h.clients, id)
	}
}

// readPump нужен только для pong и обнаружения закрытия соединения
func (h *Hub) readPump(c *client) {
	defer h.removeClient(c.id)

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump пропускает по одному разу события из seen: они уже ушли в снимке
func (h *Hub) writePump(c *client, seen map[string]struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if _, dup := seen[event.ID]; dup {
				delete(seen, event.ID)
				continue
			}
			if err := c.conn.WriteJSON(event); err != nil {
				h.logger.WithError(err).WithField("client_id", c.id).Debug("Live feed write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
