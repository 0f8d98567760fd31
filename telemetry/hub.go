package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/collecta/engine"
	"github.com/lixenwraith/collecta/status"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans simulation snapshots out to websocket subscribers
// Publish never blocks the caller; a subscriber that falls behind is disconnected
type Hub struct {
	log    *zap.Logger
	buffer int

	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	subscribers atomic.Int64
	dropped     *atomic.Int64
	published   *atomic.Int64
	stats       *status.Registry
}

func NewHub(log *zap.Logger, buffer int, stats *status.Registry) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = 1
	}
	if stats == nil {
		stats = status.NewRegistry()
	}
	return &Hub{
		log:        log,
		buffer:     buffer,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, buffer),
		done:       make(chan struct{}),
		dropped:    stats.Ints.Get("telemetry.dropped"),
		published:  stats.Ints.Get("telemetry.published"),
		stats:      stats,
	}
}

// Run services registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			close(c.send)
			delete(h.clients, c)
		}
		h.subscribers.Store(0)
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.subscribers.Store(int64(len(h.clients)))
			h.log.Debug("telemetry subscriber joined", zap.String("remote", c.conn.RemoteAddr().String()))
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.log.Debug("telemetry subscriber too slow", zap.String("remote", c.conn.RemoteAddr().String()))
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.subscribers.Store(int64(len(h.clients)))
}

// Subscribers returns the number of connected clients
func (h *Hub) Subscribers() int { return int(h.subscribers.Load()) }

// Publish queues a snapshot for every subscriber
// It returns false when nothing was queued, either for lack of subscribers or a full queue.
func (h *Hub) Publish(snap engine.Snapshot) bool {
	if h.subscribers.Load() == 0 {
		return false
	}
	msg, err := json.Marshal(snap)
	if err != nil {
		h.log.Warn("marshal snapshot", zap.Error(err))
		return false
	}
	select {
	case h.broadcast <- msg:
		h.published.Add(1)
		return true
	default:
		h.dropped.Add(1)
		return false
	}
}

// ServeWS upgrades the request and subscribes the connection
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("websocket upgrade", zap.Error(err))
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, h.buffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// Handler routes the debug endpoints
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/ws", h.ServeWS)
	mux.HandleFunc("/debug/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(h.stats.Snapshot()); err != nil {
			h.log.Debug("encode status", zap.Error(err))
		}
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
