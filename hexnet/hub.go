package hexnet

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milk9111/bosshex/hex"
)

const (
	writeWait      = 2 * time.Second
	subscriberSend = 32
)

// Hub fans hex state and announcements out to every connected replica. It is
// fed from the simulation goroutine; each subscriber has its own writer so a
// slow client never stalls a tick.
type Hub struct {
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[*subscriber]struct{}
	last []byte
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		subs: make(map[*subscriber]struct{}),
	}
}

// Handler serves the replica endpoint at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

// ListenAndServe runs the hub until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		h.Close()
	}()

	log.Printf("hexnet: serving replicas on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("hexnet: upgrade: %v", err)
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, subscriberSend)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	if h.last != nil {
		sub.send <- h.last
	}
	h.mu.Unlock()
	log.Printf("hexnet: replica connected from %s", r.RemoteAddr)

	go h.writeLoop(sub)

	// replicas never send anything; reading notices the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(sub)
}

func (h *Hub) writeLoop(sub *subscriber) {
	for data := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(sub)
			_ = sub.conn.Close()
			return
		}
	}
	_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = sub.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = sub.conn.Close()
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	delete(h.subs, sub)
	h.mu.Unlock()
	if ok {
		sub.once.Do(func() { close(sub.send) })
	}
}

// Announce sends an announcement to every replica.
func (h *Hub) Announce(a hex.Announcement) {
	h.broadcast(Message{Type: TypeAnnounce, Announcement: &a}, false)
}

// PublishState sends the active set to every replica and keeps it for the
// ones that connect later.
func (h *Hub) PublishState(set *hex.ActiveSet) {
	if set == nil {
		set = hex.NewActiveSet()
	}
	h.broadcast(Message{Type: TypeHexState, Set: set}, true)
}

func (h *Hub) broadcast(msg Message, keep bool) {
	if h == nil {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("hexnet: marshal %s: %v", msg.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if keep {
		h.last = data
	}
	for sub := range h.subs {
		select {
		case sub.send <- data:
		default:
			log.Printf("hexnet: dropping %s for slow replica", msg.Type)
		}
	}
}

// Subscribers reports how many replicas are connected.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every replica.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()
	for _, sub := range subs {
		h.remove(sub)
	}
}
