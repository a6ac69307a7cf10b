package site

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is pushed to pages on connect and after every rebuild.
type reloadMessage struct {
	Build string `json:"build"`
}

// reloadHub tracks open pages. Writes happen under mu so a connection
// never has two concurrent writers.
type reloadHub struct {
	mu      sync.Mutex
	current string
	clients map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	err = h.send(conn, h.current)
	h.mu.Unlock()
	if err != nil {
		h.drop(conn)
		return
	}

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			h.drop(conn)
			return
		}
	}
}

func (h *reloadHub) send(conn *websocket.Conn, build string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteJSON(reloadMessage{Build: build})
}

func (h *reloadHub) broadcast(build string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = build
	for conn := range h.clients {
		if err := h.send(conn, build); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *reloadHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *reloadHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
