package leads

import (
	"net/http"
	"sync"
	"time"

	"api/schemas"
	"api/utils"

	"github.com/gorilla/websocket"
)

// A client that cannot take a write within this window is dropped.
const feedWriteWait = 10 * time.Second

type FeedMessage struct {
	Action string        `json:"action"`
	Lead   *schemas.Lead `json:"lead"`
}

// Feed pushes newly created leads to connected dashboard clients.
type Feed struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Broadcast sends the lead to every connected client, dropping clients
// whose connection has gone away or stopped reading. Each write carries a
// deadline so one wedged peer cannot hold the feed mutex and stall
// submissions behind it.
func (f *Feed) Broadcast(lead *schemas.Lead) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := FeedMessage{Action: "lead_created", Lead: lead}
	for client := range f.clients {
		client.SetWriteDeadline(time.Now().Add(feedWriteWait))
		if err := client.WriteJSON(msg); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}

func (f *Feed) clientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Serve upgrades the connection and keeps it registered until the client
// disconnects. The feed is one-way; inbound messages are discarded.
func (f *Feed) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	f.mu.Lock()
	delete(f.clients, conn)
	f.mu.Unlock()
}
