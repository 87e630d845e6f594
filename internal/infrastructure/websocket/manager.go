package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"visionmatch/pkg/logger"
)

const sendBuffer = 64

// Client is one websocket subscriber to a negotiation room.
type Client struct {
	Room string
	Conn *websocket.Conn
	Send chan []byte
}

func NewClient(room string, conn *websocket.Conn) *Client {
	return &Client{
		Room: room,
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
	}
}

type roomMessage struct {
	room    string
	payload []byte
}

// Manager fans negotiation events out to the clients watching a request.
// Rooms are keyed by project request ID.
type Manager struct {
	rooms      map[string]map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan roomMessage
	stopped    chan struct{}
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		rooms:      make(map[string]map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan roomMessage, 256),
		stopped:    make(chan struct{}),
	}
}

// Start runs the manager loop until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if m.rooms[client.Room] == nil {
					m.rooms[client.Room] = make(map[*Client]struct{})
				}
				m.rooms[client.Room][client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Live feed subscriber joined %s", client.Room)

			case client := <-m.Unregister:
				m.remove(client)
				logger.Debug("Live feed subscriber left %s", client.Room)

			case msg := <-m.broadcast:
				m.mutex.RLock()
				var slow []*Client
				for client := range m.rooms[msg.room] {
					select {
					case client.Send <- msg.payload:
					default:
						slow = append(slow, client)
					}
				}
				m.mutex.RUnlock()
				for _, client := range slow {
					m.remove(client)
				}

			case <-ctx.Done():
				close(m.stopped)
				m.closeAll()
				return
			}
		}
	}()
}

// Join registers client with the running manager. It returns false once the
// manager has stopped.
func (m *Manager) Join(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.stopped:
		return false
	}
}

// Leave unregisters client; it is a no-op after the manager has stopped.
func (m *Manager) Leave(client *Client) {
	select {
	case m.Unregister <- client:
	case <-m.stopped:
	}
}

// Publish queues v as JSON for every subscriber of room. It never blocks the
// caller; events are dropped when the queue is full.
func (m *Manager) Publish(room string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Live feed: cannot encode event for %s: %v", room, err)
		return
	}

	select {
	case m.broadcast <- roomMessage{room: room, payload: payload}:
	default:
		logger.Warn("Live feed: broadcast queue full, dropping event for %s", room)
	}
}

func (m *Manager) Subscribers(room string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms[room])
}

func (m *Manager) remove(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	clients, ok := m.rooms[client.Room]
	if !ok {
		return
	}
	if _, ok := clients[client]; ok {
		delete(clients, client)
		close(client.Send)
	}
	if len(clients) == 0 {
		delete(m.rooms, client.Room)
	}
}

func (m *Manager) closeAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for room, clients := range m.rooms {
		for client := range clients {
			close(client.Send)
		}
		delete(m.rooms, room)
	}
}

// ReadPump drains the connection so control frames are handled, and
// unregisters the client once the peer goes away. Subscribers never send data.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Leave(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Live feed read error on %s: %v", c.Room, err)
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Live feed write error on %s: %v", c.Room, err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
