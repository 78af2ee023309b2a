// Package live pushes check-in events to connected admin dashboards over
// websockets so the visitor list updates without polling.
package live

import (
	"encoding/json"
	"log"
	"sync"

	"thochu/models"
)

// RoomCheckins is the only room the kiosk uses today.
const RoomCheckins = "checkins"

type Client struct {
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Event is what subscribers receive for each check-in.
type Event struct {
	Action  string         `json:"action"` // "checkin"
	Visitor models.Visitor `json:"visitor"`
}

// BroadcastCheckin fans a new visitor entry out to every dashboard.
// Returns immediately when the hub has stopped; check-ins landing during
// shutdown still persist, they just have nobody left to notify.
func (h *Hub) BroadcastCheckin(v models.Visitor) {
	data, err := json.Marshal(Event{Action: "checkin", Visitor: v})
	if err != nil {
		log.Printf("marshal checkin event: %v", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{Room: RoomCheckins, Data: data}:
	case <-h.done:
	}
}
