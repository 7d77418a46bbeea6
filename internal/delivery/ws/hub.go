package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rkradadiya/chatroom/internal/domain"
	"github.com/rkradadiya/chatroom/internal/usecase"
)

// event pairs an inbound frame with the connection that sent it
type event struct {
	client *Client
	env    domain.Event
}

// Hub is the room-scoped coordinator. It tracks which connection belongs to
// which user and room, fans out chat and presence events, and brokers call
// membership and signaling relay. All state mutations happen on the Run
// goroutine, so each event is handled to completion before the next; the
// mutex only guards read access from other goroutines.
type Hub struct {
	mu sync.RWMutex

	clients  map[string]*Client
	registry *Registry
	calls    *CallTracker
	history  *usecase.MessageHistory

	register   chan *Client
	unregister chan *Client
	events     chan event
}

// NewHub creates a new Hub. history may be nil, in which case messages are
// neither persisted nor replayed.
func NewHub(history *usecase.MessageHistory) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		registry:   NewRegistry(),
		calls:      NewCallTracker(),
		history:    history,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan event, 256),
	}
}

// Register adds a connection to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a connection from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// HandleEvent queues one validated inbound frame for processing
func (h *Hub) HandleEvent(c *Client, env domain.Event) {
	h.events <- event{client: c, env: env}
}

// ClientCount returns the number of live connections
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run starts the hub's main event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

			// Replay persisted history to the new connection. Fire and
			// forget: the loop does not wait on the store.
			go h.pushHistory(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; !ok {
				h.mu.Unlock()
				continue // already unregistered
			}
			h.handleDisconnect(client)
			delete(h.clients, client.ID)
			close(client.send)
			h.mu.Unlock()

		case ev := <-h.events:
			h.mu.Lock()
			h.dispatch(ev)
			h.mu.Unlock()
		}
	}
}

// dispatch routes one inbound event to its handler.
// Payloads were validated at the read boundary, so decode errors here only
// happen for frames injected by buggy callers and are dropped.
func (h *Hub) dispatch(ev event) {
	switch ev.env.Type {
	case domain.EventJoinRoom:
		var p domain.JoinPayload
		if err := json.Unmarshal(ev.env.Payload, &p); err != nil {
			return
		}
		h.handleJoin(ev.client, p)

	case domain.EventChatMessage:
		var p domain.ChatPayload
		if err := json.Unmarshal(ev.env.Payload, &p); err != nil {
			return
		}
		h.handleChat(ev.client, p.Text)

	case domain.EventTyping:
		h.handleTyping(ev.client)

	case domain.EventJoinCall:
		h.handleJoinCall(ev.client)

	case domain.EventLeaveCall:
		h.cleanupCall(ev.client.ID)

	case domain.EventOffer, domain.EventAnswer, domain.EventICECandidate:
		h.relaySignal(ev.env.Type, ev.client, ev.env.Payload)
	}
}

// handleJoin registers the connection, notifies the room, and refreshes
// presence. A connection still in a call (re-joining into another room)
// leaves that call first, so it never sits in two call sets.
func (h *Hub) handleJoin(c *Client, p domain.JoinPayload) {
	if h.calls.InCall(c.ID) {
		h.cleanupCall(c.ID)
	}

	h.registry.Register(c.ID, p.Username, p.Room)

	notice := fmt.Sprintf("%s joined %s", p.Username, p.Room)
	h.broadcastToRoom(p.Room, newEvent(domain.EventNotification, notice), c.ID)

	h.broadcastPresence(p.Room)

	// Tell only the joiner about a running call; joining the room does not
	// join the call.
	if n := len(h.calls.Participants(p.Room)); n > 0 {
		h.sendTo(c.ID, newEvent(domain.EventOngoingCall, domain.OngoingCallPayload{Participants: n}))
	}
}

// handleChat broadcasts a chat message to the sender's room and persists it.
// A message from a connection that has not joined yet is dropped; that is a
// benign race, not an error.
func (h *Hub) handleChat(c *Client, text string) {
	member, ok := h.registry.Lookup(c.ID)
	if !ok {
		return
	}

	rec := domain.ChatRecord{
		Username:  member.Username,
		Message:   text,
		Timestamp: time.Now(),
	}
	h.broadcastToRoom(member.Room, newEvent(domain.EventMessage, rec), "")

	if h.history != nil {
		// Best effort. Broadcast already happened; a failed write only means
		// history diverges from what was shown live.
		go func() {
			if err := h.history.Append(context.Background(), rec); err != nil {
				log.Printf("persist message: %v", err)
			}
		}()
	}
}

// handleTyping broadcasts a typing label to everyone else in the room
func (h *Hub) handleTyping(c *Client) {
	member, ok := h.registry.Lookup(c.ID)
	if !ok {
		return
	}
	label := fmt.Sprintf("%s is typing...", member.Username)
	h.broadcastToRoom(member.Room, newEvent(domain.EventTyping, label), c.ID)
}

// handleDisconnect reconciles presence and call state for a dropped
// connection. The registry entry must be read before removal (the call
// cleanup needs the room), and presence is rebroadcast only after removal so
// the departed member is excluded from the snapshot.
func (h *Hub) handleDisconnect(c *Client) {
	member, ok := h.registry.Lookup(c.ID)
	if !ok {
		return // disconnected before joining
	}

	notice := fmt.Sprintf("%s left the chat", member.Username)
	h.broadcastToRoom(member.Room, newEvent(domain.EventNotification, notice), c.ID)

	h.cleanupCall(c.ID)

	h.registry.Remove(c.ID)
	h.broadcastPresence(member.Room)
}

// pushHistory sends the loadMessages snapshot to one connection
func (h *Hub) pushHistory(c *Client) {
	if h.history == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			// Client disconnected before the snapshot was ready, ignore
		}
	}()
	records, err := h.history.Snapshot(context.Background())
	if err != nil {
		log.Printf("load history: %v", err)
		return
	}
	if records == nil {
		records = []domain.ChatRecord{}
	}
	c.Send(newEvent(domain.EventLoadMessages, records))
}
