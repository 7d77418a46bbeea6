package ws

import (
	"encoding/json"

	"github.com/rkradadiya/chatroom/internal/domain"
)

// newEvent marshals an outbound frame
func newEvent(t domain.EventType, payload interface{}) []byte {
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	data, _ := json.Marshal(domain.Event{Type: t, Payload: raw})
	return data
}

// sendTo delivers a frame to one connection. Delivery to an id that is no
// longer connected is a no-op.
// NOTE: Caller must hold the hub lock.
func (h *Hub) sendTo(connID string, data []byte) {
	client, ok := h.clients[connID]
	if !ok {
		return
	}
	select {
	case client.send <- data:
	default:
		// Client buffer full, drop the frame
	}
}

// broadcastToRoom delivers a frame to every registered connection in the
// room, except excludeID when non-empty.
// NOTE: Caller must hold the hub lock.
func (h *Hub) broadcastToRoom(room string, data []byte, excludeID string) {
	for _, m := range h.registry.MembersOf(room) {
		if m.ConnID == excludeID {
			continue
		}
		h.sendTo(m.ConnID, data)
	}
}

// broadcastPresence recomputes the room's member list from the registry and
// pushes the full snapshot to every connection in the room. Always a full
// snapshot, never a diff: recipients replace their local view wholesale.
// NOTE: Caller must hold the hub lock.
func (h *Hub) broadcastPresence(room string) {
	members := h.registry.MembersOf(room)
	list := make([]domain.MemberInfo, 0, len(members))
	for _, m := range members {
		list = append(list, domain.MemberInfo{Username: m.Username})
	}
	h.broadcastToRoom(room, newEvent(domain.EventUserList, list), "")
}
