package ws

import (
	"github.com/rkradadiya/chatroom/internal/domain"
)

// handleJoinCall adds the connection to its room's call. The first joiner
// rings the whole chat room; later joiners are told who is already in the
// call and always initiate signaling toward them, so an offer never collides
// with one coming the other way.
func (h *Hub) handleJoinCall(c *Client) {
	member, ok := h.registry.Lookup(c.ID)
	if !ok {
		return
	}

	existing, started := h.calls.Join(member.Room, c.ID)

	if started {
		payload := domain.IncomingCallPayload{Caller: member.Username}
		h.broadcastToRoom(member.Room, newEvent(domain.EventIncomingCall, payload), c.ID)
	}

	// The joiner originates an offer toward each existing participant.
	h.sendTo(c.ID, newEvent(domain.EventAllUsersInCall, existing))

	// Existing participants only answer; they never initiate toward the
	// newcomer.
	for _, id := range existing {
		h.sendTo(id, newEvent(domain.EventUserConnectedToCall, c.ID))
	}
}

// cleanupCall removes the connection from its call, if any, and notifies the
// remaining participants. When the last participant leaves, the whole chat
// room hears that the call ended. Shared by leave-call and disconnect.
func (h *Hub) cleanupCall(connID string) {
	room, remaining, ended, ok := h.calls.Leave(connID)
	if !ok {
		return
	}

	for _, id := range remaining {
		h.sendTo(id, newEvent(domain.EventUserLeftCall, connID))
	}

	if ended {
		h.broadcastToRoom(room, newEvent(domain.EventCallEnded, nil), "")
	}
}
