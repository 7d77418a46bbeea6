package ws

import (
	"encoding/json"

	"github.com/rkradadiya/chatroom/internal/domain"
)

// relaySignal forwards an opaque offer/answer/ICE payload to its target
// connection. The sender field is stamped by the server; whatever the client
// put there is discarded, so a sender identity cannot be spoofed. The body
// is never inspected, and a stale target is silently absorbed.
func (h *Hub) relaySignal(kind domain.EventType, c *Client, raw json.RawMessage) {
	var p domain.SignalPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Target == "" {
		return
	}

	target := p.Target
	p.Target = ""
	p.Sender = c.ID

	h.sendTo(target, newEvent(kind, p))
}
