package ws

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/rkradadiya/chatroom/internal/domain"
)

var (
	// ErrUnknownEvent is returned for frames with an unrecognized type
	ErrUnknownEvent = errors.New("unknown event type")

	// ErrInvalidPayload is returned for frames missing required fields
	ErrInvalidPayload = errors.New("invalid event payload")
)

// ParseEvent decodes and validates one inbound frame. Every event kind has a
// closed payload shape; anything that does not decode into it, or misses a
// required field, is rejected here before dispatch.
func ParseEvent(data []byte) (domain.Event, error) {
	var env domain.Event
	if err := json.Unmarshal(data, &env); err != nil {
		return env, err
	}

	switch env.Type {
	case domain.EventJoinRoom:
		var p domain.JoinPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return env, err
		}
		if strings.TrimSpace(p.Username) == "" || strings.TrimSpace(p.Room) == "" {
			return env, ErrInvalidPayload
		}

	case domain.EventChatMessage:
		var p domain.ChatPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return env, err
		}
		if p.Text == "" {
			return env, ErrInvalidPayload
		}

	case domain.EventTyping, domain.EventJoinCall, domain.EventLeaveCall:
		// No payload required

	case domain.EventOffer, domain.EventAnswer, domain.EventICECandidate:
		var p domain.SignalPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return env, err
		}
		if p.Target == "" {
			return env, ErrInvalidPayload
		}

	default:
		return env, ErrUnknownEvent
	}

	return env, nil
}
