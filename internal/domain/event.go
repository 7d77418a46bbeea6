package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of event being sent over the websocket.
// Inbound and outbound events share one namespace; the names are the wire
// protocol the browser client speaks.
type EventType string

const (
	// Inbound events
	EventJoinRoom     EventType = "joinRoom"
	EventChatMessage  EventType = "chatMessage"
	EventTyping       EventType = "typing" // also outbound (the label broadcast)
	EventJoinCall     EventType = "join-call"
	EventLeaveCall    EventType = "leave-call"
	EventOffer        EventType = "offer" // relayed, also outbound
	EventAnswer       EventType = "answer"
	EventICECandidate EventType = "ice-candidate"

	// Outbound events
	EventNotification        EventType = "notification"
	EventUserList            EventType = "userList"
	EventMessage             EventType = "message"
	EventOngoingCall         EventType = "ongoing-call"
	EventIncomingCall        EventType = "incoming-call"
	EventAllUsersInCall      EventType = "all-users-in-call"
	EventUserConnectedToCall EventType = "user-connected-to-call"
	EventUserLeftCall        EventType = "user-left-call"
	EventCallEnded           EventType = "call-ended"
	EventLoadMessages        EventType = "loadMessages"
)

// Event is the envelope for every frame in both directions.
type Event struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinPayload is the payload for joinRoom events.
type JoinPayload struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// ChatPayload is the payload for chatMessage events.
type ChatPayload struct {
	Text string `json:"text"`
}

// SignalPayload carries one offer/answer/ICE frame between two connections.
// Body is opaque to the server. Target is set by the sending client; Sender
// is stamped by the server before delivery so clients cannot spoof it.
type SignalPayload struct {
	Target string          `json:"target,omitempty"`
	Sender string          `json:"sender,omitempty"`
	Body   json.RawMessage `json:"body"`
}

// MemberInfo is one entry of a userList snapshot.
type MemberInfo struct {
	Username string `json:"username"`
}

// OngoingCallPayload tells a room joiner that a call is already running.
type OngoingCallPayload struct {
	Participants int `json:"participants"`
}

// IncomingCallPayload is the ringing signal sent when a call starts.
type IncomingCallPayload struct {
	Caller string `json:"caller"`
}

// ChatRecord is the persisted form of one chat message.
type ChatRecord struct {
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
