package domain

// ==== WebSocket Constants ====

// MaxMessageSize is the maximum allowed WebSocket frame size in bytes.
// SDP offers can run to tens of kilobytes, so this is generous.
const MaxMessageSize = 64 * 1024

// ==== History Constants ====

// DefaultHistoryLimit is the number of persisted messages replayed to a
// freshly connected client.
const DefaultHistoryLimit = 15
