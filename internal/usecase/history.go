package usecase

import (
	"context"

	"github.com/rkradadiya/chatroom/internal/domain"
)

// Store is the persistence collaborator for chat messages. The concrete
// implementation lives in internal/storage.
type Store interface {
	SaveMessage(ctx context.Context, rec domain.ChatRecord) error
	RecentMessages(ctx context.Context, limit int) ([]domain.ChatRecord, error)
}

// MessageHistory appends and replays persisted chat messages.
type MessageHistory struct {
	store Store
	limit int
}

// NewMessageHistory creates a MessageHistory over the given store. limit is
// the number of records a Snapshot returns.
func NewMessageHistory(store Store, limit int) *MessageHistory {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	return &MessageHistory{store: store, limit: limit}
}

// Append persists one record. The error is returned so the caller decides
// whether to surface it; the coordinator logs and moves on.
func (h *MessageHistory) Append(ctx context.Context, rec domain.ChatRecord) error {
	return h.store.SaveMessage(ctx, rec)
}

// Snapshot returns the most recent messages sorted ascending by timestamp,
// ready to replay to a freshly connected client.
func (h *MessageHistory) Snapshot(ctx context.Context) ([]domain.ChatRecord, error) {
	return h.store.RecentMessages(ctx, h.limit)
}
