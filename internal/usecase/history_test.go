package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rkradadiya/chatroom/internal/domain"
)

// fakeStore is an in-memory Store for testing
type fakeStore struct {
	records []domain.ChatRecord
	saveErr error
}

func (f *fakeStore) SaveMessage(_ context.Context, rec domain.ChatRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeStore) RecentMessages(_ context.Context, limit int) ([]domain.ChatRecord, error) {
	start := len(f.records) - limit
	if start < 0 {
		start = 0
	}
	out := make([]domain.ChatRecord, len(f.records[start:]))
	copy(out, f.records[start:])
	return out, nil
}

func TestMessageHistory_Append(t *testing.T) {
	store := &fakeStore{}
	history := NewMessageHistory(store, 10)

	rec := domain.ChatRecord{Username: "alice", Message: "hi", Timestamp: time.Now()}
	if err := history.Append(context.Background(), rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(store.records))
	}
}

func TestMessageHistory_AppendPropagatesError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	history := NewMessageHistory(store, 10)

	err := history.Append(context.Background(), domain.ChatRecord{Username: "bob", Message: "x"})
	if err == nil {
		t.Fatal("expected error from store")
	}
}

func TestMessageHistory_SnapshotLimit(t *testing.T) {
	store := &fakeStore{}
	history := NewMessageHistory(store, 2)

	for i := 0; i < 4; i++ {
		store.records = append(store.records, domain.ChatRecord{
			Username:  "alice",
			Message:   string(rune('a' + i)),
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		})
	}

	records, err := history.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Message != "c" || records[1].Message != "d" {
		t.Errorf("expected most recent two ascending, got %q %q", records[0].Message, records[1].Message)
	}
}

func TestNewMessageHistoryDefaultsLimit(t *testing.T) {
	history := NewMessageHistory(&fakeStore{}, 0)
	if history.limit != domain.DefaultHistoryLimit {
		t.Errorf("expected default limit %d, got %d", domain.DefaultHistoryLimit, history.limit)
	}
}
