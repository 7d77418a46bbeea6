package ws

import (
	"testing"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "alice", "general")

	m, ok := r.Lookup("c1")
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if m.Username != "alice" || m.Room != "general" {
		t.Errorf("unexpected member: %+v", m)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("expected lookup of unknown id to fail")
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "alice", "general")
	r.Register("c1", "alice", "random")

	m, _ := r.Lookup("c1")
	if m.Room != "random" {
		t.Errorf("expected room to be overwritten, got %q", m.Room)
	}
	if r.Size() != 1 {
		t.Errorf("expected size 1, got %d", r.Size())
	}
}

func TestRegistry_MembersOfInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "alice", "general")
	r.Register("c2", "bob", "random")
	r.Register("c3", "carol", "general")

	members := r.MembersOf("general")
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Username != "alice" || members[1].Username != "carol" {
		t.Errorf("unexpected order: %+v", members)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "alice", "general")
	r.Register("c2", "bob", "general")

	r.Remove("c1")
	r.Remove("c1") // removing twice is a no-op

	if _, ok := r.Lookup("c1"); ok {
		t.Error("expected c1 to be gone")
	}
	members := r.MembersOf("general")
	if len(members) != 1 || members[0].Username != "bob" {
		t.Errorf("unexpected members after removal: %+v", members)
	}
}

// Membership equals the set of connections whose most recent join targeted
// the room and that have not since disconnected.
func TestRegistry_MembershipFollowsLatestJoin(t *testing.T) {
	r := NewRegistry()
	r.Register("c1", "alice", "general")
	r.Register("c2", "bob", "general")
	r.Register("c2", "bob", "random") // bob switches rooms
	r.Register("c3", "carol", "general")
	r.Remove("c3") // carol disconnects

	members := r.MembersOf("general")
	if len(members) != 1 || members[0].Username != "alice" {
		t.Errorf("expected only alice in general, got %+v", members)
	}
	if got := r.MembersOf("random"); len(got) != 1 || got[0].Username != "bob" {
		t.Errorf("expected only bob in random, got %+v", got)
	}
}
