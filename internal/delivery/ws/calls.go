package ws

// CallTracker maintains, per room, the set of connections currently in a
// call. A connection belongs to at most one call at a time, and a call set
// is deleted as soon as it empties; there is no call with zero participants.
// Like Registry, it is owned by the hub loop and not locked.
type CallTracker struct {
	rooms  map[string][]string // room -> participant conn ids, join order
	byConn map[string]string   // conn id -> room of its call
}

// NewCallTracker creates an empty CallTracker
func NewCallTracker() *CallTracker {
	return &CallTracker{
		rooms:  make(map[string][]string),
		byConn: make(map[string]string),
	}
}

// Join adds connID to the room's call. It returns the participants that were
// already in the call (the signaling responders; the joiner initiates toward
// each of them) and whether this join started the call. Joining a call the
// connection is already in returns the other participants unchanged.
func (t *CallTracker) Join(room, connID string) (existing []string, started bool) {
	participants := t.rooms[room]
	existing = make([]string, 0, len(participants))
	already := false
	for _, id := range participants {
		if id == connID {
			already = true
			continue
		}
		existing = append(existing, id)
	}
	if already {
		return existing, false
	}
	started = len(participants) == 0
	t.rooms[room] = append(participants, connID)
	t.byConn[connID] = room
	return existing, started
}

// Leave removes connID from its call, if it is in one. It returns the call's
// room, the participants that remain, and whether the call ended (the set
// emptied and was deleted).
func (t *CallTracker) Leave(connID string) (room string, remaining []string, ended, ok bool) {
	room, ok = t.byConn[connID]
	if !ok {
		return "", nil, false, false
	}
	delete(t.byConn, connID)

	participants := t.rooms[room]
	remaining = make([]string, 0, len(participants))
	for _, id := range participants {
		if id != connID {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		delete(t.rooms, room)
		return room, remaining, true, true
	}
	t.rooms[room] = remaining
	return room, remaining, false, true
}

// Participants returns the conn ids in the room's call, in join order.
func (t *CallTracker) Participants(room string) []string {
	participants := t.rooms[room]
	out := make([]string, len(participants))
	copy(out, participants)
	return out
}

// InCall reports whether the connection is currently in any call.
func (t *CallTracker) InCall(connID string) bool {
	_, ok := t.byConn[connID]
	return ok
}
