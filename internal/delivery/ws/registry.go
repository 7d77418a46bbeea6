package ws

// Member is the registry record for one live connection.
type Member struct {
	ConnID   string
	Username string
	Room     string
}

// Registry maps connection ids to their {username, room} records. It keeps
// insertion order for membership listings. It is not safe for concurrent
// use; the hub loop owns all access.
type Registry struct {
	members map[string]*Member
	order   []string
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{members: make(map[string]*Member)}
}

// Register records a connection. Re-registering the same id overwrites the
// prior entry but keeps its original position.
func (r *Registry) Register(connID, username, room string) {
	if m, ok := r.members[connID]; ok {
		m.Username = username
		m.Room = room
		return
	}
	r.members[connID] = &Member{ConnID: connID, Username: username, Room: room}
	r.order = append(r.order, connID)
}

// Lookup returns the record for a connection id, if registered.
func (r *Registry) Lookup(connID string) (Member, bool) {
	if m, ok := r.members[connID]; ok {
		return *m, true
	}
	return Member{}, false
}

// Remove deletes a connection's record. Removing an unknown id is a no-op.
func (r *Registry) Remove(connID string) {
	if _, ok := r.members[connID]; !ok {
		return
	}
	delete(r.members, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// MembersOf returns the records of every connection in the room, in
// registration order.
func (r *Registry) MembersOf(room string) []Member {
	var members []Member
	for _, id := range r.order {
		if m := r.members[id]; m.Room == room {
			members = append(members, *m)
		}
	}
	return members
}

// Size returns the number of registered connections.
func (r *Registry) Size() int {
	return len(r.members)
}
