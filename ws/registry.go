package ws

// User is the registry record binding a live connection to its room
// membership. Records exist from create/join until leave or disconnect.
type User struct {
	ConnectionID string
	Username     string
	RoomID       string
	Color        Color
}

// UserRegistry maps connection ids to User records. It carries no lock of
// its own; the owning Manager synchronizes all access.
type UserRegistry struct {
	users map[string]*User
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		users: make(map[string]*User),
	}
}

// Register inserts or overwrites the record for connectionID. A connection
// holds at most one membership at a time, so overwriting is safe.
func (r *UserRegistry) Register(connectionID, username, roomID string, color Color) {
	r.users[connectionID] = &User{
		ConnectionID: connectionID,
		Username:     username,
		RoomID:       roomID,
		Color:        color,
	}
}

func (r *UserRegistry) Lookup(connectionID string) (*User, bool) {
	user, ok := r.users[connectionID]
	return user, ok
}

// Remove deletes the record for connectionID. Removing an absent id is a
// no-op.
func (r *UserRegistry) Remove(connectionID string) {
	delete(r.users, connectionID)
}
