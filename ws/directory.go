package ws

import "github.com/samber/lo"

// RoomDirectory maps room ids to rooms. Like the UserRegistry it carries no
// lock of its own; the owning Manager synchronizes all access.
type RoomDirectory struct {
	rooms map[string]*Room
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{
		rooms: make(map[string]*Room),
	}
}

func (d *RoomDirectory) Create(room *Room) string {
	d.rooms[room.ID] = room
	return room.ID
}

func (d *RoomDirectory) Get(id string) (*Room, bool) {
	room, ok := d.rooms[id]
	return room, ok
}

// Delete removes the room with the given id. Deleting an absent id is a
// no-op.
func (d *RoomDirectory) Delete(id string) {
	delete(d.rooms, id)
}

// ListJoinable snapshots every room that has not started yet. Order is
// unspecified.
func (d *RoomDirectory) ListJoinable() []RoomSummary {
	open := lo.Filter(lo.Values(d.rooms), func(room *Room, _ int) bool {
		return !room.Started
	})

	return lo.Map(open, func(room *Room, _ int) RoomSummary {
		return RoomSummary{
			ID:          room.ID,
			Players:     append([]Player(nil), room.Players...),
			PlayerCount: len(room.Players),
		}
	})
}
