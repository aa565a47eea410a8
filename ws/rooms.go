package ws

// Color identifies a player's stones. The creator always plays black and
// moves first; the joiner plays white.
type Color string

const (
	ColorBlack Color = "black"
	ColorWhite Color = "white"
)

// Player is the room-scoped view of a connected user.
type Player struct {
	ConnectionID string `json:"connectionId"`
	Username     string `json:"username"`
	Color        Color  `json:"color"`
}

// Room holds at most two players. Started flips to true once via the join
// path and is never reset, so a room a player later left stays closed to new
// joiners. Turn is black at creation and is not interpreted by the relay;
// moves travel as opaque gameData payloads.
type Room struct {
	ID      string
	Players []Player
	Started bool
	Turn    Color
}

func NewRoom(id string, creator Player) *Room {
	return &Room{
		ID:      id,
		Players: []Player{creator},
		Turn:    ColorBlack,
	}
}

// RoomSummary is the directory-listing view of a room.
type RoomSummary struct {
	ID          string   `json:"id"`
	Players     []Player `json:"players"`
	PlayerCount int      `json:"playerCount"`
}
