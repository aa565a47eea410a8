package ws

import (
	"context"
	"encoding/json"

	"github.com/Yxf-20160325/gomoku/util"
	"go.uber.org/zap"
)

const (
	MessageRoomNotFound = "room not found"
	MessageRoomFull     = "room is full"
)

// CreateGameHandler builds a fresh one-player room, with the creator playing
// black, and acknowledges it with a gameCreated event.
func CreateGameHandler(ctx context.Context, evt Event, c *Client) error {
	var payload PayloadCreateGame

	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	m := c.manager

	m.Lock()
	defer m.Unlock()

	roomID := util.NewRoomID()

	creator := Player{
		ConnectionID: c.ID,
		Username:     payload.Username,
		Color:        ColorBlack,
	}

	m.rooms.Create(NewRoom(roomID, creator))
	m.users.Register(c.ID, payload.Username, roomID, ColorBlack)
	m.subscribe(roomID, c)

	m.logger.Info("room created",
		zap.String("room", roomID),
		zap.String("connection", c.ID),
		zap.String("username", payload.Username),
	)

	created, err := NewEvent(EventGameCreated, PayloadGameCreated{
		RoomID: roomID,
		Color:  ColorBlack,
	})

	if err != nil {
		return err
	}

	c.send(created)
	return nil
}

// JoinGameHandler seats the caller as white in an open room and announces
// the started game to both players. A bad room id or an occupied room is
// reported privately with a joinError; nothing is broadcast. A room that
// already started once stays closed even if a player has since left.
func JoinGameHandler(ctx context.Context, evt Event, c *Client) error {
	var payload PayloadJoinGame

	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		return err
	}

	if err := c.manager.validate.Struct(payload); err != nil {
		return err
	}

	m := c.manager

	m.Lock()
	defer m.Unlock()

	room, ok := m.rooms.Get(payload.RoomID)

	if !ok {
		return c.sendJoinError(MessageRoomNotFound)
	}

	if room.Started || len(room.Players) >= 2 {
		return c.sendJoinError(MessageRoomFull)
	}

	joiner := Player{
		ConnectionID: c.ID,
		Username:     payload.Username,
		Color:        ColorWhite,
	}

	room.Players = append(room.Players, joiner)
	room.Started = true

	m.users.Register(c.ID, payload.Username, room.ID, ColorWhite)
	m.subscribe(room.ID, c)

	m.logger.Info("game started",
		zap.String("room", room.ID),
		zap.String("connection", c.ID),
		zap.String("username", payload.Username),
	)

	joined, err := NewEvent(EventGameJoined, PayloadGameJoined{
		RoomID: room.ID,
		Color:  ColorWhite,
	})

	if err != nil {
		return err
	}

	c.send(joined)

	started, err := NewEvent(EventGameStarted, PayloadGameStarted{
		Players: append([]Player(nil), room.Players...),
		Turn:    room.Turn,
	})

	if err != nil {
		return err
	}

	m.emitToRoom(room.ID, started)
	return nil
}

// GameDataHandler relays the event verbatim to the other member of the
// sender's room. The payload is opaque; it is never parsed here. A sender
// without a room is dropped silently.
func GameDataHandler(ctx context.Context, evt Event, c *Client) error {
	m := c.manager

	m.RLock()
	defer m.RUnlock()

	user, ok := m.users.Lookup(c.ID)

	if !ok || user.RoomID == "" {
		return nil
	}

	m.emitToRoom(user.RoomID, evt, c)
	return nil
}

// LeaveGameHandler is the voluntary counterpart of a transport disconnect;
// both run the same room mutation.
func LeaveGameHandler(ctx context.Context, evt Event, c *Client) error {
	m := c.manager

	m.Lock()
	defer m.Unlock()

	m.dropMembership(c)
	return nil
}
