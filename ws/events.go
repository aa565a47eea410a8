package ws

import (
	"context"
	"encoding/json"
)

type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type EventHandler func(ctx context.Context, evt Event, c *Client) error

const (
	// inbound
	EventCreateGame = "createGame"
	EventJoinGame   = "joinGame"
	EventGameData   = "gameData"
	EventLeaveGame  = "leaveGame"

	// outbound
	EventGameCreated = "gameCreated"
	EventGameJoined  = "gameJoined"
	EventJoinError   = "joinError"
	EventGameStarted = "gameStarted"
	EventPlayerLeft  = "playerLeft"
	EventError       = "error"
)

type PayloadCreateGame struct {
	Username string `json:"username" validate:"required"`
}

type PayloadJoinGame struct {
	Username string `json:"username" validate:"required"`
	RoomID   string `json:"roomId" validate:"required"`
}

type PayloadGameCreated struct {
	RoomID string `json:"roomId"`
	Color  Color  `json:"color"`
}

type PayloadGameJoined struct {
	RoomID string `json:"roomId"`
	Color  Color  `json:"color"`
}

type PayloadJoinError struct {
	Message string `json:"message"`
}

type PayloadGameStarted struct {
	Players []Player `json:"players"`
	Turn    Color    `json:"turn"`
}

type PayloadPlayerLeft struct {
	ConnectionID string `json:"connectionId"`
	Username     string `json:"username"`
}

type PayloadError struct {
	Message string `json:"message"`
}

func NewEvent(evtType string, payload any) (Event, error) {
	b, err := json.Marshal(payload)

	if err != nil {
		return Event{}, err
	}

	return Event{
		Type:    evtType,
		Payload: b,
	}, nil
}

func NewErrorEvent(message string) (Event, error) {
	return NewEvent(EventError, PayloadError{Message: message})
}

func NewJoinErrorEvent(message string) (Event, error) {
	return NewEvent(EventJoinError, PayloadJoinError{Message: message})
}
