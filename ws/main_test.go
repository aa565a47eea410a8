package ws

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testManager *Manager

func TestMain(m *testing.M) {
	testManager = NewManager(zap.NewNop())

	os.Exit(m.Run())
}

func newTestManager() *Manager {
	return NewManager(zap.NewNop())
}

// newTestClient builds a client without a live websocket connection. The
// pumps are never started, so delivered events queue on the egress buffer
// where tests can inspect them.
func newTestClient(m *Manager) *Client {
	c := NewClient(nil, m)
	m.addClient(c)
	return c
}

func mustEvent(t *testing.T, evtType string, payload any) Event {
	t.Helper()

	evt, err := NewEvent(evtType, payload)
	require.NoError(t, err)

	return evt
}

// receiveEvent pops the next queued event, failing if none is pending.
func receiveEvent(t *testing.T, c *Client) Event {
	t.Helper()

	select {
	case evt := <-c.egress:
		return evt
	default:
		t.Fatal("no event queued on egress")
		return Event{}
	}
}

func decodePayload[P any](t *testing.T, evt Event, wantType string) P {
	t.Helper()

	require.Equal(t, wantType, evt.Type)

	var payload P
	require.NoError(t, json.Unmarshal(evt.Payload, &payload))

	return payload
}

func requireNoEvents(t *testing.T, c *Client) {
	t.Helper()
	require.Zero(t, len(c.egress), "expected no queued events")
}

// createGame runs the create handler for c and returns the acknowledgment.
func createGame(t *testing.T, c *Client, username string) PayloadGameCreated {
	t.Helper()

	evt := mustEvent(t, EventCreateGame, PayloadCreateGame{Username: username})
	require.NoError(t, CreateGameHandler(context.Background(), evt, c))

	return decodePayload[PayloadGameCreated](t, receiveEvent(t, c), EventGameCreated)
}

// joinGame runs the join handler for c without consuming any queued events.
func joinGame(t *testing.T, c *Client, username, roomID string) {
	t.Helper()

	evt := mustEvent(t, EventJoinGame, PayloadJoinGame{Username: username, RoomID: roomID})
	require.NoError(t, JoinGameHandler(context.Background(), evt, c))
}
