package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin,
	}
)

type ClientList map[string]*Client

// Manager owns the two registries and the per-room subscription lists. Its
// embedded lock serializes every compound room mutation; broadcasts happen
// inside the same critical section as the mutation they announce, so members
// of one room observe events in application order.
type Manager struct {
	sync.RWMutex
	clients  ClientList
	subs     map[string][]*Client
	users    *UserRegistry
	rooms    *RoomDirectory
	handlers map[string]EventHandler
	validate *validator.Validate
	logger   *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	m := &Manager{
		clients:  make(ClientList),
		subs:     make(map[string][]*Client),
		users:    NewUserRegistry(),
		rooms:    NewRoomDirectory(),
		handlers: make(map[string]EventHandler),
		validate: validator.New(),
		logger:   logger,
	}

	m.setupEventHandlers()

	return m
}

func (m *Manager) setupEventHandlers() {
	m.handlers[EventCreateGame] = CreateGameHandler
	m.handlers[EventJoinGame] = JoinGameHandler
	m.handlers[EventGameData] = GameDataHandler
	m.handlers[EventLeaveGame] = LeaveGameHandler
}

func (m *Manager) routeEvent(ctx context.Context, evt Event, c *Client) error {
	if handler, ok := m.handlers[evt.Type]; ok {
		if err := handler(ctx, evt, c); err != nil {
			return err
		}

		return nil
	}

	return errors.New("there is no such event type")
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	m.clients[client.ID] = client
}

// removeClient is the transport-disconnect teardown path. It drives the same
// room mutation as an explicit leaveGame, then forgets the connection.
func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()

	m.dropMembership(client)

	if _, ok := m.clients[client.ID]; ok {
		if client.connection != nil {
			client.connection.Close()
		}
		delete(m.clients, client.ID)
	}
}

// subscribe adds the client to the room's broadcast list. Callers hold the
// manager lock.
func (m *Manager) subscribe(roomID string, c *Client) {
	if !slices.Contains(m.subs[roomID], c) {
		m.subs[roomID] = append(m.subs[roomID], c)
	}
}

// unsubscribe removes the client from the room's broadcast list. Callers
// hold the manager lock.
func (m *Manager) unsubscribe(roomID string, c *Client) {
	room := m.subs[roomID]

	if index := slices.Index(room, c); index >= 0 {
		m.subs[roomID] = append(room[:index], room[index+1:]...)
	}

	if len(m.subs[roomID]) == 0 {
		delete(m.subs, roomID)
	}
}

// emitToRoom delivers evt to every client subscribed to roomID, except the
// ones listed in skip. Callers hold the manager lock.
func (m *Manager) emitToRoom(roomID string, evt Event, skip ...*Client) {
	for _, client := range m.subs[roomID] {
		if slices.Contains(skip, client) {
			continue
		}
		client.send(evt)
	}
}

// dropMembership removes the connection's room membership, deleting the room
// if it is now empty and notifying the remaining member otherwise. It is the
// shared path behind an explicit leaveGame and a transport disconnect, and
// is a no-op for connections that never joined a room. Callers hold the
// manager lock.
func (m *Manager) dropMembership(c *Client) {
	user, ok := m.users.Lookup(c.ID)

	if !ok || user.RoomID == "" {
		return
	}

	m.unsubscribe(user.RoomID, c)
	m.users.Remove(c.ID)

	room, ok := m.rooms.Get(user.RoomID)

	if !ok {
		return
	}

	room.Players = lo.Reject(room.Players, func(p Player, _ int) bool {
		return p.ConnectionID == c.ID
	})

	if len(room.Players) == 0 {
		m.rooms.Delete(room.ID)
		m.logger.Info("room deleted", zap.String("room", room.ID))
		return
	}

	evt, err := NewEvent(EventPlayerLeft, PayloadPlayerLeft{
		ConnectionID: c.ID,
		Username:     user.Username,
	})

	if err != nil {
		m.logger.Error("error creating playerLeft event", zap.Error(err))
		return
	}

	m.emitToRoom(room.ID, evt)
	m.logger.Info("player left room",
		zap.String("room", room.ID),
		zap.String("connection", c.ID),
	)
}

// ListJoinable snapshots the rooms still waiting for a second player; it
// backs the HTTP room directory.
func (m *Manager) ListJoinable() []RoomSummary {
	m.RLock()
	defer m.RUnlock()

	return m.rooms.ListJoinable()
}

// Websocket connection handler
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)

	if err != nil {
		m.logger.Error("error upgrading to websocket connection", zap.Error(err))
		return
	}

	client := NewClient(conn, m)
	m.addClient(client)

	m.logger.Info("client connected", zap.String("connection", client.ID))

	ctx, cancel := context.WithCancel(r.Context())

	defer func() {
		cancel()
		m.removeClient(client)
	}()

	go client.readMessages(ctx)
	go client.writeMessages(ctx)

	err = <-client.Err()

	m.logger.Info("client disconnected",
		zap.String("connection", client.ID),
		zap.Error(err),
	)
}

// Peers may open the game from any LAN address the operator hands out.
func checkOrigin(r *http.Request) bool {
	return true
}
