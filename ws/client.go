package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	pongWait     = 10 * time.Second
	pingInterval = (pongWait * 9) / 10
)

const (
	maxMessageSize = 8192
	egressBuffer   = 32
)

type Client struct {
	ID         string
	connection *websocket.Conn
	manager    *Manager
	egress     chan Event
	err        chan error
}

func NewClient(conn *websocket.Conn, manager *Manager) *Client {
	return &Client{
		ID:         uuid.NewString(),
		connection: conn,
		manager:    manager,
		egress:     make(chan Event, egressBuffer),
		err:        make(chan error, 1),
	}
}

// Reads incoming messages from the client's websocket connection
func (c *Client) readMessages(ctx context.Context) {
	c.connection.SetReadLimit(maxMessageSize)

	if err := c.connection.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.handleError(err)
		return
	}

	c.connection.SetPongHandler(c.pongHandler)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, payload, err := c.connection.ReadMessage()

			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
					c.manager.logger.Warn("unexpected socket closure", zap.String("connection", c.ID), zap.Error(err))
				}
				c.handleError(err)
				return
			}

			var evt Event

			if err := json.Unmarshal(payload, &evt); err != nil {
				c.sendError("cannot unmarshal json payload")
				continue
			}

			if err := c.manager.routeEvent(ctx, evt, c); err != nil {
				c.manager.logger.Warn("error handling event",
					zap.String("type", evt.Type),
					zap.String("connection", c.ID),
					zap.Error(err),
				)
				c.sendError(err.Error())
			}
		}
	}
}

// writes messages pushed to the client's egress channel
func (c *Client) writeMessages(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)

	defer func() {
		ticker.Stop()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-c.egress:
			if !ok {
				return
			}

			data, err := json.Marshal(message)

			if err != nil {
				c.handleError(err)
				return
			}

			if err := c.connection.WriteMessage(websocket.TextMessage, data); err != nil {
				c.handleError(err)
				return
			}
		case <-ticker.C:
			if err := c.connection.WriteMessage(websocket.PingMessage, []byte("")); err != nil {
				c.handleError(err)
				return
			}
		}
	}
}

// Sets a new read deadline when a pong is received for a ping message.
func (c *Client) pongHandler(pongMsg string) error {
	return c.connection.SetReadDeadline(time.Now().Add(pongWait))
}

// Push error to the client error channel. ServeWS waits on the channel and
// tears the connection down when either pump reports an error.
func (c *Client) handleError(e error) {
	select {
	case c.err <- e:
	default:
	}
}

// Returns the error channel
func (c *Client) Err() chan error {
	return c.err
}

// send queues evt for delivery by the client's writer goroutine. A client
// whose egress buffer is full is stalled; the event is dropped rather than
// blocking the caller's critical section.
func (c *Client) send(evt Event) {
	select {
	case c.egress <- evt:
	default:
		c.manager.logger.Warn("egress full, dropping event",
			zap.String("connection", c.ID),
			zap.String("type", evt.Type),
		)
	}
}

func (c *Client) sendError(message string) {
	evt, err := NewErrorEvent(message)

	if err != nil {
		c.manager.logger.Error("error creating error event", zap.Error(err))
		return
	}

	c.send(evt)
}

func (c *Client) sendJoinError(message string) error {
	evt, err := NewJoinErrorEvent(message)

	if err != nil {
		return err
	}

	c.send(evt)
	return nil
}
