package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"linklogic/internal/app"
	"linklogic/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection
type Client struct {
	conn    *websocket.Conn
	hub     *app.Hub
	session *app.RoomSession
	ctx     app.Ctx
	send    chan []byte
	done    chan struct{}
	logger  *slog.Logger
	mu      sync.Mutex
	closed  bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, hub *app.Hub, session *app.RoomSession, ctx app.Ctx, logger *slog.Logger) *Client {
	return &Client{
		conn:    conn,
		hub:     hub,
		session: session,
		ctx:     ctx,
		send:    make(chan []byte, sendBufferSize),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// GetPlayerID returns the player ID for this client
func (c *Client) GetPlayerID() string {
	return c.ctx.PlayerID
}

// Send implements app.ClientConnection interface
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn("send buffer full, message dropped", "playerID", c.ctx.PlayerID)
		return nil
	}
}

// Close implements app.ClientConnection interface
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.session.UnregisterClient(c.ctx.PlayerID)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgJoinRoom:
		c.reportErr(c.session.Join(c.ctx))
	case MsgChat:
		var p ChatPayload
		if !c.decode(msg.Payload, &p) {
			return
		}
		c.reportErr(c.session.SendChat(c.ctx, p.Message))
	case MsgUpdateSettings:
		var p UpdateSettingsPayload
		if !c.decode(msg.Payload, &p) {
			return
		}
		c.reportErr(c.session.UpdateSettings(c.ctx, domain.GetPreset(p.Level).Settings()))
	case MsgStartGame:
		c.reportErr(c.session.StartGame(c.ctx))
	case MsgSubmitLink:
		var p SubmitLinkPayload
		if !c.decode(msg.Payload, &p) {
			return
		}
		c.reportErr(c.session.Submit(c.ctx, p.Words, p.LinkWord))
	case MsgToggleChallenge:
		var p ToggleChallengePayload
		if !c.decode(msg.Payload, &p) {
			return
		}
		c.reportErr(c.session.ToggleChallenge(c.ctx, p.TargetPlayerID, p.Index))
	case MsgSubmitDefense:
		var p SubmitDefensePayload
		if !c.decode(msg.Payload, &p) {
			return
		}
		c.reportErr(c.session.SubmitDefense(c.ctx, p.Index, p.Defense))
	case MsgCastVote:
		var p CastVotePayload
		if !c.decode(msg.Payload, &p) {
			return
		}
		c.reportErr(c.session.CastVote(c.ctx, p.TargetPlayerID, p.Index, p.Vote))
	case MsgMarkReady:
		c.reportErr(c.session.MarkReady(c.ctx))
	case MsgPlayAgain:
		c.reportErr(c.session.PlayAgain(c.ctx))
	case MsgNewGame:
		c.reportErr(c.hub.NewGame(c.session.Code(), c.ctx))
	case MsgPing:
		c.sendPong()
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

// decode unmarshals a payload, reporting a protocol error on failure
func (c *Client) decode(raw json.RawMessage, out interface{}) bool {
	if err := json.Unmarshal(raw, out); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return false
	}
	return true
}

// reportErr maps a domain error onto the wire error vocabulary. A nil error
// sends nothing; the room state broadcast is the positive acknowledgment.
func (c *Client) reportErr(err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		c.sendError(ErrCodeRoomNotFound, "Room not found")
	case errors.Is(err, domain.ErrRoomFull):
		c.sendError(ErrCodeRoomFull, "Room is full")
	case errors.Is(err, domain.ErrNotHost):
		c.sendError(ErrCodeNotHost, "Only the host can do that")
	case errors.Is(err, domain.ErrInvalidPhase):
		c.sendError(ErrCodeInvalidPhase, "Not available in this phase")
	case errors.Is(err, domain.ErrRoundClosed):
		c.sendError(ErrCodeRoundClosed, "The round is closed")
	case errors.Is(err, domain.ErrSelfChallenge):
		c.sendError(ErrCodeSelfChallenge, "Cannot challenge your own submission")
	case errors.Is(err, domain.ErrSelfVote):
		c.sendError(ErrCodeSelfVote, "Cannot vote on your own submission")
	case errors.Is(err, domain.ErrChallengesLocked):
		c.sendError(ErrCodeChallengesLocked, "Challenges are locked")
	case errors.Is(err, domain.ErrValidation):
		c.sendError(ErrCodeValidation, err.Error())
	default:
		c.logger.Error("operation failed", "playerID", c.ctx.PlayerID, "error", err)
		c.sendError(ErrCodeInternalError, "Internal error")
	}
}

// sendConnected sends the connected confirmation to the client
func (c *Client) sendConnected() {
	c.Send(NewServerMessage(MsgConnected, &ConnectedPayload{
		PlayerID: c.ctx.PlayerID,
		RoomCode: c.session.Code(),
	}))
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	c.Send(NewServerMessage(MsgError, &ErrorPayload{
		Code:    code,
		Message: message,
	}))
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	c.Send(NewServerMessage(MsgPong, nil))
}
