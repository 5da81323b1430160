package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Result labels mirror metrics.Result*; kept local so the server does not import metrics
const (
	resultOK          = "ok"
	resultError       = "error"
	resultRateLimited = "rate_limited"
)

// client is one WebSocket connection
// writeLoop is the only writer on conn; readLoop queues replies through send
type client struct {
	srv     *Server
	conn    *websocket.Conn
	limiter *rate.Limiter
	send    chan Message

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(srv *Server, conn *websocket.Conn, limiter *rate.Limiter) *client {
	return &client{
		srv:     srv,
		conn:    conn,
		limiter: limiter,
		send:    make(chan Message, sendBuffer),
		done:    make(chan struct{}),
	}
}

// close signals writeLoop, which sends the close frame and releases conn
func (c *client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// enqueue drops the reply when the client is not draining
func (c *client) enqueue(m Message) {
	select {
	case c.send <- m:
	case <-c.done:
	default:
		log.Printf("server: client %s send buffer full, dropping %s", c.conn.RemoteAddr(), m.Type)
	}
}

func (c *client) readLoop() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: read: %v", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.srv.record("unknown", resultError)
			c.enqueue(Message{Type: MsgError, Error: "malformed command"})
			continue
		}

		if !c.limiter.Allow() {
			c.srv.record(metricLabel(cmd.Type), resultRateLimited)
			c.enqueue(Message{Type: MsgError, Command: cmd.Type, Error: "rate limited"})
			continue
		}

		if err := Apply(c.srv.ctrl, cmd); err != nil {
			c.srv.record(metricLabel(cmd.Type), resultError)
			c.enqueue(Message{Type: MsgError, Command: cmd.Type, Error: err.Error()})
			continue
		}
		c.srv.record(metricLabel(cmd.Type), resultOK)
		c.enqueue(Message{Type: MsgAck, Command: cmd.Type})
	}
}

func (c *client) writeLoop() {
	snapTicker := time.NewTicker(c.srv.snapshotInterval())
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		snapTicker.Stop()
		pingTicker.Stop()
		c.close()
		_ = c.conn.Close()
	}()

	sf := c.srv.ctrl.Starfield()
	if err := c.write(Message{Type: MsgHello, Starfield: &sf}); err != nil {
		return
	}

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
				time.Now().Add(writeWait))
			return
		case m := <-c.send:
			if err := c.write(m); err != nil {
				return
			}
		case <-snapTicker.C:
			snap := c.srv.ctrl.Snapshot()
			if err := c.write(Message{Type: MsgSnapshot, Snapshot: &snap}); err != nil {
				return
			}
		case <-pingTicker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) write(m Message) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(m)
}
