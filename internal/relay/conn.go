package relay

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/remram44/japong/configs"
)

const maxFrameSize = 64 << 10

// Client é uma conexão aceita em /conn.
type Client struct {
	id     string
	remote string
	conn   *websocket.Conn
	send   chan frame
	cfg    configs.Server
	log    *zap.SugaredLogger
}

func newClient(conn *websocket.Conn, remote string, cfg configs.Server, log *zap.SugaredLogger) *Client {
	return &Client{
		id:     uuid.NewString(),
		remote: remote,
		conn:   conn,
		send:   make(chan frame, cfg.SendQueue),
		cfg:    cfg,
		log:    log,
	}
}

// readPump entrega cada frame ao hub. Ao sair, pede ao hub para remover o
// cliente.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.leave(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warnw("read failed", "id", c.id, "error", err)
			}
			return
		}
		h.metrics.frameReceived()
		if kind == websocket.TextMessage {
			c.log.Debugw("client sent text", "id", c.id, "text", string(data))
		} else {
			c.log.Debugw("client sent binary", "id", c.id, "hex", fmt.Sprintf("%x", data))
		}
		if !h.relay(frame{kind: kind, data: data}) {
			return
		}
	}
}

// writePump é o único escritor da conexão.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.conn.WriteMessage(f.kind, f.data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
