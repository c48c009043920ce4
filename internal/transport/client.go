// Package transport liga o cliente ao relay por um único websocket de
// frames de texto.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/remram44/japong/configs"
)

const (
	sendQueue    = 64
	eventQueue   = 256
	writeTimeout = 5 * time.Second
)

// Client mantém uma conexão. Não há reconexão: quando o socket fecha,
// Run termina e emite Closed.
type Client struct {
	url    string
	hello  string
	dialer *websocket.Dialer
	log    *zap.SugaredLogger

	events chan Event
	send   chan []byte
}

func New(cfg configs.Config, log *zap.SugaredLogger) *Client {
	return &Client{
		url:    cfg.ServerURL(),
		hello:  IdentifyFrame(cfg.Protocol, cfg.Key),
		dialer: websocket.DefaultDialer,
		log:    log,
		events: make(chan Event, eventQueue),
		send:   make(chan []byte, sendQueue),
	}
}

// Events é consumido pelo loop de quadros.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Send enfileira um frame de texto. Devolve false se a fila estiver cheia.
func (c *Client) Send(text string) bool {
	select {
	case c.send <- []byte(text):
		return true
	default:
		c.log.Warnw("send queue full, dropping frame", "frame", text)
		return false
	}
}

// Run conecta, envia a identificação e bombeia mensagens até o socket
// fechar ou ctx ser cancelado.
func (c *Client) Run(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		err = fmt.Errorf("dial %s: %w", c.url, err)
		c.emit(ctx, Event{Kind: Failed, Err: err})
		c.emit(ctx, Event{Kind: Closed})
		return err
	}
	c.log.Infow("connected", "url", c.url)
	c.emit(ctx, Event{Kind: Opened})

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, []byte(c.hello)); err != nil {
		_ = conn.Close()
		err = fmt.Errorf("send identification: %w", err)
		c.emit(ctx, Event{Kind: Failed, Err: err})
		c.emit(ctx, Event{Kind: Closed})
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.readPump(gctx, conn) })
	g.Go(func() error { return c.writePump(gctx, conn) })
	err = g.Wait()

	switch {
	case ctx.Err() != nil:
		err = nil
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		err = nil
	default:
		c.emit(ctx, Event{Kind: Failed, Err: err})
	}
	c.log.Infow("disconnected", "url", c.url, "error", err)
	c.emit(ctx, Event{Kind: Closed})
	return err
}

// readPump repassa cada frame de texto, sem interpretar.
func (c *Client) readPump(ctx context.Context, conn *websocket.Conn) error {
	for {
		mt, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			c.log.Debugw("ignoring non-text frame", "type", mt, "size", len(payload))
			continue
		}
		c.emit(ctx, Event{Kind: Message, Text: string(payload)})
	}
}

// writePump é o único escritor de mensagens de dados na conexão.
func (c *Client) writePump(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()
	for {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(writeTimeout)
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				c.log.Debugw("close handshake failed", "error", err)
			}
			return nil
		case msg := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
	}
}

func (c *Client) emit(ctx context.Context, ev Event) {
	select {
	case c.events <- ev:
	case <-ctx.Done():
	}
}
