// Package relay é o servidor: um websocket em /conn que repassa cada frame
// recebido para todos os clientes conectados, sem interpretar nada.
package relay

import (
	"context"

	"go.uber.org/zap"
)

type frame struct {
	kind int
	data []byte
}

// Hub é dono do conjunto de clientes; só a goroutine de Run mexe nele.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan frame
	done       chan struct{}

	metrics *Metrics
	log     *zap.SugaredLogger
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan frame, 256),
		done:       make(chan struct{}),
		metrics:    &Metrics{},
		log:        log,
	}
}

func (h *Hub) Metrics() *Metrics { return h.metrics }

// Run processa entradas, saídas e frames até ctx terminar.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.metrics.connOpened()
			h.log.Infow("client connected", "id", c.id, "remote", c.remote, "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.log.Infow("client disconnected", "id", c.id, "clients", len(h.clients))
			}

		case f := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- f:
					h.metrics.frameRelayed()
				default:
					// Cliente lento: desconecta em vez de travar o relay.
					h.drop(c)
					h.metrics.slowDropped()
					h.log.Warnw("dropping slow client", "id", c.id)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.metrics.connClosed()
}

// join e leave retornam sem bloquear depois que o hub parou.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) relay(f frame) bool {
	select {
	case h.broadcast <- f:
		return true
	case <-h.done:
		return false
	}
}
