package relay

import "sync/atomic"

// Metrics são os contadores do relay, servidos em /metrics.
type Metrics struct {
	Connections      int64 // conexões abertas agora
	TotalConnections int64 // conexões aceitas desde o início
	FramesReceived   int64
	FramesRelayed    int64 // entregas (um frame para N clientes conta N)
	SlowDropped      int64 // clientes desconectados por fila cheia
}

func (m *Metrics) connOpened() {
	atomic.AddInt64(&m.Connections, 1)
	atomic.AddInt64(&m.TotalConnections, 1)
}

func (m *Metrics) connClosed()    { atomic.AddInt64(&m.Connections, -1) }
func (m *Metrics) frameReceived() { atomic.AddInt64(&m.FramesReceived, 1) }
func (m *Metrics) frameRelayed()  { atomic.AddInt64(&m.FramesRelayed, 1) }
func (m *Metrics) slowDropped()   { atomic.AddInt64(&m.SlowDropped, 1) }

// Snapshot devolve uma cópia para serializar.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"connections":       atomic.LoadInt64(&m.Connections),
		"total_connections": atomic.LoadInt64(&m.TotalConnections),
		"frames_received":   atomic.LoadInt64(&m.FramesReceived),
		"frames_relayed":    atomic.LoadInt64(&m.FramesRelayed),
		"slow_dropped":      atomic.LoadInt64(&m.SlowDropped),
	}
}
