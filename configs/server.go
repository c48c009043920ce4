package configs

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Server reúne as opções do relay.
type Server struct {
	Bind     string
	Port     int
	Hostname string

	SendQueue    int
	PongWait     time.Duration
	WriteTimeout time.Duration

	LogFile string
	Verbose bool
	Profile bool
}

func NewServer() Server {
	return Server{
		Bind: "0.0.0.0",
		Port: 8000,

		SendQueue:    64,
		PongWait:     60 * time.Second,
		WriteTimeout: 5 * time.Second,

		LogFile: "japong-server.log",
	}
}

// Addr é o endereço de escuta.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Bind, strconv.Itoa(s.Port))
}

// PublicAddr é o host:porta que os clientes devem usar em --server.
func (s Server) PublicAddr() string {
	if s.Hostname == "" {
		return net.JoinHostPort("localhost", strconv.Itoa(s.Port))
	}
	if _, _, err := net.SplitHostPort(s.Hostname); err == nil {
		return s.Hostname
	}
	return net.JoinHostPort(s.Hostname, strconv.Itoa(s.Port))
}

func (s Server) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", s.Port)
	}
	if s.SendQueue < 1 {
		return fmt.Errorf("invalid send queue size: %d", s.SendQueue)
	}
	if s.PongWait <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive (pong wait %s, write timeout %s)", s.PongWait, s.WriteTimeout)
	}
	return nil
}
