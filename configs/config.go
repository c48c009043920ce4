package configs

import (
	"errors"
	"fmt"
)

// ReleaseVersion é exibida por `--version` e pelo endpoint /version.
const ReleaseVersion = "0.4.0"

// Constantes do jogo (devem ser iguais nos dois clientes).
// Velocidades em pixels por milissegundo.
type Field struct {
	Width        float64
	Height       float64
	RacketWidth  float64
	RacketHeight float64
	BallSize     float64

	RacketSpeed float64
	BallSpeed   float64
}

// Protocol escolhe o formato dos frames de texto enviados ao servidor.
type Protocol string

const (
	// "Key: <key>" na conexão e "Msg: <texto>" no chat.
	ProtocolPrefixed Protocol = "prefixed"
	// Chave e mensagens sem prefixo.
	ProtocolRaw Protocol = "raw"
)

// Config do cliente: apelido, chave, raquete local e endereço do servidor,
// mais o campo de jogo.
type Config struct {
	Nickname   string
	Key        string
	Racket     int
	ServerAddr string

	Protocol    Protocol
	StopOnClose bool

	LogFile  string
	LogLines int
	Verbose  bool

	Field
}

func New() Config {
	return Config{
		Nickname:   "player",
		Key:        "",
		Racket:     0,
		ServerAddr: "localhost:8000",

		Protocol:    ProtocolPrefixed,
		StopOnClose: true,

		LogFile:  "japong-client.log",
		LogLines: 8,

		Field: DefaultField(),
	}
}

func DefaultField() Field {
	return Field{
		Width:        640,
		Height:       400,
		RacketWidth:  10,
		RacketHeight: 60,
		BallSize:     30,

		RacketSpeed: 0.15,
		BallSpeed:   0.2,
	}
}

// ServerURL monta o endereço do websocket do jogo.
func (c Config) ServerURL() string {
	return fmt.Sprintf("ws://%s/conn", c.ServerAddr)
}

func (c Config) Validate() error {
	if c.Racket != 0 && c.Racket != 1 {
		return fmt.Errorf("invalid racket index (must be 0 or 1): %d", c.Racket)
	}
	if c.ServerAddr == "" {
		return errors.New("server address must not be empty")
	}
	if c.Protocol != ProtocolPrefixed && c.Protocol != ProtocolRaw {
		return fmt.Errorf("invalid protocol %q (must be %q or %q)", c.Protocol, ProtocolPrefixed, ProtocolRaw)
	}
	if c.LogLines < 1 {
		return fmt.Errorf("invalid log line count: %d", c.LogLines)
	}
	if err := c.Field.Validate(); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	return nil
}

func (f Field) Validate() error {
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("playfield must be positive, got %vx%v", f.Width, f.Height)
	case f.RacketWidth <= 0 || f.RacketHeight <= 0:
		return fmt.Errorf("racket must be positive, got %vx%v", f.RacketWidth, f.RacketHeight)
	case f.BallSize <= 0:
		return fmt.Errorf("ball size must be positive, got %v", f.BallSize)
	case f.RacketSpeed < 0 || f.BallSpeed < 0:
		return errors.New("speeds must not be negative")
	}
	return nil
}
