// Package game contém as entidades do Pong e o passo de simulação.
package game

import (
	"github.com/remram44/japong/configs"
	"github.com/remram44/japong/internal/input"
)

// Margem entre a raquete e a borda lateral do campo.
const racketMargin = 5

// Session é o estado de uma partida no cliente. Só é tocada pela goroutine
// do loop de quadros.
type Session struct {
	Field   configs.Field
	Rackets [2]Racket
	Ball    Ball
	Input   *input.Tracker

	// Raquete controlada pelo teclado local.
	Local Side

	// Placar apenas informativo; não há condição de vitória.
	Score [2]int
}

func NewSession(f configs.Field, local Side) *Session {
	center := (f.Height - f.RacketHeight) / 2
	return &Session{
		Field: f,
		Rackets: [2]Racket{
			{X: racketMargin, Y: center},
			{X: f.Width - f.RacketWidth - racketMargin, Y: center},
		},
		Ball: Ball{
			X:  f.Width / 2,
			Y:  spawnY(f),
			VX: f.BallSpeed,
			VY: f.BallSpeed,
		},
		Input: &input.Tracker{},
		Local: local,
	}
}

// LocalRacket devolve a raquete movida pelo teclado.
func (s *Session) LocalRacket() *Racket {
	return &s.Rackets[s.Local]
}

func spawnY(f configs.Field) float64 {
	return f.Height / 3
}
