// Package render desenha o estado da partida numa superfície.
package render

import (
	"image/color"

	"github.com/remram44/japong/internal/game"
)

// Surface é onde o Renderer desenha. A tela do ebiten implementa isso no
// cliente; os testes usam uma superfície que só registra as chamadas.
type Surface interface {
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

type Renderer struct {
	Background color.Color
	Racket     color.Color
	Ball       color.Color
}

// New devolve o renderer com as cores do jogo: fundo preto, raquetes
// verdes e bola azul-marinho.
func New() *Renderer {
	return &Renderer{
		Background: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Racket:     color.RGBA{0x00, 0xff, 0x00, 0xff},
		Ball:       color.RGBA{0x00, 0x00, 0x7f, 0xff},
	}
}

// Draw limpa a superfície e redesenha raquetes e bola.
func (r *Renderer) Draw(dst Surface, s *game.Session) {
	f := s.Field

	dst.Fill(r.Background)
	for _, racket := range s.Rackets {
		dst.FillRect(racket.X, racket.Y, f.RacketWidth, f.RacketHeight, r.Racket)
	}
	dst.FillRect(s.Ball.X, s.Ball.Y, f.BallSize, f.BallSize, r.Ball)
}
