package game

import "math"

// Reflexões feitas uma a uma antes de cair na forma fechada.
const maxDirectReflections = 2

// Outcome descreve o que aconteceu num passo.
type Outcome struct {
	// Scored indica que a bola saiu pela lateral e foi reposicionada.
	Scored bool
	// Conceded é o lado por onde a bola saiu.
	Conceded Side
}

// Step avança a simulação em elapsed milissegundos.
func (s *Session) Step(elapsed float64) Outcome {
	f := s.Field

	if dir, changed := s.Input.Poll(); changed {
		// TODO: mandar a nova direção pelo transporte para a cópia desta raquete no outro cliente acompanhar.
		s.LocalRacket().V = f.RacketSpeed * float64(dir)
	}

	maxY := f.Height - f.RacketHeight
	for i := range s.Rackets {
		r := &s.Rackets[i]
		r.Y += r.V * elapsed
		r.Y = math.Max(0, math.Min(r.Y, math.Max(maxY, 0)))
	}

	b := &s.Ball
	b.X += b.VX * elapsed
	b.Y += b.VY * elapsed

	s.bounceWalls()
	s.bounceRackets()

	return s.checkScore()
}

// bounceWalls reflete a bola nas paredes de cima e de baixo. VY troca de
// sinal uma vez por parede atravessada.
func (s *Session) bounceWalls() {
	b := &s.Ball
	span := s.Field.Height - s.Field.BallSize
	if span <= 0 {
		b.Y = 0
		return
	}

	for i := 0; i < maxDirectReflections; i++ {
		switch {
		case b.Y > span:
			b.Y = 2*span - b.Y
		case b.Y < 0:
			b.Y = -b.Y
		default:
			return
		}
		b.VY = -b.VY
	}
	if b.Y >= 0 && b.Y <= span {
		return
	}

	y, crossings := fold(b.Y, span)
	b.Y = y
	if math.Mod(crossings, 2) == 1 {
		b.VY = -b.VY
	}
}

// fold leva pos para [0, span] como se refletisse nas bordas, e devolve
// quantas bordas foram atravessadas.
func fold(pos, span float64) (float64, float64) {
	var crossings float64
	if pos > span {
		crossings = math.Ceil(pos/span) - 1
	} else {
		crossings = math.Ceil(-pos / span)
	}

	period := 2 * span
	m := math.Mod(pos, period)
	if m < 0 {
		m += period
	}
	if m > span {
		m = period - m
	}
	return m, crossings
}

func (s *Session) bounceRackets() {
	b := &s.Ball
	f := s.Field

	overlaps := func(r Racket) bool {
		return b.Y+f.BallSize > r.Y && b.Y < r.Y+f.RacketHeight
	}

	left := s.Rackets[Left]
	if b.X < left.X+f.RacketWidth && overlaps(left) {
		b.VX = math.Abs(b.VX)
	}
	right := s.Rackets[Right]
	if b.X+f.BallSize > right.X && overlaps(right) {
		b.VX = -math.Abs(b.VX)
	}
}

// checkScore reposiciona a bola quando ela sai inteira por uma lateral.
func (s *Session) checkScore() Outcome {
	b := &s.Ball
	f := s.Field

	var conceded Side
	switch {
	case b.X < 0:
		conceded = Left
	case b.X+f.BallSize > f.Width:
		conceded = Right
	default:
		return Outcome{}
	}

	b.X = (f.Width - f.BallSize) / 2
	b.Y = spawnY(f)
	b.VX = -b.VX
	s.Score[conceded.Other()]++
	return Outcome{Scored: true, Conceded: conceded}
}
