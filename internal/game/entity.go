package game

// Racket é uma raquete presa a um lado do campo; só se move na vertical.
// Y é a borda de cima e V a velocidade em pixels/ms.
type Racket struct {
	X float64
	Y float64
	V float64
}

// Ball é a bola. Ela nunca é destruída, só reposicionada depois de um ponto.
type Ball struct {
	X  float64
	Y  float64
	VX float64
	VY float64
}

// Side indexa as raquetes: 0 à esquerda, 1 à direita.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Other devolve o lado oposto.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}
