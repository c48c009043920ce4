// Package input acompanha as setas que movem a raquete local.
package input

// Key identifica uma tecla vinda da plataforma.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
)

// Direction é o sentido vertical pedido pelo jogador: -1 sobe, +1 desce.
type Direction int

const (
	DirUp   Direction = -1
	DirNone Direction = 0
	DirDown Direction = 1
)

// Tracker guarda o estado das duas setas e a última direção aplicada.
type Tracker struct {
	up   bool
	down bool

	applied Direction
}

// KeyDown marca a tecla como pressionada. Devolve true quando a tecla é
// rastreada, ou seja, quando o comportamento padrão (rolagem) deve ser
// suprimido. Outras teclas são ignoradas.
func (t *Tracker) KeyDown(k Key) bool {
	switch k {
	case KeyUp:
		t.up = true
	case KeyDown:
		t.down = true
	default:
		return false
	}
	return true
}

func (t *Tracker) KeyUp(k Key) {
	switch k {
	case KeyUp:
		t.up = false
	case KeyDown:
		t.down = false
	}
}

// Direction deriva o sentido atual. As duas setas juntas se anulam.
func (t *Tracker) Direction() Direction {
	switch {
	case t.down && !t.up:
		return DirDown
	case t.up && !t.down:
		return DirUp
	}
	return DirNone
}

// Poll devolve a direção atual e se ela mudou desde o último Poll.
// A direção devolvida passa a ser a aplicada.
func (t *Tracker) Poll() (Direction, bool) {
	dir := t.Direction()
	if dir == t.applied {
		return dir, false
	}
	t.applied = dir
	return dir, true
}
