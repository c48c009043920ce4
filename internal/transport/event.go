package transport

import "fmt"

// EventKind classifica o que aconteceu no socket.
type EventKind int

const (
	Opened EventKind = iota
	Message
	Failed
	Closed
)

func (k EventKind) String() string {
	switch k {
	case Opened:
		return "opened"
	case Message:
		return "message"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event é entregue ao loop de quadros pelo canal do Client, em vez de
// callbacks mexendo no estado do jogo.
type Event struct {
	Kind EventKind
	// Text é o frame recebido, sem nenhuma interpretação (Message).
	Text string
	// Err acompanha Failed.
	Err error
}
