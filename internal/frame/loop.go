// Package frame implementa o loop de quadros: tempo, simulação e desenho.
package frame

import (
	"errors"

	"github.com/remram44/japong/internal/chatlog"
	"github.com/remram44/japong/internal/game"
	"github.com/remram44/japong/internal/render"
	"github.com/remram44/japong/internal/transport"
)

// ErrStopped é devolvido por Update depois que o loop parou.
var ErrStopped = errors.New("frame loop stopped")

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Clock mede o tempo entre quadros; *timer.Timer satisfaz.
type Clock interface {
	Elapsed() float64
}

// Loop é dono da sessão durante a partida. Update e Draw devem ser
// chamados sempre da mesma goroutine.
type Loop struct {
	state State

	session  *game.Session
	clock    Clock
	renderer *render.Renderer
	log      *chatlog.Log

	events      <-chan transport.Event
	stopOnClose bool
}

func New(s *game.Session, clock Clock, r *render.Renderer, log *chatlog.Log, events <-chan transport.Event, stopOnClose bool) *Loop {
	return &Loop{
		state:       Running,
		session:     s,
		clock:       clock,
		renderer:    r,
		log:         log,
		events:      events,
		stopOnClose: stopOnClose,
	}
}

func (l *Loop) State() State { return l.state }

func (l *Loop) Session() *game.Session { return l.session }

// Stop para o loop de vez; não há como reiniciar.
func (l *Loop) Stop() {
	l.state = Stopped
}

// Update roda um quadro: entrega os eventos do socket que chegaram desde o
// quadro anterior, confere a flag de parada, mede o tempo e avança a
// simulação.
func (l *Loop) Update() error {
	l.drain()
	if l.state == Stopped {
		return ErrStopped
	}
	l.session.Step(l.clock.Elapsed())
	return nil
}

// Draw redesenha o campo. Depois de parar, o estado não muda mais e o
// desenho se repete idêntico.
func (l *Loop) Draw(dst render.Surface) {
	l.renderer.Draw(dst, l.session)
}

func (l *Loop) drain() {
	for {
		select {
		case ev, ok := <-l.events:
			if !ok {
				l.events = nil
				return
			}
			l.dispatch(ev)
		default:
			return
		}
	}
}

func (l *Loop) dispatch(ev transport.Event) {
	switch ev.Kind {
	case transport.Opened:
		l.log.Warn("!! Connected")
	case transport.Message:
		l.log.Msg(ev.Text)
	case transport.Failed:
		l.log.Error("!! Error: " + ev.Err.Error())
	case transport.Closed:
		l.log.Error("!! Disconnected")
		if l.stopOnClose {
			l.Stop()
		}
	}
}
