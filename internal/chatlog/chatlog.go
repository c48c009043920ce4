// Package chatlog guarda as linhas mostradas no painel de log do cliente.
package chatlog

import "go.uber.org/zap"

// Class é a classe visual de uma linha.
type Class string

const (
	Warn  Class = "warn"
	Msg   Class = "msg"
	Error Class = "error"
)

type Line struct {
	Class Class
	Text  string
}

// Log é um buffer limitado de linhas; as mais antigas saem primeiro.
// Cada linha também vai para o logger zap.
type Log struct {
	lines []Line
	max   int
	log   *zap.SugaredLogger
}

func New(max int, log *zap.SugaredLogger) *Log {
	if max < 1 {
		max = 1
	}
	return &Log{
		lines: make([]Line, 0, max),
		max:   max,
		log:   log,
	}
}

func (l *Log) Add(class Class, text string) {
	if len(l.lines) == l.max {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.max-1]
	}
	l.lines = append(l.lines, Line{Class: class, Text: text})

	switch class {
	case Warn:
		l.log.Warnw(text, "class", class)
	case Error:
		l.log.Errorw(text, "class", class)
	default:
		l.log.Infow(text, "class", class)
	}
}

func (l *Log) Warn(text string)  { l.Add(Warn, text) }
func (l *Log) Msg(text string)   { l.Add(Msg, text) }
func (l *Log) Error(text string) { l.Add(Error, text) }

// Lines devolve uma cópia, da mais antiga para a mais nova.
func (l *Log) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}
