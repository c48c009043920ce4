// Package timer mede o tempo entre quadros.
package timer

import "time"

// Timer devolve os milissegundos desde a última leitura.
// A leitura é destrutiva: cada chamada a Elapsed move a referência.
type Timer struct {
	now  func() time.Time
	last time.Time
}

func New() *Timer {
	return NewWithClock(time.Now)
}

// NewWithClock permite injetar o relógio (usado nos testes).
func NewWithClock(now func() time.Time) *Timer {
	return &Timer{now: now, last: now()}
}

// Elapsed devolve o tempo desde a chamada anterior (ou desde a criação).
func (t *Timer) Elapsed() float64 {
	now := t.now()
	d := now.Sub(t.last)
	t.last = now
	return float64(d) / float64(time.Millisecond)
}
