// Package queue implements the unbounded FIFO queues that connect
// pipeline stages. End of input is a distinct message kind, not a
// reserved data value.
package queue

import (
	"fmt"
	"sync"

	"github.com/sasha-s/go-deadlock"
)

type Tmsg[T any] struct {
	eof bool
	Val T
}

func Data[T any](v T) Tmsg[T] {
	return Tmsg[T]{Val: v}
}

func EOF[T any]() Tmsg[T] {
	return Tmsg[T]{eof: true}
}

func (m Tmsg[T]) IsEOF() bool {
	return m.eof
}

func (m Tmsg[T]) String() string {
	if m.eof {
		return "EOF"
	}
	return fmt.Sprintf("%v", m.Val)
}

// Queue never blocks producers; Get blocks until a message is
// available.
type Queue[T any] struct {
	mu   deadlock.Mutex
	cond *sync.Cond
	name string
	msgs []Tmsg[T]
}

func NewQueue[T any](name string) *Queue[T] {
	q := &Queue[T]{name: name}
	q.cond = sync.NewCond(&q.mu)
	q.msgs = make([]Tmsg[T], 0, 64)
	return q
}

func (q *Queue[T]) Name() string {
	return q.name
}

func (q *Queue[T]) Put(v T) {
	q.put(Data(v))
}

// PutEOF appends one termination signal.
func (q *Queue[T]) PutEOF() {
	q.put(EOF[T]())
}

func (q *Queue[T]) put(m Tmsg[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.msgs = append(q.msgs, m)
	q.cond.Signal()
}

func (q *Queue[T]) Get() Tmsg[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.msgs) == 0 {
		q.cond.Wait()
	}
	m := q.msgs[0]
	var zero Tmsg[T]
	q.msgs[0] = zero
	q.msgs = q.msgs[1:]
	return m
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.msgs)
}

// Drain calls f for every data message until it has seen neof
// termination signals.
func (q *Queue[T]) Drain(neof int, f func(T) error) error {
	for n := 0; n < neof; {
		m := q.Get()
		if m.IsEOF() {
			n += 1
			continue
		}
		if err := f(m.Val); err != nil {
			return err
		}
	}
	return nil
}
