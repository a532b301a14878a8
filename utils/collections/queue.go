package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	Pop() V
	Peek() V
	Size() int
	IsEmpty() bool
	// Drain pops every element in FIFO order and hands it to fn, stopping at
	// the first error. Elements not yet handed out stay queued.
	Drain(fn func(V) error) error
}

type queue[V any] struct {
	entries []V
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (s *queue[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *queue[V]) Pop() (v V) {
	if len(s.entries) == 0 {
		return v
	}
	ret := s.entries[0]
	var zero V
	s.entries[0] = zero
	s.entries = s.entries[1:]
	return ret
}

func (s *queue[V]) Peek() (v V) {
	if len(s.entries) == 0 {
		return v
	}
	return s.entries[0]
}

func (s *queue[V]) Size() int {
	return len(s.entries)
}

func (s *queue[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *queue[V]) Drain(fn func(V) error) error {
	for !s.IsEmpty() {
		if err := fn(s.Peek()); err != nil {
			return err
		}
		s.Pop()
	}
	return nil
}

func (s queue[V]) String() string {
	return fmt.Sprint(s.entries)
}
