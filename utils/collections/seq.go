package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Seq is an ordered, re-iterable sequence.
type Seq[V any] interface {
	// ForEach visits every element in order until fn returns false.
	ForEach(fn func(V) bool)
	// Filter returns a lazy view holding the elements accepted by cond.
	Filter(cond func(V) bool) Seq[V]
	Size() int
	IsEmpty() bool
	Entries() []V
}

type ArraySeq[V any] struct {
	entries []V
}

func NewSeq[V any]() *ArraySeq[V] {
	return &ArraySeq[V]{
		entries: make([]V, 0),
	}
}

func SeqOf[V any](values ...V) *ArraySeq[V] {
	return &ArraySeq[V]{
		entries: slices.Clone(values),
	}
}

func (s *ArraySeq[V]) Add(v V) *ArraySeq[V] {
	s.entries = append(s.entries, v)
	return s
}

func (s *ArraySeq[V]) ForEach(fn func(V) bool) {
	for _, v := range s.entries {
		if !fn(v) {
			return
		}
	}
}

func (s *ArraySeq[V]) Filter(cond func(V) bool) Seq[V] {
	return &filteredSeq[V]{parent: s, cond: cond}
}

func (s *ArraySeq[V]) Size() int {
	return len(s.entries)
}

func (s *ArraySeq[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *ArraySeq[V]) Entries() []V {
	return slices.Clone(s.entries)
}

func (s ArraySeq[V]) String() string {
	return fmt.Sprint(s.entries)
}

// filteredSeq re-evaluates cond on every traversal of its parent.
type filteredSeq[V any] struct {
	parent Seq[V]
	cond   func(V) bool
}

func (s *filteredSeq[V]) ForEach(fn func(V) bool) {
	if s.cond == nil {
		return
	}
	s.parent.ForEach(func(v V) bool {
		if !s.cond(v) {
			return true
		}
		return fn(v)
	})
}

func (s *filteredSeq[V]) Filter(cond func(V) bool) Seq[V] {
	return &filteredSeq[V]{parent: s, cond: cond}
}

func (s *filteredSeq[V]) Size() int {
	n := 0
	s.ForEach(func(V) bool {
		n++
		return true
	})
	return n
}

func (s *filteredSeq[V]) IsEmpty() bool {
	empty := true
	s.ForEach(func(V) bool {
		empty = false
		return false
	})
	return empty
}

func (s *filteredSeq[V]) Entries() []V {
	return collect[V](s)
}

// entrySeq reads the live map on every traversal, so it reflects mutations
// made after it was created.
type entrySeq[K any, V any] struct {
	m Map[K, V]
}

func (s *entrySeq[K, V]) ForEach(fn func(Entry[K, V]) bool) {
	s.m.ForEach(func(k K, v V) bool {
		return fn(Entry[K, V]{Key: k, Value: v})
	})
}

func (s *entrySeq[K, V]) Filter(cond func(Entry[K, V]) bool) Seq[Entry[K, V]] {
	return &filteredSeq[Entry[K, V]]{parent: s, cond: cond}
}

func (s *entrySeq[K, V]) Size() int {
	return s.m.Size()
}

func (s *entrySeq[K, V]) IsEmpty() bool {
	return s.m.IsEmpty()
}

func (s *entrySeq[K, V]) Entries() []Entry[K, V] {
	return collect[Entry[K, V]](s)
}

func collect[V any](s Seq[V]) []V {
	arr := make([]V, 0)
	s.ForEach(func(v V) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}
