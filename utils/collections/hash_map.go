package collections

import "golang.org/x/exp/maps"

// hashMap is backed by a plain Go map, so its iteration order is unspecified.
type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *hashMap[K, V]) Keys() []K {
	return maps.Keys(m.entries)
}

func (m *hashMap[K, V]) Values() []V {
	return maps.Values(m.entries)
}

func (m *hashMap[K, V]) ForEach(fn func(k K, v V) bool) {
	for k, v := range m.entries {
		if !fn(k, v) {
			return
		}
	}
}
