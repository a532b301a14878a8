package collections

type linkedEntry[K any, V any] struct {
	key     K
	value   V
	deleted bool
}

// linkedHashMap iterates in insertion order. Replacing the value of an
// existing key keeps the key at its original position.
//
// Delete only marks the entry; order is compacted once more than half of it
// is dead, so deletion is amortized O(1).
type linkedHashMap[K comparable, V any] struct {
	order   []*linkedEntry[K, V]
	entries map[K]*linkedEntry[K, V]
}

func NewLinkedHashMap[K comparable, V any]() Map[K, V] {
	return newLinkedHashMap[K, V]()
}

func newLinkedHashMap[K comparable, V any]() *linkedHashMap[K, V] {
	return &linkedHashMap[K, V]{
		order:   make([]*linkedEntry[K, V], 0),
		entries: make(map[K]*linkedEntry[K, V]),
	}
}

// set is Put with forced semantics; it cannot fail.
func (m *linkedHashMap[K, V]) set(k K, v V) {
	if e, ok := m.entries[k]; ok {
		e.value = v
		return
	}
	e := &linkedEntry[K, V]{key: k, value: v}
	m.order = append(m.order, e)
	m.entries[k] = e
}

func (m *linkedHashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *linkedHashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.set(k, v)
	return nil
}

func (m *linkedHashMap[K, V]) Get(k K) (v V, err error) {
	e, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return e.value, nil
}

func (m *linkedHashMap[K, V]) Delete(k K) error {
	e, ok := m.entries[k]
	if !ok {
		return ErrValueNotExisted
	}
	e.deleted = true
	delete(m.entries, k)
	if 2*len(m.entries) < len(m.order) {
		m.compact()
	}
	return nil
}

func (m *linkedHashMap[K, V]) compact() {
	live := m.order[:0]
	for _, e := range m.order {
		if !e.deleted {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.order); i++ {
		m.order[i] = nil
	}
	m.order = live
}

func (m *linkedHashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *linkedHashMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *linkedHashMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	m.ForEach(func(k K, _ V) bool {
		arr = append(arr, k)
		return true
	})
	return arr
}

func (m *linkedHashMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	m.ForEach(func(_ K, v V) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}

func (m *linkedHashMap[K, V]) ForEach(fn func(k K, v V) bool) {
	for _, e := range m.order {
		if e.deleted {
			continue
		}
		if !fn(e.key, e.value) {
			return
		}
	}
}
