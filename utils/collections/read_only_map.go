package collections

// readOnlyMap is an immutable snapshot. Every mutation fails with
// ErrUnsupportedOperation.
type readOnlyMap[K comparable, V any] struct {
	data *linkedHashMap[K, V]
}

// NewReadOnlyMap copies src in its iteration order. A nil src gives an
// empty map.
func NewReadOnlyMap[K comparable, V any](src Map[K, V]) Map[K, V] {
	data := newLinkedHashMap[K, V]()
	if src != nil {
		src.ForEach(func(k K, v V) bool {
			data.set(k, v)
			return true
		})
	}
	return &readOnlyMap[K, V]{data: data}
}

func (r *readOnlyMap[K, V]) Contains(k K) bool {
	return r.data.Contains(k)
}

func (r *readOnlyMap[K, V]) Put(K, V, bool) error {
	return ErrUnsupportedOperation
}

func (r *readOnlyMap[K, V]) Get(k K) (V, error) {
	return r.data.Get(k)
}

func (r *readOnlyMap[K, V]) Delete(K) error {
	return ErrUnsupportedOperation
}

func (r *readOnlyMap[K, V]) Size() int {
	return r.data.Size()
}

func (r *readOnlyMap[K, V]) IsEmpty() bool {
	return r.data.IsEmpty()
}

func (r *readOnlyMap[K, V]) Keys() []K {
	return r.data.Keys()
}

func (r *readOnlyMap[K, V]) Values() []V {
	return r.data.Values()
}

func (r *readOnlyMap[K, V]) ForEach(fn func(k K, v V) bool) {
	r.data.ForEach(fn)
}
