package collections

// Map is the associative contract a Hash is built on. Iteration order is
// defined by the implementation.
type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	IsEmpty() bool
	Keys() []K
	Values() []V
	// ForEach visits every entry until fn returns false.
	ForEach(fn func(k K, v V) bool)
}

type Entry[K any, V any] struct {
	Key   K
	Value V
}
