package collections

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Condition is a predicate over a key-value pair.
type Condition[K any, V any] func(k K, v V) bool

// Hash extends a Map with declarative operations. Filter, Reject, Merge and
// Invert return new, independent hashes; the *InPlace methods and Set mutate
// the receiver and return it for chaining.
//
// Unless built with Wrap, a Hash iterates in insertion order.
//
// The zero value is an empty, insertion-ordered Hash ready to use.
//
// A Hash is not safe for concurrent use. Callers that share one between
// goroutines must synchronize access themselves.
type Hash[K comparable, V any] struct {
	entries Map[K, V]
}

// backing gives a zero Hash (or one wrapping a nil Map) an empty linked map.
func (h *Hash[K, V]) backing() Map[K, V] {
	if h.entries == nil {
		h.entries = newLinkedHashMap[K, V]()
	}
	return h.entries
}

func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{
		entries: newLinkedHashMap[K, V](),
	}
}

// HashOf copies m. Entries are inserted in Go map order, which is random;
// use SortedHashOf when the order matters.
func HashOf[K comparable, V any](m map[K]V) *Hash[K, V] {
	entries := newLinkedHashMap[K, V]()
	for k, v := range m {
		entries.set(k, v)
	}
	return &Hash[K, V]{entries: entries}
}

// SortedHashOf copies m, inserting entries in ascending key order.
func SortedHashOf[K constraints.Ordered, V any](m map[K]V) *Hash[K, V] {
	keys := maps.Keys(m)
	slices.Sort(keys)
	entries := newLinkedHashMap[K, V]()
	for _, k := range keys {
		entries.set(k, m[k])
	}
	return &Hash[K, V]{entries: entries}
}

// HashFrom copies src in its iteration order. Later changes to src are not
// visible through the result.
func HashFrom[K comparable, V any](src Map[K, V]) *Hash[K, V] {
	entries := newLinkedHashMap[K, V]()
	if src != nil {
		src.ForEach(func(k K, v V) bool {
			entries.set(k, v)
			return true
		})
	}
	return &Hash[K, V]{entries: entries}
}

// Wrap returns a Hash that is a view over m: reads and writes go straight to
// m, and errors returned by m are passed through unchanged.
func Wrap[K comparable, V any](m Map[K, V]) *Hash[K, V] {
	return &Hash[K, V]{entries: m}
}

func (h *Hash[K, V]) Contains(k K) bool {
	return h.backing().Contains(k)
}

func (h *Hash[K, V]) Get(k K) (V, error) {
	return h.backing().Get(k)
}

func (h *Hash[K, V]) Delete(k K) error {
	return h.backing().Delete(k)
}

func (h *Hash[K, V]) Size() int {
	return h.backing().Size()
}

func (h *Hash[K, V]) IsEmpty() bool {
	return h.backing().IsEmpty()
}

func (h *Hash[K, V]) ForEach(fn func(k K, v V) bool) {
	h.backing().ForEach(fn)
}

// ContainsAny reports whether any entry satisfies cond.
func (h *Hash[K, V]) ContainsAny(cond Condition[K, V]) bool {
	if cond == nil {
		return false
	}
	found := false
	h.backing().ForEach(func(k K, v V) bool {
		found = cond(k, v)
		return !found
	})
	return found
}

// EntrySeq returns a live, re-iterable view of the entries. The hash must
// not be mutated while the view is being traversed.
func (h *Hash[K, V]) EntrySeq() Seq[Entry[K, V]] {
	return &entrySeq[K, V]{m: h.backing()}
}

func (h *Hash[K, V]) Keys() Seq[K] {
	return SeqOf(h.backing().Keys()...)
}

func (h *Hash[K, V]) Values() Seq[V] {
	return SeqOf(h.backing().Values()...)
}

// KeysOf returns, in iteration order, every key whose value is Equal to value.
// A nil value matches nil values, and a NaN matches NaN.
func (h *Hash[K, V]) KeysOf(value V) Seq[K] {
	result := NewSeq[K]()
	h.backing().ForEach(func(k K, v V) bool {
		if Equal(value, v) {
			result.Add(k)
		}
		return true
	})
	return result
}

// Filter returns a new hash with the entries cond accepts. A nil cond
// accepts nothing.
func (h *Hash[K, V]) Filter(cond Condition[K, V]) *Hash[K, V] {
	return h.copyWhere(func(k K, v V) bool {
		return cond != nil && cond(k, v)
	})
}

// Reject returns a new hash with the entries cond does not accept. A nil cond
// accepts nothing, so the result is a full copy.
func (h *Hash[K, V]) Reject(cond Condition[K, V]) *Hash[K, V] {
	return h.copyWhere(func(k K, v V) bool {
		return cond == nil || !cond(k, v)
	})
}

func (h *Hash[K, V]) copyWhere(keep Condition[K, V]) *Hash[K, V] {
	result := newLinkedHashMap[K, V]()
	h.backing().ForEach(func(k K, v V) bool {
		if keep(k, v) {
			result.set(k, v)
		}
		return true
	})
	return &Hash[K, V]{entries: result}
}

// Invert returns a new hash mapping each value of h to its key. When several
// keys share a value the one visited last wins. The result is ordered by the
// first occurrence of each value.
func Invert[K comparable, V comparable](h *Hash[K, V]) *Hash[V, K] {
	result := newLinkedHashMap[V, K]()
	h.backing().ForEach(func(k K, v V) bool {
		result.set(v, k)
		return true
	})
	return &Hash[V, K]{entries: result}
}

// Set stores v under k, replacing any previous value.
func (h *Hash[K, V]) Set(k K, v V) (*Hash[K, V], error) {
	if err := h.backing().Put(k, v, true); err != nil {
		return nil, err
	}
	return h, nil
}

// RejectInPlace removes every entry cond accepts.
//
// Deletion stops at the first error from the backing Map; entries deleted
// before that error stay deleted.
func (h *Hash[K, V]) RejectInPlace(cond Condition[K, V]) (*Hash[K, V], error) {
	if cond == nil {
		return nil, errors.Wrap(ErrNilPredicate, "reject in place")
	}
	return h.removeWhere(cond)
}

// FilterInPlace removes every entry cond does not accept. A backing error
// can leave a partial result, as with RejectInPlace.
func (h *Hash[K, V]) FilterInPlace(cond Condition[K, V]) (*Hash[K, V], error) {
	if cond == nil {
		return nil, errors.Wrap(ErrNilPredicate, "filter in place")
	}
	return h.removeWhere(func(k K, v V) bool {
		return !cond(k, v)
	})
}

// removeWhere collects the matching keys first and deletes them after the
// traversal has finished.
func (h *Hash[K, V]) removeWhere(cond Condition[K, V]) (*Hash[K, V], error) {
	toBeRemoved := NewQueue[K]()
	h.backing().ForEach(func(k K, v V) bool {
		if cond(k, v) {
			toBeRemoved.Push(k)
		}
		return true
	})
	if toBeRemoved.IsEmpty() {
		return h, nil
	}
	n := toBeRemoved.Size()
	if err := toBeRemoved.Drain(h.backing().Delete); err != nil {
		return nil, err
	}
	logger.WithField("removed", n).Debug("entries removed in place")
	return h, nil
}

// Merge returns a copy of h overlaid with the entries of other. On a key
// collision the value from other wins. A nil other yields a plain copy.
func (h *Hash[K, V]) Merge(other *Hash[K, V]) *Hash[K, V] {
	result := newLinkedHashMap[K, V]()
	put := func(k K, v V) bool {
		result.set(k, v)
		return true
	}
	h.backing().ForEach(put)
	if other != nil {
		other.backing().ForEach(put)
	}
	return &Hash[K, V]{entries: result}
}

// MergeInPlace copies every entry of other into h. On a key collision the
// value from other wins. A nil other is a no-op.
//
// Copying stops at the first error from the backing Map; entries put before
// that error stay in h.
func (h *Hash[K, V]) MergeInPlace(other *Hash[K, V]) (*Hash[K, V], error) {
	if other == nil {
		return h, nil
	}
	var err error
	other.backing().ForEach(func(k K, v V) bool {
		err = h.backing().Put(k, v, true)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	logger.WithField("merged", other.Size()).Debug("entries merged in place")
	return h, nil
}

// ToMap returns a plain Go map snapshot of h.
func (h *Hash[K, V]) ToMap() map[K]V {
	m := make(map[K]V, h.Size())
	h.backing().ForEach(func(k K, v V) bool {
		m[k] = v
		return true
	})
	return m
}

func (h *Hash[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	h.backing().ForEach(func(k K, v V) bool {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
		return true
	})
	sb.WriteString("}")
	return sb.String()
}
