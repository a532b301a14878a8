package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedHashMap(t *testing.T) {
	m := NewLinkedHashMap[string, int]()
	require.Equal(t, true, m.IsEmpty())
	for i, k := range []string{"c", "a", "b", "d"} {
		require.Nil(t, m.Put(k, i, false))
	}
	require.Equal(t, ErrValueExisted, m.Put("a", 9, false))
	require.Nil(t, m.Put("a", 9, true))
	require.Equal(t, []string{"c", "a", "b", "d"}, m.Keys())
	require.Equal(t, []int{0, 9, 2, 3}, m.Values())

	require.Nil(t, m.Delete("a"))
	require.Equal(t, ErrValueNotExisted, m.Delete("a"))
	require.Equal(t, []string{"c", "b", "d"}, m.Keys())
	_, err := m.Get("a")
	require.Equal(t, ErrValueNotExisted, err)

	require.Nil(t, m.Put("a", 1, false))
	require.Equal(t, []string{"c", "b", "d", "a"}, m.Keys())
	require.Equal(t, 4, m.Size())

	visited := make([]string, 0)
	m.ForEach(func(k string, v int) bool {
		visited = append(visited, k)
		return k != "b"
	})
	require.Equal(t, []string{"c", "b"}, visited)
}

func TestLinkedHashMapKeysIsSnapshot(t *testing.T) {
	m := NewLinkedHashMap[int, int]()
	_ = m.Put(1, 1, false)
	keys := m.Keys()
	keys[0] = 42
	require.Equal(t, []int{1}, m.Keys())
}

func TestLinkedHashMapDeleteCompacts(t *testing.T) {
	m := newLinkedHashMap[int, int]()
	for i := 0; i < 10; i++ {
		m.set(i, i*10)
	}
	for i := 0; i < 10; i += 2 {
		require.Nil(t, m.Delete(i))
	}
	require.Equal(t, 5, m.Size())
	require.Equal(t, []int{1, 3, 5, 7, 9}, m.Keys())
	require.Nil(t, m.Delete(1))
	require.Equal(t, 4, len(m.order))
	require.Equal(t, []int{30, 50, 70, 90}, m.Values())

	m.set(0, 0)
	m.set(3, 33)
	require.Equal(t, []int{3, 5, 7, 9, 0}, m.Keys())
	require.Equal(t, []int{33, 50, 70, 90, 0}, m.Values())
	for _, k := range []int{3, 5, 7, 9, 0} {
		require.Nil(t, m.Delete(k))
	}
	require.Equal(t, true, m.IsEmpty())
	require.Equal(t, 0, len(m.order))
}
