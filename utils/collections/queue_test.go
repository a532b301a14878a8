package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	require.Equal(t, true, q.IsEmpty())
	require.Equal(t, "", q.Pop())
	q.Push("aa")
	q.Push("bb")
	q.Push("cc")
	require.Equal(t, 3, q.Size())
	require.Equal(t, "aa", q.Peek())
	require.Equal(t, "aa", q.Pop())
	require.Equal(t, 2, q.Size())
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	errStop := errors.New("stop")
	seen := make([]int, 0)
	err := q.Drain(func(v int) error {
		if v == 3 {
			return errStop
		}
		seen = append(seen, v)
		return nil
	})
	require.Equal(t, errStop, err)
	require.Equal(t, []int{0, 1, 2}, seen)
	require.Equal(t, 2, q.Size())
	require.Equal(t, 3, q.Peek())

	require.Nil(t, q.Drain(func(int) error {
		return nil
	}))
	require.Equal(t, true, q.IsEmpty())
}
