package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewHashMap[string, *Mock]()
	require.Equal(t, true, s.IsEmpty())
	require.Nil(t, s.Put("aa", &Mock{
		A: "aa",
		B: 22,
	}, false))
	require.Nil(t, s.Put("bb", &Mock{
		A: "bb",
		B: 55,
	}, false))
	require.Equal(t, ErrValueExisted, s.Put("bb", &Mock{}, false))
	require.Nil(t, s.Put("bb", &Mock{A: "bb", B: 56}, true))
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains("aa"))
	require.Equal(t, false, s.Contains("cc"))
	require.ElementsMatch(t, []string{"aa", "bb"}, s.Keys())
	require.Equal(t, 2, len(s.Values()))
	v, err := s.Get("bb")
	require.Nil(t, err)
	require.Equal(t, 56, v.B)
	_, err = s.Get("cc")
	require.Equal(t, ErrValueNotExisted, err)
	require.Nil(t, s.Delete("bb"))
	require.Equal(t, ErrValueNotExisted, s.Delete("bb"))
	require.Equal(t, false, s.Contains("bb"))
	require.Equal(t, 1, s.Size())
	count := 0
	s.ForEach(func(k string, v *Mock) bool {
		count++
		return true
	})
	require.Equal(t, 1, count)
}
