package algo

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipList(t *testing.T) {
	sl := NewSkipList[int, string](func(a, b int) bool { return a < b })

	assert.True(t, sl.Put(3, "three"))
	assert.True(t, sl.Put(1, "one"))
	assert.True(t, sl.Put(2, "two"))
	assert.False(t, sl.Put(2, "TWO"))

	val, ok := sl.Get(2)
	require.True(t, ok)
	assert.Equal(t, "TWO", val)
	assert.Equal(t, 3, sl.Len())

	assert.True(t, sl.Delete(2))
	assert.False(t, sl.Delete(2))
	_, ok = sl.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, sl.Len())

	var keys []int
	sl.Range(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []int{1, 3}, keys)
	assert.Equal(t, []string{"one", "three"}, sl.Values())
}

func TestSkipListRangeStops(t *testing.T) {
	sl := NewSkipList[int, int](func(a, b int) bool { return a < b })
	for i := 0; i < 10; i++ {
		sl.Put(i, i*i)
	}

	var seen []int
	sl.Range(func(k, _ int) bool {
		seen = append(seen, k)
		return k < 4
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}

func TestSkipListManyKeys(t *testing.T) {
	sl := NewSkipList[uint64, string](func(a, b uint64) bool { return a < b })
	for i := uint64(1000); i > 0; i-- {
		sl.Put(i, strconv.FormatUint(i, 10))
	}
	for i := uint64(2); i <= 1000; i += 2 {
		require.True(t, sl.Delete(i))
	}
	require.Equal(t, 500, sl.Len())

	prev := uint64(0)
	sl.Range(func(k uint64, v string) bool {
		assert.Equal(t, uint64(1), k%2)
		assert.Greater(t, k, prev)
		assert.Equal(t, strconv.FormatUint(k, 10), v)
		prev = k
		return true
	})
}

func TestSkipListClear(t *testing.T) {
	sl := NewSkipList[string, int](func(a, b string) bool { return a < b })
	sl.Put("a", 1)
	sl.Put("b", 2)
	sl.Clear()

	assert.Equal(t, 0, sl.Len())
	assert.Empty(t, sl.Values())
	_, ok := sl.Get("a")
	assert.False(t, ok)

	sl.Put("c", 3)
	assert.Equal(t, []int{3}, sl.Values())
}

func BenchmarkSkipListPut(b *testing.B) {
	sl := NewSkipList[int, int](func(a, b int) bool { return a < b })
	for i := 0; i < b.N; i++ {
		sl.Put(i, i)
	}
}
