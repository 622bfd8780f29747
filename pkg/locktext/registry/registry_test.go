package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[string, int](nil)
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Keys())
}

func TestGet(t *testing.T) {
	r := New(map[string]int{"one": 1, "two": 2})

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get("two")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	// Non-existent key
	v, ok = r.Get("three")
	assert.False(t, ok)
	assert.Equal(t, 0, v) // zero value
}

func TestNewCopiesInput(t *testing.T) {
	src := map[string]string{"a.0": "first"}
	r := New(src)

	src["a.0"] = "changed"
	src["a.1"] = "added"

	v, ok := r.Get("a.0")
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.False(t, r.Has("a.1"))
	assert.Equal(t, 1, r.Len())
}

func TestMustGet(t *testing.T) {
	r := New(map[string]int{"key": 42})

	v := r.MustGet("key")
	assert.Equal(t, 42, v)
}

func TestMustGetPanic(t *testing.T) {
	r := New[string, int](nil)

	assert.PanicsWithValue(t, "registry: key not found", func() {
		r.MustGet("nonexistent")
	})
}

func TestHas(t *testing.T) {
	r := New(map[string]int{"key": 42})

	assert.True(t, r.Has("key"))
	assert.False(t, r.Has("nonexistent"))
}

func TestKeysSorted(t *testing.T) {
	r := New(map[string]int{"york.1": 1, "freefly.2": 2, "lumenier.0": 3, "freefly.1": 4})

	assert.Equal(t, []string{"freefly.1", "freefly.2", "lumenier.0", "york.1"}, r.Keys())
}

func TestKeysStable(t *testing.T) {
	r := New(map[string]int{"c": 3, "a": 1, "b": 2})

	first := r.Keys()
	for range 20 {
		assert.Equal(t, first, r.Keys())
	}
}

func TestKeysReturnsCopy(t *testing.T) {
	r := New(map[string]int{"a": 1, "b": 2})

	keys := r.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, r.Keys())
}

func TestLen(t *testing.T) {
	assert.Equal(t, 0, New(map[string]int{}).Len())
	assert.Equal(t, 3, New(map[string]int{"a": 1, "b": 2, "c": 3}).Len())
}

func TestRange(t *testing.T) {
	r := New(map[string]int{"one": 1, "two": 2, "three": 3})

	var order []string
	visited := make(map[string]int)
	r.Range(func(k string, v int) bool {
		order = append(order, k)
		visited[k] = v
		return true
	})

	assert.Equal(t, map[string]int{"one": 1, "two": 2, "three": 3}, visited)
	assert.Equal(t, []string{"one", "three", "two"}, order)
}

func TestRangeEarlyStop(t *testing.T) {
	r := New(map[string]int{"one": 1, "two": 2, "three": 3})

	count := 0
	r.Range(func(k string, v int) bool {
		count++
		return false // stop after first
	})

	assert.Equal(t, 1, count)
}

func TestRangeEmpty(t *testing.T) {
	r := New[string, int](nil)

	called := false
	r.Range(func(k string, v int) bool {
		called = true
		return true
	})

	assert.False(t, called)
}

func TestFilter(t *testing.T) {
	r := New(map[string]string{
		"freefly.1":  "a",
		"freefly.2":  "b",
		"lumenier.0": "c",
	})

	got := r.Filter(func(k, _ string) bool {
		return strings.HasPrefix(k, "freefly.")
	})
	assert.Equal(t, []string{"freefly.1", "freefly.2"}, got)

	none := r.Filter(func(string, string) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

// Test with different key types
func TestIntegerKeys(t *testing.T) {
	r := New(map[int]string{2: "two", 1: "one"})

	v, ok := r.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, []int{1, 2}, r.Keys())
}

// Thread-safety tests

func TestConcurrentGet(t *testing.T) {
	entries := make(map[int]int, 100)
	for i := range 100 {
		entries[i] = i * 2
	}
	r := New(entries)

	var wg sync.WaitGroup
	n := 1000

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				v, ok := r.Get(i)
				assert.True(t, ok)
				assert.Equal(t, i*2, v)
			}
		}()
	}

	wg.Wait()
}

func TestConcurrentKeysAndRange(t *testing.T) {
	r := New(map[string]int{"a": 1, "b": 2, "c": 3})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keys := r.Keys()
			keys[0] = "x" // private copy
			count := 0
			r.Range(func(string, int) bool {
				count++
				return true
			})
			assert.Equal(t, 3, count)
		}()
	}

	wg.Wait()
	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
}

// Edge cases

func TestEmptyStringKey(t *testing.T) {
	r := New(map[string]int{"": 42})

	v, ok := r.Get("")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestNilValue(t *testing.T) {
	r := New(map[string]*int{"nil": nil})

	v, ok := r.Get("nil")
	assert.True(t, ok)
	assert.Nil(t, v)

	// Distinguish nil value from missing key
	_, ok = r.Get("missing")
	assert.False(t, ok)
}

// Benchmark tests

func BenchmarkGet(b *testing.B) {
	entries := make(map[int]int, 1000)
	for i := range 1000 {
		entries[i] = i
	}
	r := New(entries)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Get(i % 1000)
	}
}

func BenchmarkConcurrentGet(b *testing.B) {
	entries := make(map[int]int, 1000)
	for i := range 1000 {
		entries[i] = i
	}
	r := New(entries)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			r.Get(i % 1000)
			i++
		}
	})
}
