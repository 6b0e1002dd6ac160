package TreeMap

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

func TestTreeMap_Basic(t *testing.T) {
	m := New[string, int](uint16(0))
	for i, k := range []string{"d", "b", "a", "c", "e"} {
		require.NoError(t, m.Put(k, i))
	}
	assert.Equal(t, uint(5), m.Size())
	v, ok := m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = m.Get("z")
	assert.False(t, ok)

	p, ok := m.Minimum()
	assert.True(t, ok)
	assert.Equal(t, Pair[string, int]{"a", 2}, p)
	p, _ = m.Maximum()
	assert.Equal(t, "e", p.Key)
	p, _ = m.Successor("b")
	assert.Equal(t, "c", p.Key)
	p, _ = m.Predecessor("b")
	assert.Equal(t, "a", p.Key)
	_, ok = m.Predecessor("a")
	assert.False(t, ok)

	require.NoError(t, m.PutPair(Pair[string, int]{"a", 10}))
	v, _ = m.Get("a")
	assert.Equal(t, 10, v)
	require.NoError(t, m.Remove("a"))
	assert.True(t, merry.Is(m.Remove("a"), Trees.ErrNotFound))
	assert.False(t, m.Has("a"))
	assert.NoError(t, m.Validate())
}

func TestTreeMap_Iterate(t *testing.T) {
	m := New[int, string](uint16(0))
	_, err := m.Iterate(false)
	assert.True(t, merry.Is(err, ErrEnd))

	perm := rg.Perm(200)
	for _, k := range perm {
		require.NoError(t, m.Put(k, strconv.Itoa(k)))
	}
	_, err = m.Iterate(true)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		p, err := m.Iterate(false)
		require.NoError(t, err)
		require.Equal(t, i, p.Key)
		require.Equal(t, strconv.Itoa(i), p.Value)
	}
	_, err = m.Iterate(false)
	assert.True(t, merry.Is(err, ErrEnd))

	_, err = m.ReverseIterate(true)
	require.NoError(t, err)
	for i := 199; i >= 100; i-- {
		p, err := m.ReverseIterate(false)
		require.NoError(t, err)
		require.Equal(t, i, p.Key)
	}
	// a reset rewinds partway through.
	_, _ = m.ReverseIterate(true)
	p, err := m.ReverseIterate(false)
	require.NoError(t, err)
	assert.Equal(t, 199, p.Key)
}

func TestTreeMap_Closures(t *testing.T) {
	m := New[int, int](uint8(0))
	for _, k := range rg.Perm(100) {
		require.NoError(t, m.Put(k, -k))
	}
	keys, values, pairs := m.Keys(), m.Values(), m.Pairs()
	for i := 0; i < 100; i++ {
		k, ok := keys()
		require.True(t, ok)
		v, ok := values()
		require.True(t, ok)
		pk, pv, ok := pairs()
		require.True(t, ok)
		assert.Equal(t, i, k)
		assert.Equal(t, -i, v)
		assert.Equal(t, k, pk)
		assert.Equal(t, v, pv)
	}
	_, ok := keys()
	assert.False(t, ok)

	i := 99
	for k, v := range m.Backward() {
		assert.Equal(t, i, k)
		assert.Equal(t, -i, v)
		i--
	}
	assert.Equal(t, -1, i)
}

func TestTreeMap_Destroy(t *testing.T) {
	m := New[int, string](uint16(0))
	var dropped []Pair[int, string]
	m.SetDestroy(func(p Pair[int, string]) { dropped = append(dropped, p) })
	for _, k := range []int{5, 3, 8, 1} {
		require.NoError(t, m.Put(k, "v"+strconv.Itoa(k)))
	}
	require.NoError(t, m.Put(3, "new"))
	require.Equal(t, []Pair[int, string]{{3, "v3"}}, dropped)
	require.NoError(t, m.Remove(8))
	require.Equal(t, Pair[int, string]{8, "v8"}, dropped[1])

	k, v, ok := m.Take()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "v1", v)
	assert.Len(t, dropped, 2)

	m.Clear()
	assert.Equal(t, []Pair[int, string]{{3, "v3"}, {8, "v8"}, {3, "new"}, {5, "v5"}}, dropped)
	assert.Equal(t, uint(0), m.Size())
	_, _, ok = m.Take()
	assert.False(t, ok)

	m.SetDestroy(nil)
	require.NoError(t, m.Put(1, "a"))
	require.NoError(t, m.Put(1, "b"))
	assert.Len(t, dropped, 4)

	m.Destroy()
	assert.True(t, merry.Is(m.Put(1, "c"), Trees.ErrNoInit))
}

func TestTreeMap_Compare(t *testing.T) {
	assert.Nil(t, NewFunc[int, int, uint](nil, 0))
	m := NewFunc[int, int](func(a, b int) int { return b - a }, uint(0))
	for _, k := range rg.Perm(50) {
		require.NoError(t, m.Put(k, k))
	}
	p, _ := m.Minimum()
	assert.Equal(t, 49, p.Key)
	assert.True(t, merry.Is(m.SetCompare(Trees.Compare[int]), Trees.ErrNotEmpty))
	m.Clear()
	require.NoError(t, m.SetCompare(Trees.Compare[int]))
	require.NoError(t, m.Put(2, 2))
	require.NoError(t, m.Put(1, 1))
	p, _ = m.Minimum()
	assert.Equal(t, 1, p.Key)
}

func TestTreeMap_NoMem(t *testing.T) {
	m := New[int, int](uint8(255))
	for k := range 255 {
		require.NoError(t, m.Put(k, k))
	}
	err := m.Put(255, 255)
	assert.True(t, merry.Is(err, Trees.ErrNoMem))
	assert.False(t, m.Has(255))
	assert.Equal(t, uint(255), m.Size())
	// overwriting needs no new room.
	require.NoError(t, m.Put(0, 1))
	assert.NoError(t, m.Validate())
}

func TestTreeMap_NilMap(t *testing.T) {
	var m *TreeMap[int, int, uint]
	assert.True(t, merry.Is(m.Put(1, 1), Trees.ErrNoInit))
	assert.True(t, merry.Is(m.PutPair(Pair[int, int]{1, 1}), Trees.ErrNoInit))
	assert.True(t, merry.Is(m.Remove(1), Trees.ErrNoInit))
	assert.True(t, merry.Is(m.SetCompare(Trees.Compare[int]), Trees.ErrNoInit))
	assert.True(t, merry.Is(m.Validate(), Trees.ErrNoInit))
	_, err := m.Iterate(true)
	assert.True(t, merry.Is(err, Trees.ErrNoInit))
	_, err = m.ReverseIterate(false)
	assert.True(t, merry.Is(err, Trees.ErrNoInit))
	assert.Equal(t, uint(0), m.Size())
	assert.False(t, m.Has(1))
	_, ok := m.Get(1)
	assert.False(t, ok)
	_, _, ok = m.Take()
	assert.False(t, ok)
	_, ok = m.Minimum()
	assert.False(t, ok)
	_, ok = m.Successor(1)
	assert.False(t, ok)
	_, ok = m.Keys()()
	assert.False(t, ok)
	for range m.All() {
		t.Fatal("nil map yields a pair")
	}
	m.SetDestroy(func(Pair[int, int]) {})
	m.Clear()
	m.Destroy()

	d := New[int, int](uint(0))
	require.NoError(t, d.Put(1, 1))
	d.Destroy()
	_, err = d.Iterate(false)
	assert.True(t, merry.Is(err, Trees.ErrNoInit))
}

func TestTreeMap_IterateWhileModifying(t *testing.T) {
	m := New[int, int](uint8(0))
	for k := range 10 {
		require.NoError(t, m.Put(k, k))
	}
	_, _ = m.Iterate(true)
	for k := range 2 {
		p, err := m.Iterate(false)
		require.NoError(t, err)
		require.Equal(t, k, p.Key)
	}
	require.NoError(t, m.Remove(0))
	require.NoError(t, m.Remove(1))
	require.NoError(t, m.Remove(5))
	require.NoError(t, m.Put(20, 20))
	var rest []int
	for p, err := m.Iterate(false); err == nil; p, err = m.Iterate(false) {
		rest = append(rest, p.Key)
		if p.Key == 3 {
			// removing the key just returned doesn't lose the place.
			require.NoError(t, m.Remove(3))
		}
	}
	assert.Equal(t, []int{2, 3, 4, 6, 7, 8, 9, 20}, rest)

	// keys added after the end are picked up by the next call.
	require.NoError(t, m.Put(30, 30))
	p, err := m.Iterate(false)
	require.NoError(t, err)
	assert.Equal(t, 30, p.Key)

	_, _ = m.ReverseIterate(true)
	p, _ = m.ReverseIterate(false)
	require.Equal(t, 30, p.Key)
	require.NoError(t, m.Remove(20))
	p, err = m.ReverseIterate(false)
	require.NoError(t, err)
	assert.Equal(t, 9, p.Key)
}
