// Package TreeMap is an ordered Maps.Map backed by a Trees.RBTree.
package TreeMap

import (
	"iter"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// ErrEnd is returned by Iterate and ReverseIterate once every pair has been visited.
var ErrEnd = merry.New("iteration ended")

type Pair[K, V any] struct {
	Key   K
	Value V
}

// TreeMap keeps its pairs sorted by key. S bounds the number of pairs it can hold, see Trees.RBTree.
// It's not thread-safe.
// Methods called on a nil *TreeMap behave like on a destroyed one.
type TreeMap[K, V any, S constraints.Unsigned] struct {
	t       *Trees.RBTree[K, V, S]
	it      *Trees.Cursor[K, V, S] // position of Iterate and ReverseIterate
	last    K                      // key last returned by it
	moved   bool                   // it returned a pair since its reset
	pending K                      // key handed over by the tree, waiting for its value
}

// New TreeMap ordering keys with <. hint is the number of pairs to reserve room for.
func New[K constraints.Ordered, V any, S constraints.Unsigned](hint S) *TreeMap[K, V, S] {
	return &TreeMap[K, V, S]{t: Trees.New[K, V, S](hint)}
}

// NewFunc creates a TreeMap ordering keys with cmp. Returns nil if cmp is nil.
func NewFunc[K, V any, S constraints.Unsigned](cmp func(a, b K) int, hint S) *TreeMap[K, V, S] {
	t := Trees.NewFunc[K, V, S](cmp, hint)
	if t == nil {
		return nil
	}
	return &TreeMap[K, V, S]{t: t}
}

// tree is nil for a nil map; the nil tree answers ErrNoInit or zero results.
func (u *TreeMap[K, V, S]) tree() *Trees.RBTree[K, V, S] {
	if u == nil {
		return nil
	}
	return u.t
}

// SetCompare replaces the key order. Only allowed while the map is empty.
func (u *TreeMap[K, V, S]) SetCompare(cmp func(a, b K) int) error {
	return u.tree().SetCompare(cmp)
}

// SetDestroy registers f to receive every pair the map drops: overwritten, removed, or cleared.
// Pairs returned by Take aren't passed to f. A nil f disables it.
func (u *TreeMap[K, V, S]) SetDestroy(f func(Pair[K, V])) {
	if u == nil {
		return
	} else if f == nil {
		u.tree().SetCleanKey(nil)
		u.tree().SetCleanValue(nil)
		return
	}
	// the tree hands over a key right before its value.
	u.tree().SetCleanKey(func(k K) { u.pending = k })
	u.tree().SetCleanValue(func(v V) {
		k := u.pending
		u.pending = *new(K)
		f(Pair[K, V]{k, v})
	})
}

// Put k and v, replacing the pair of an existing k.
func (u *TreeMap[K, V, S]) Put(k K, v V) error {
	return u.tree().Put(k, v)
}

// PutPair is Put(p.Key, p.Value).
func (u *TreeMap[K, V, S]) PutPair(p Pair[K, V]) error {
	return u.tree().Put(p.Key, p.Value)
}

func (u *TreeMap[K, V, S]) Get(k K) (V, bool) {
	return u.tree().Get(k)
}

func (u *TreeMap[K, V, S]) Has(k K) bool {
	return u.tree().Has(k)
}

// Remove k and its value. Returns Trees.ErrNotFound if k isn't in the map.
func (u *TreeMap[K, V, S]) Remove(k K) error {
	return u.tree().Remove(k)
}

// Take removes the pair with the smallest key and returns it. The caller owns the returned pair.
func (u *TreeMap[K, V, S]) Take() (K, V, bool) {
	k, _, ok := u.tree().Minimum()
	if !ok {
		return k, *new(V), false
	}
	k, v, err := u.tree().Extract(k)
	return k, v, err == nil
}

func (u *TreeMap[K, V, S]) Size() uint {
	return u.tree().Size()
}

// Clear drops all pairs in ascending order, passing each to the destroy function.
func (u *TreeMap[K, V, S]) Clear() {
	if u != nil {
		u.it = nil
		u.t.Clear()
	}
}

// Destroy clears the map and releases its storage. The map can't be used afterwards.
func (u *TreeMap[K, V, S]) Destroy() {
	if u != nil {
		u.it = nil
		u.t.Destroy()
	}
}

func pair[K, V any](k K, v V, ok bool) (Pair[K, V], bool) {
	return Pair[K, V]{k, v}, ok
}

func (u *TreeMap[K, V, S]) Minimum() (Pair[K, V], bool) {
	return pair(u.tree().Minimum())
}

func (u *TreeMap[K, V, S]) Maximum() (Pair[K, V], bool) {
	return pair(u.tree().Maximum())
}

// Predecessor is the pair with the greatest key less than k, where k is in the map.
func (u *TreeMap[K, V, S]) Predecessor(k K) (Pair[K, V], bool) {
	return pair(u.tree().Predecessor(k))
}

// Successor is the pair with the smallest key greater than k, where k is in the map.
func (u *TreeMap[K, V, S]) Successor(k K) (Pair[K, V], bool) {
	return pair(u.tree().Successor(k))
}

// Iterate walks the map in ascending order, one pair per call. Calling it with reset
// rewinds to the smallest key and returns no pair. ErrEnd is returned after the largest key.
// Adding or removing keys between calls is allowed: the walk continues with the smallest
// key greater than the one last returned.
func (u *TreeMap[K, V, S]) Iterate(reset bool) (Pair[K, V], error) {
	return u.step(reset, false)
}

// ReverseIterate is Iterate in descending order.
func (u *TreeMap[K, V, S]) ReverseIterate(reset bool) (Pair[K, V], error) {
	return u.step(reset, true)
}

func (u *TreeMap[K, V, S]) step(reset, reverse bool) (Pair[K, V], error) {
	if !u.tree().Initialized() {
		return Pair[K, V]{}, Trees.ErrNoInit
	}
	if u.it == nil || u.it.Reverse() != reverse || reset {
		u.it, u.moved = u.t.Cursor(reverse), false
	} else if u.it.Stale() {
		if u.moved {
			u.it = u.t.Seek(u.last, reverse)
		} else {
			u.it.Reset()
		}
	}
	if reset {
		return Pair[K, V]{}, nil
	}
	if k, v, ok := u.it.Next(); ok {
		u.last, u.moved = k, true
		return Pair[K, V]{k, v}, nil
	}
	return Pair[K, V]{}, ErrEnd
}

// Keys returns a closure giving the keys in ascending order.
func (u *TreeMap[K, V, S]) Keys() func() (K, bool) {
	next := u.tree().InOrder()
	return func() (K, bool) {
		k, _, ok := next()
		return k, ok
	}
}

// Values returns a closure giving the values in ascending order of their keys.
func (u *TreeMap[K, V, S]) Values() func() (V, bool) {
	next := u.tree().InOrder()
	return func() (V, bool) {
		_, v, ok := next()
		return v, ok
	}
}

// Pairs returns a closure giving the pairs in ascending order.
func (u *TreeMap[K, V, S]) Pairs() func() (K, V, bool) {
	return u.tree().InOrder()
}

func (u *TreeMap[K, V, S]) All() iter.Seq2[K, V] {
	return u.tree().All()
}

func (u *TreeMap[K, V, S]) Backward() iter.Seq2[K, V] {
	return u.tree().Backward()
}

// Validate checks the underlying tree, see Trees.RBTree.Validate.
func (u *TreeMap[K, V, S]) Validate() error {
	return u.tree().Validate()
}

var _ Maps.Map[int, int] = (*TreeMap[int, int, uint])(nil)
