// Package TreeSet is an ordered Sets.Set backed by a Trees.RBTree.
package TreeSet

import (
	"iter"

	"github.com/g-m-twostay/go-containers/Sets"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet keeps its elements sorted. It can hold at most the max value of S elements.
// It's not thread-safe. Methods called on a nil *TreeSet behave like on an empty set that can't grow.
type TreeSet[E any, S constraints.Unsigned] struct {
	t *Trees.RBTree[E, struct{}, S]
}

// New TreeSet ordering elements with <. hint is the number of elements to reserve room for.
func New[E constraints.Ordered, S constraints.Unsigned](hint S) *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.New[E, struct{}, S](hint)}
}

// NewFunc creates a TreeSet ordering elements with cmp. Returns nil if cmp is nil.
func NewFunc[E any, S constraints.Unsigned](cmp func(a, b E) int, hint S) *TreeSet[E, S] {
	t := Trees.NewFunc[E, struct{}, S](cmp, hint)
	if t == nil {
		return nil
	}
	return &TreeSet[E, S]{t}
}

func (u *TreeSet[E, S]) tree() *Trees.RBTree[E, struct{}, S] {
	if u == nil {
		return nil
	}
	return u.t
}

// SetClean registers f to receive every element the set drops. Elements returned by Take aren't passed to f.
func (u *TreeSet[E, S]) SetClean(f func(E)) {
	u.tree().SetCleanKey(f)
}

// Put e in the set. Returns false if e is already in the set, or the set is full.
// Time: O(D)
func (u *TreeSet[E, S]) Put(e E) bool {
	if u.tree().Has(e) {
		return false
	}
	return u.tree().Put(e, struct{}{}) == nil
}

// Add is Put that reports why e couldn't be added: Trees.ErrNoMem when the set is full.
// Adding an existing element is a no-op.
func (u *TreeSet[E, S]) Add(e E) error {
	if u.tree().Has(e) {
		return nil
	}
	return u.tree().Put(e, struct{}{})
}

func (u *TreeSet[E, S]) Has(e E) bool {
	return u.tree().Has(e)
}

func (u *TreeSet[E, S]) Remove(e E) bool {
	return u.tree().Remove(e) == nil
}

func (u *TreeSet[E, S]) Size() uint {
	return u.tree().Size()
}

// Take removes and returns the minimum element.
func (u *TreeSet[E, S]) Take() (E, bool) {
	e, _, ok := u.tree().Minimum()
	if !ok {
		return e, false
	}
	e, _, err := u.tree().Extract(e)
	return e, err == nil
}

// Range over the elements in ascending order. The set must not be modified by f.
func (u *TreeSet[E, S]) Range(f func(E) bool) {
	for e := range u.tree().All() {
		if !f(e) {
			return
		}
	}
}

// All elements in ascending order.
func (u *TreeSet[E, S]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		u.Range(yield)
	}
}

func (u *TreeSet[E, S]) Minimum() (E, bool) {
	e, _, ok := u.tree().Minimum()
	return e, ok
}

func (u *TreeSet[E, S]) Maximum() (E, bool) {
	e, _, ok := u.tree().Maximum()
	return e, ok
}

// Predecessor is the greatest element less than e, where e is in the set.
func (u *TreeSet[E, S]) Predecessor(e E) (E, bool) {
	p, _, ok := u.tree().Predecessor(e)
	return p, ok
}

// Successor is the smallest element greater than e, where e is in the set.
func (u *TreeSet[E, S]) Successor(e E) (E, bool) {
	s, _, ok := u.tree().Successor(e)
	return s, ok
}

func (u *TreeSet[E, S]) Clear() {
	u.tree().Clear()
}

func (u *TreeSet[E, S]) Validate() error {
	return u.tree().Validate()
}

func (u *TreeSet[E, S]) PutAll(other Sets.Set[E]) (n uint) {
	other.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E, S]) RemoveAll(other Sets.Set[E]) (n uint) {
	other.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq is true when u and other hold the same elements.
func (u *TreeSet[E, S]) Eq(other Sets.Set[E]) bool {
	if u.Size() != other.Size() {
		return false
	}
	eq := true
	u.Range(func(e E) bool {
		eq = other.Has(e)
		return eq
	})
	return eq
}

// Union puts all elements of other into u. Elements that don't fit are dropped.
func (u *TreeSet[E, S]) Union(other Sets.Set[E]) {
	u.PutAll(other)
}

// Intersect removes elements of u that aren't in other.
func (u *TreeSet[E, S]) Intersect(other Sets.Set[E]) {
	var drop []E
	u.Range(func(e E) bool {
		if !other.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.Remove(e)
	}
}

// Filter returns a new set with the same order holding the elements for which f is true.
func (u *TreeSet[E, S]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	s := &TreeSet[E, S]{Trees.NewFunc[E, struct{}, S](u.tree().Comparator(), 0)}
	u.Range(func(e E) bool {
		if f(e) {
			s.Put(e)
		}
		return true
	})
	return s
}

var _ Sets.ExtendedSet[int] = (*TreeSet[int, uint])(nil)
