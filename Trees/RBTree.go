package Trees

import (
	"github.com/ansel1/merry"
	"golang.org/x/exp/constraints"
)

// RBTree is an ordered map from K to V implemented as a red-black tree. There are no
// repeated keys; the order is defined by a three-way compare function.
// Nodes live in an arena indexed by S, so S bounds the number of keys the tree can
// hold to the largest value of S; once that is reached Put fails with ErrNoMem.
// For example, RBTree[int, string, uint16] holds at most 65535 keys.
// Optional clean functions are called on keys and values that leave the tree, either
// by Remove, by being overwritten in Put, or by Clear and Destroy. Each stored key and
// value is handed to its clean function exactly once.
// RBTree isn't safe for concurrent use.
// The height D of the tree is at most 2*log2(n+1).
type RBTree[K, V any, S constraints.Unsigned] struct {
	arena[K, V, S]
	sz     uint
	mods   uint // structural changes so far, cursors compare it to detect staleness
	cmp    func(a, b K) int
	cleanK func(K)
	cleanV func(V)
}

// Compare is the default compare function used by New; it orders keys by their natural order.
func Compare[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// New RBTree for keys with a natural order. hint is the number of keys to reserve space for.
func New[K constraints.Ordered, V any, S constraints.Unsigned](hint S) *RBTree[K, V, S] {
	return NewFunc[K, V](Compare[K], hint)
}

// NewFunc returns an RBTree ordering its keys by cmp, which returns a negative number when a<b,
// 0 when a==b, and a positive number when a>b. cmp must define a strict total order that
// doesn't change during the lifetime of the tree. hint is the number of keys to reserve space for.
// Returns nil if cmp is nil.
func NewFunc[K, V any, S constraints.Unsigned](cmp func(a, b K) int, hint S) *RBTree[K, V, S] {
	if cmp == nil {
		return nil
	}
	return &RBTree[K, V, S]{arena: makeArena[K, V](hint), cmp: cmp}
}

func (u *RBTree[K, V, S]) ready() bool {
	return u != nil && u.ns != nil
}

// Initialized is false for a nil or destroyed tree.
func (u *RBTree[K, V, S]) Initialized() bool {
	return u.ready()
}

// SetCompare replaces the compare function. It is only allowed while the tree is empty.
func (u *RBTree[K, V, S]) SetCompare(cmp func(a, b K) int) error {
	if !u.ready() {
		return ErrNoInit
	} else if cmp == nil {
		return ErrNilFunc
	} else if u.sz != 0 {
		return merry.WithValue(ErrNotEmpty, "size", u.sz)
	}
	u.cmp = cmp
	return nil
}

// Comparator returns the compare function in use, nil for a nil tree.
func (u *RBTree[K, V, S]) Comparator() func(a, b K) int {
	if u == nil {
		return nil
	}
	return u.cmp
}

// SetCleanKey sets the function called on keys leaving the tree. nil disables it.
func (u *RBTree[K, V, S]) SetCleanKey(f func(K)) {
	if u.ready() {
		u.cleanK = f
	}
}

// SetCleanValue sets the function called on values leaving the tree. nil disables it.
func (u *RBTree[K, V, S]) SetCleanValue(f func(V)) {
	if u.ready() {
		u.cleanV = f
	}
}

// clean hands k to cleanK and then v to cleanV.
func (u *RBTree[K, V, S]) clean(k K, v V) {
	if u.cleanK != nil {
		u.cleanK(k)
	}
	if u.cleanV != nil {
		u.cleanV(v)
	}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[K, V, S]) Size() uint {
	if !u.ready() {
		return 0
	}
	return u.sz
}

// search the node holding k, 0 if there is none.
func (u *RBTree[K, V, S]) search(k K) S {
	for cur := u.root; cur != 0; {
		if c := u.cmp(k, u.ns[cur].k); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// Put k and v into the tree. When k is already present, the stored key and value are
// handed to the clean functions and replaced by k and v; the structure doesn't change.
// Returns ErrNoMem if a new node is needed but the arena is exhausted, in which case the
// tree is left as it was.
// Time: O(D)
func (u *RBTree[K, V, S]) Put(k K, v V) error {
	if !u.ready() {
		return ErrNoInit
	}
	p, c := S(0), 0
	for cur := u.root; cur != 0; {
		p = cur
		if c = u.cmp(k, u.ns[cur].k); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			n := &u.ns[cur]
			oldK, oldV := n.k, n.v
			n.k, n.v = k, v
			u.clean(oldK, oldV)
			return nil
		}
	}
	i := u.alloc(k, v)
	if i == 0 {
		return merry.WithValue(ErrNoMem, "size", u.sz)
	}
	u.ns[i].p = p
	if p == 0 {
		u.root = i
	} else if c < 0 {
		u.ns[p].l = i
	} else {
		u.ns[p].r = i
	}
	u.sz++
	u.mods++
	u.insertFixup(i)
	return nil
}

// insertFixup restores the red-black properties after the red node z is linked in.
func (u *RBTree[K, V, S]) insertFixup(z S) {
	for u.ns[u.ns[z].p].c == red {
		p := u.ns[z].p
		g := u.ns[p].p
		if p == u.ns[g].l {
			if y := u.ns[g].r; u.ns[y].c == red {
				u.ns[p].c, u.ns[y].c, u.ns[g].c = black, black, red
				z = g
				continue
			}
			if z == u.ns[p].r {
				z = p
				u.rotateLeft(z)
				p = u.ns[z].p
			}
			u.ns[p].c, u.ns[g].c = black, red
			u.rotateRight(g)
		} else {
			if y := u.ns[g].l; u.ns[y].c == red {
				u.ns[p].c, u.ns[y].c, u.ns[g].c = black, black, red
				z = g
				continue
			}
			if z == u.ns[p].l {
				z = p
				u.rotateRight(z)
				p = u.ns[z].p
			}
			u.ns[p].c, u.ns[g].c = black, red
			u.rotateLeft(g)
		}
	}
	u.ns[u.root].c = black
}

// Get the value stored with k.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V, S]) Get(k K) (V, bool) {
	if !u.ready() {
		return *new(V), false
	}
	i := u.search(k)
	return u.ns[i].v, i != 0
}

// Has key k.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V, S]) Has(k K) bool {
	return u.ready() && u.search(k) != 0
}

// Remove k and its value from the tree, handing both to the clean functions.
// Returns ErrNotFound if k isn't in the tree, in which case nothing changes.
// Time: O(D)
func (u *RBTree[K, V, S]) Remove(k K) error {
	if !u.ready() {
		return ErrNoInit
	}
	oldK, oldV, ok := u.remove(k)
	if !ok {
		return merry.WithValue(ErrNotFound, "key", k)
	}
	u.clean(oldK, oldV)
	return nil
}

// Extract removes k from the tree like Remove, but returns the stored key and value
// instead of handing them to the clean functions.
// Time: O(D)
func (u *RBTree[K, V, S]) Extract(k K) (K, V, error) {
	if !u.ready() {
		return *new(K), *new(V), ErrNoInit
	}
	oldK, oldV, ok := u.remove(k)
	if !ok {
		return oldK, oldV, merry.WithValue(ErrNotFound, "key", k)
	}
	return oldK, oldV, nil
}

// remove the node holding k and rebalance. Returns the key and value that were stored.
func (u *RBTree[K, V, S]) remove(k K) (K, V, bool) {
	z := u.search(k)
	if z == 0 {
		return *new(K), *new(V), false
	}
	oldK, oldV := u.ns[z].k, u.ns[z].v
	y := z
	if u.ns[z].l != 0 && u.ns[z].r != 0 {
		// y is the successor of z and has no left child; its pair moves into z.
		y = u.minimal(u.ns[z].r)
		u.ns[z].k, u.ns[z].v = u.ns[y].k, u.ns[y].v
	}
	x := u.ns[y].l
	if x == 0 {
		x = u.ns[y].r
	}
	xp, yc := u.ns[y].p, u.ns[y].c
	u.replace(y, x)
	u.release(y)
	u.sz--
	u.mods++
	if yc == black {
		u.deleteFixup(x, xp)
	}
	return oldK, oldV, true
}

// deleteFixup restores the red-black properties after a black node was unlinked. x took the
// place of that node and carries an extra black; xp is the parent of x, which is needed
// because x may be the sentinel.
func (u *RBTree[K, V, S]) deleteFixup(x, xp S) {
	for x != u.root && u.ns[x].c == black {
		if x == u.ns[xp].l {
			w := u.ns[xp].r
			if u.ns[w].c == red {
				u.ns[w].c, u.ns[xp].c = black, red
				u.rotateLeft(xp)
				w = u.ns[xp].r
			}
			if u.ns[u.ns[w].l].c == black && u.ns[u.ns[w].r].c == black {
				u.ns[w].c = red
				x, xp = xp, u.ns[xp].p
				continue
			}
			if u.ns[u.ns[w].r].c == black {
				u.ns[u.ns[w].l].c, u.ns[w].c = black, red
				u.rotateRight(w)
				w = u.ns[xp].r
			}
			u.ns[w].c, u.ns[xp].c, u.ns[u.ns[w].r].c = u.ns[xp].c, black, black
			u.rotateLeft(xp)
		} else {
			w := u.ns[xp].l
			if u.ns[w].c == red {
				u.ns[w].c, u.ns[xp].c = black, red
				u.rotateRight(xp)
				w = u.ns[xp].l
			}
			if u.ns[u.ns[w].r].c == black && u.ns[u.ns[w].l].c == black {
				u.ns[w].c = red
				x, xp = xp, u.ns[xp].p
				continue
			}
			if u.ns[u.ns[w].l].c == black {
				u.ns[u.ns[w].r].c, u.ns[w].c = black, red
				u.rotateLeft(w)
				w = u.ns[xp].l
			}
			u.ns[w].c, u.ns[xp].c, u.ns[u.ns[w].l].c = u.ns[xp].c, black, black
			u.rotateRight(xp)
		}
		x = u.root
	}
	if x != 0 {
		u.ns[x].c = black
	}
}

// Minimum key of the tree and its value.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V, S]) Minimum() (K, V, bool) {
	if !u.ready() {
		return *new(K), *new(V), false
	}
	i := u.minimal(u.root)
	return u.ns[i].k, u.ns[i].v, i != 0
}

// Maximum key of the tree and its value.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V, S]) Maximum() (K, V, bool) {
	if !u.ready() {
		return *new(K), *new(V), false
	}
	i := u.maximal(u.root)
	return u.ns[i].k, u.ns[i].v, i != 0
}

// Predecessor returns the greatest key less than k and its value. k must be in the tree;
// the third return value is false when it isn't or when k is the minimum.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V, S]) Predecessor(k K) (K, V, bool) {
	if !u.ready() {
		return *new(K), *new(V), false
	}
	i := u.search(k)
	if i != 0 {
		i = u.predecessor(i)
	}
	return u.ns[i].k, u.ns[i].v, i != 0
}

// Successor returns the smallest key greater than k and its value. k must be in the tree;
// the third return value is false when it isn't or when k is the maximum.
// Time: O(D); Space: O(1)
func (u *RBTree[K, V, S]) Successor(k K) (K, V, bool) {
	if !u.ready() {
		return *new(K), *new(V), false
	}
	i := u.search(k)
	if i != 0 {
		i = u.successor(i)
	}
	return u.ns[i].k, u.ns[i].v, i != 0
}

// Clear the tree, handing every key and value to the clean functions in ascending key
// order. The tree stays usable and keeps its allocated memory.
// Time: O(n)
func (u *RBTree[K, V, S]) Clear() {
	if !u.ready() {
		return
	}
	if u.cleanK != nil || u.cleanV != nil {
		for i := u.minimal(u.root); i != 0; i = u.successor(i) {
			u.clean(u.ns[i].k, u.ns[i].v)
		}
	}
	u.reset()
	u.sz = 0
	u.mods++
}

// Destroy clears the tree and releases its memory. Any later operation on the tree returns
// ErrNoInit or a zero result.
func (u *RBTree[K, V, S]) Destroy() {
	if !u.ready() {
		return
	}
	u.Clear()
	u.ns = nil
}
