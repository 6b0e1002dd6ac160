package Trees

import (
	"golang.org/x/exp/constraints"
)

// arena holds the nodes of a tree in one slice. ns[0] is the sentinel, a zero value
// node that is never written to, so every link equal to 0 behaves like a black leaf.
// free is the beginning of the linked list that contains all the free indexes; node::l represents next.
type arena[K, V any, S constraints.Unsigned] struct {
	ns         []node[K, V, S]
	root, free S
}

// maxHint caps how many nodes makeArena reserves up front; the arena grows past it on demand.
const maxHint = 1 << 20

func makeArena[K, V any, S constraints.Unsigned](hint S) arena[K, V, S] {
	return arena[K, V, S]{ns: make([]node[K, V, S], 1, min(uint64(hint), maxHint)+1)}
}

// alloc a red node holding k and v with all links set to the sentinel. Free indexes are
// reused before the arena grows. Returns 0 when every index representable by S is taken.
func (u *arena[K, V, S]) alloc(k K, v V) S {
	if i := u.free; i != 0 {
		u.free = u.ns[i].l
		u.ns[i] = node[K, V, S]{k: k, v: v, c: red}
		return i
	}
	if uint64(len(u.ns)) > uint64(^S(0)) {
		return 0
	}
	u.ns = append(u.ns, node[K, V, S]{k: k, v: v, c: red})
	return S(len(u.ns) - 1)
}

// release index i once. The node is zeroed so the arena doesn't retain its key and value.
func (u *arena[K, V, S]) release(i S) {
	u.ns[i] = node[K, V, S]{l: u.free}
	u.free = i
}

// reset the arena to hold only the sentinel, keeping the allocated capacity.
func (u *arena[K, V, S]) reset() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free = 0, 0
}

// replace puts y in the position of x under x's parent, or as the root.
func (u *arena[K, V, S]) replace(x, y S) {
	if p := u.ns[x].p; p == 0 {
		u.root = y
	} else if u.ns[p].l == x {
		u.ns[p].l = y
	} else {
		u.ns[p].r = y
	}
	if y != 0 {
		u.ns[y].p = u.ns[x].p
	}
}

// rotateLeft around x; x becomes the left child of its right child.
// Time: O(1); Space: O(1)
func (u *arena[K, V, S]) rotateLeft(x S) {
	y := u.ns[x].r
	u.ns[x].r = u.ns[y].l
	if u.ns[y].l != 0 {
		u.ns[u.ns[y].l].p = x
	}
	u.replace(x, y)
	u.ns[y].l = x
	u.ns[x].p = y
}

// rotateRight around x; x becomes the right child of its left child.
// Time: O(1); Space: O(1)
func (u *arena[K, V, S]) rotateRight(x S) {
	y := u.ns[x].l
	u.ns[x].l = u.ns[y].r
	if u.ns[y].r != 0 {
		u.ns[u.ns[y].r].p = x
	}
	u.replace(x, y)
	u.ns[y].r = x
	u.ns[x].p = y
}

// minimal node of the subtree rooting at i, 0 if the subtree is empty.
func (u *arena[K, V, S]) minimal(i S) S {
	if i != 0 {
		for u.ns[i].l != 0 {
			i = u.ns[i].l
		}
	}
	return i
}

// maximal node of the subtree rooting at i, 0 if the subtree is empty.
func (u *arena[K, V, S]) maximal(i S) S {
	if i != 0 {
		for u.ns[i].r != 0 {
			i = u.ns[i].r
		}
	}
	return i
}

// successor of node i in in-order, 0 if i is the maximum.
func (u *arena[K, V, S]) successor(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.minimal(r)
	}
	p := u.ns[i].p
	for p != 0 && i == u.ns[p].r {
		i, p = p, u.ns[p].p
	}
	return p
}

// predecessor of node i in in-order, 0 if i is the minimum.
func (u *arena[K, V, S]) predecessor(i S) S {
	if l := u.ns[i].l; l != 0 {
		return u.maximal(l)
	}
	p := u.ns[i].p
	for p != 0 && i == u.ns[p].l {
		i, p = p, u.ns[p].p
	}
	return p
}
