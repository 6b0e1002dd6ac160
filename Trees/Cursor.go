package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// The states of a Cursor. "near" is the side the traversal starts from: left for an
// ascending cursor, right for a descending one; "far" is the other side.
type cursorState byte

const (
	descendNear cursorState = iota // go down the near links from cur, then yield
	descendFar                     // cur was yielded; go to its far subtree or back up
	fromNear                       // came up to cur from its near child; yield cur
	fromFar                        // came up to cur from its far child; keep going up
	stopped
)

// Cursor walks an RBTree in key order one pair at a time. It uses the parent links of the
// tree instead of a stack, so it holds O(1) memory and can be left at any point.
// Adding or removing a key invalidates every cursor over the tree: Next then reports false
// until the cursor is Reset. Overwriting the value of an existing key doesn't invalidate it.
type Cursor[K, V any, S constraints.Unsigned] struct {
	t       *RBTree[K, V, S]
	cur     S
	mods    uint
	state   cursorState
	reverse bool
}

// Cursor returns a cursor positioned before the minimum key, or before the maximum key if
// reverse is true.
func (u *RBTree[K, V, S]) Cursor(reverse bool) *Cursor[K, V, S] {
	c := &Cursor[K, V, S]{t: u, reverse: reverse}
	c.Reset()
	return c
}

// Seek returns a cursor whose first pair is the one with the smallest key greater than k, or
// the greatest key less than k if reverse is true. k doesn't need to be in the tree.
// Time: O(D)
func (u *RBTree[K, V, S]) Seek(k K, reverse bool) *Cursor[K, V, S] {
	c := &Cursor[K, V, S]{t: u, reverse: reverse, state: stopped}
	if !u.ready() {
		return c
	}
	c.mods = u.mods
	var at S
	for cur := u.root; cur != 0; {
		if r := u.cmp(k, u.ns[cur].k); !reverse && r < 0 || reverse && r > 0 {
			at, cur = cur, c.near(cur)
		} else {
			cur = c.far(cur)
		}
	}
	if at != 0 {
		// everything on the near side of at has been passed.
		c.cur, c.state = at, fromNear
	}
	return c
}

// Stale reports whether the tree gained or lost keys since the cursor was positioned.
func (c *Cursor[K, V, S]) Stale() bool {
	return !c.t.ready() || c.mods != c.t.mods
}

// Reverse reports whether the cursor walks in descending order.
func (c *Cursor[K, V, S]) Reverse() bool {
	return c.reverse
}

// Reset the cursor to the start of the traversal.
func (c *Cursor[K, V, S]) Reset() {
	c.cur, c.state = 0, stopped
	if !c.t.ready() {
		return
	}
	c.mods = c.t.mods
	if c.t.root != 0 {
		c.cur, c.state = c.t.root, descendNear
	}
}

func (c *Cursor[K, V, S]) near(i S) S {
	if c.reverse {
		return c.t.ns[i].r
	}
	return c.t.ns[i].l
}

func (c *Cursor[K, V, S]) far(i S) S {
	if c.reverse {
		return c.t.ns[i].l
	}
	return c.t.ns[i].r
}

// ascend from cur to its parent, recording which side it came from.
func (c *Cursor[K, V, S]) ascend() {
	p := c.t.ns[c.cur].p
	if p == 0 {
		c.state = stopped
	} else if c.near(p) == c.cur {
		c.state = fromNear
	} else {
		c.state = fromFar
	}
	c.cur = p
}

// Next returns the pair at the cursor and advances it. The third return value is false
// once the traversal is exhausted; it stays false until Reset.
// Time: amortized O(1)
func (c *Cursor[K, V, S]) Next() (k K, v V, ok bool) {
	if c.Stale() {
		c.state = stopped
	}
	for {
		switch c.state {
		case descendNear:
			for n := c.near(c.cur); n != 0; n = c.near(c.cur) {
				c.cur = n
			}
			c.state = descendFar
			return c.t.ns[c.cur].k, c.t.ns[c.cur].v, true
		case fromNear:
			c.state = descendFar
			return c.t.ns[c.cur].k, c.t.ns[c.cur].v, true
		case descendFar:
			if f := c.far(c.cur); f != 0 {
				c.cur, c.state = f, descendNear
			} else {
				c.ascend()
			}
		case fromFar:
			c.ascend()
		default:
			return
		}
	}
}

// InOrder returns A closure function f acting like an iterator. f gives pairs in ascending
// key order. Calling f is like calling "Next()" of iterators: k, v, valid=f()
// k and v are meaningful only if valid is true. When valid==false, then f is exhausted.
func (u *RBTree[K, V, S]) InOrder() func() (K, V, bool) {
	return u.Cursor(false).Next
}

// All pairs in ascending key order.
func (u *RBTree[K, V, S]) All() iter.Seq2[K, V] {
	return u.seq(false)
}

// Backward returns all pairs in descending key order.
func (u *RBTree[K, V, S]) Backward() iter.Seq2[K, V] {
	return u.seq(true)
}

func (u *RBTree[K, V, S]) seq(reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := u.Cursor(reverse); ; {
			k, v, ok := c.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
