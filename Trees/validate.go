package Trees

import (
	"github.com/ansel1/merry"
)

// Validate checks the tree and returns an ErrCorrupt describing the first violation found:
// keys out of order, a red root, a red node with a red child, unequal black heights, a
// parent link that doesn't match, a modified sentinel, or a size that doesn't match the
// number of reachable nodes.
// Recursive. Time: O(n)
func (u *RBTree[K, V, S]) Validate() error {
	if !u.ready() {
		return ErrNoInit
	}
	if z := u.ns[0]; z.c != black || z.p != 0 || z.l != 0 || z.r != 0 {
		return merry.Append(ErrCorrupt, "sentinel modified")
	}
	if u.root != 0 {
		if u.ns[u.root].c != black {
			return merry.Append(ErrCorrupt, "red root").WithValue("key", u.ns[u.root].k)
		}
		if u.ns[u.root].p != 0 {
			return merry.Append(ErrCorrupt, "root has a parent").WithValue("key", u.ns[u.root].k)
		}
	}
	n, _, err := u.validate(u.root, 0, 0)
	if err != nil {
		return err
	}
	if n != u.sz {
		return merry.Appendf(ErrCorrupt, "size is %d, %d nodes reachable", u.sz, n)
	}
	return nil
}

// validate the subtree rooting at i, whose keys must lie strictly between the keys of lo and
// hi (0 meaning unbounded). Returns the number of nodes and the black height of the subtree.
func (u *RBTree[K, V, S]) validate(i, lo, hi S) (n, bh uint, err error) {
	if i == 0 {
		return 0, 0, nil
	}
	cur := &u.ns[i]
	if lo != 0 && u.cmp(u.ns[lo].k, cur.k) >= 0 || hi != 0 && u.cmp(cur.k, u.ns[hi].k) >= 0 {
		return 0, 0, merry.Append(ErrCorrupt, "key out of order").WithValue("key", cur.k)
	}
	for _, c := range [2]S{cur.l, cur.r} {
		if c == 0 {
			continue
		}
		if u.ns[c].p != i {
			return 0, 0, merry.Append(ErrCorrupt, "wrong parent link").WithValue("key", u.ns[c].k)
		}
		if cur.c == red && u.ns[c].c == red {
			return 0, 0, merry.Append(ErrCorrupt, "red node with red child").WithValue("key", cur.k)
		}
	}
	ln, lbh, err := u.validate(cur.l, lo, i)
	if err != nil {
		return 0, 0, err
	}
	rn, rbh, err := u.validate(cur.r, i, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, merry.Appendf(ErrCorrupt, "black heights %d and %d", lbh, rbh).WithValue("key", cur.k)
	}
	if cur.c == black {
		lbh++
	}
	return ln + rn + 1, lbh, nil
}
