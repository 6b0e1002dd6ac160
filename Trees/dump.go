package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-containers/Queues"
)

type levelNode[S any] struct {
	i     S
	level uint
}

// Dump writes the tree to w breadth-first, one node per line as "level key color".
// Level 0 is the root.
func (u *RBTree[K, V, S]) Dump(w io.Writer) error {
	if !u.ready() {
		return ErrNoInit
	}
	if u.root == 0 {
		return nil
	}
	q := Queues.MakeArrayQueue[levelNode[S]](u.sz/2 + 1)
	q.Push(levelNode[S]{u.root, 0})
	for !q.Empty() {
		e, err := q.Pop()
		if err != nil {
			return err
		}
		n := &u.ns[e.i]
		if _, err = fmt.Fprintf(w, "%d %v %v\n", e.level, n.k, n.c); err != nil {
			return err
		}
		if n.l != 0 {
			q.Push(levelNode[S]{n.l, e.level + 1})
		}
		if n.r != 0 {
			q.Push(levelNode[S]{n.r, e.level + 1})
		}
	}
	return nil
}
