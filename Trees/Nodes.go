package Trees

import "golang.org/x/exp/constraints"

type color bool

// The zero value of color is black, so the zero node at index 0 is a valid sentinel.
const (
	black color = false
	red   color = true
)

func (c color) String() string {
	if c == red {
		return "RED"
	}
	return "BLACK"
}

// A node in the arena of an RBTree.
// p, l, r are indexes into the arena; index 0 is the sentinel and stands for
// "no parent" or "no child". The zero value is a black node linked to the sentinel.
type node[K, V any, S constraints.Unsigned] struct {
	k       K
	v       V
	p, l, r S
	c       color
}
