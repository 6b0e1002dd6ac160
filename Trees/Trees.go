package Trees

// Tree represents an ordered map from K to V implemented using nodes.
// Receivers that have A bool as the last return value indicate whether
// the other return values are defined. For example, if calling Minimum on
// an empty tree, the return value will be (k K, v V, false bool). In this
// case the values of k and v should be undefined. However, depending on
// specific implementations, they might have A meaning, but it's
// advised that they not be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[K, V any] interface {
	//Put k and v to the Tree, replacing the value of an existing k.
	Put(k K, v V) error
	//Get the value of k.
	Get(k K) (V, bool)
	//Has key k.
	Has(k K) bool
	//Remove k from the Tree. Returns an error if k isn't in the tree.
	Remove(k K) error
	//Minimum key of the tree.
	Minimum() (K, V, bool)
	//Maximum key of the tree.
	Maximum() (K, V, bool)
	//Predecessor returns the greatest key less than k, where k is in the tree.
	Predecessor(k K) (K, V, bool)
	//Successor returns the smallest key greater than k, where k is in the tree.
	Successor(k K) (K, V, bool)
	//Size of the tree.
	Size() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives pairs in the in-order traversal of the tree.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (K, V, bool)
	//Validate returns a non nil error if the tree has corrupt structures,
	//when the nodes violate the properties of that specific implementation.
	Validate() error
}

var _ Tree[int, int] = (*RBTree[int, int, uint])(nil)
