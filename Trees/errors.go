package Trees

import "github.com/ansel1/merry"

// Errors returned by RBTree. Test for them with merry.Is; the returned
// errors may carry extra context such as the offending key under the "key" value.
var (
	// ErrNotFound is returned when the requested key isn't in the tree.
	ErrNotFound = merry.New("key not found")
	// ErrNoMem is returned by Put when every index representable by S is in use.
	ErrNoMem = merry.New("tree arena exhausted")
	// ErrNoInit is returned when operating on a nil or destroyed tree.
	ErrNoInit = merry.New("tree not initialized")
	// ErrNotEmpty is returned by SetCompare on a tree that holds keys.
	ErrNotEmpty = merry.New("tree not empty")
	// ErrNilFunc is returned by SetCompare when given a nil comparator.
	ErrNilFunc = merry.New("nil compare function")
	// ErrCorrupt is returned by Validate when an invariant doesn't hold.
	ErrCorrupt = merry.New("tree corrupt")
)
