package Sets

type Set[E any] interface {
	// Put e in the set. Returns true if e wasn't in the set and is added.
	Put(E) bool
	Has(E) bool
	// Remove e from the set. Returns true if e was in the set.
	Remove(E) bool
	Size() uint
	// Take an element out of the set. The bool is false when the set is empty.
	Take() (E, bool)
	// Range calls f on each element until f returns false.
	Range(f func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	// PutAll elements of other, returns the number added.
	PutAll(other Set[E]) uint
	// RemoveAll elements of other, returns the number removed.
	RemoveAll(other Set[E]) uint
	Eq(other Set[E]) bool
	Union(other Set[E])
	Intersect(other Set[E])
	// Filter returns a new set holding the elements for which f is true.
	Filter(f func(E) bool) ExtendedSet[E]
}
