package Maps

// Map is an associative container from K to V. Methods returning a trailing bool
// report whether the other return values are defined.
type Map[K, V any] interface {
	Put(K, V) error
	Has(K) bool
	Get(K) (V, bool)
	Remove(K) error
	Take() (K, V, bool)
	Keys() func() (K, bool)
	Values() func() (V, bool)
	Pairs() func() (K, V, bool)
	Size() uint
	Clear()
}
