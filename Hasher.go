package Go_Utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash"
)

// Hasher is a seed for 64-bit xxhash. Hasher(0) gives the plain xxhash digest.
// Different seeds give independent hash functions over the same input. The receivers are thread-safe.
type Hasher uint64

// HashBytes hashes the given byte slice. A nonzero seed is hashed as an 8 byte prefix of b.
func (u Hasher) HashBytes(b []byte) uint64 {
	if u == 0 {
		return xxhash.Sum64(b)
	}
	d := xxhash.New()
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(u))
	_, _ = d.Write(seed[:])
	_, _ = d.Write(b)
	return d.Sum64()
}

// HashString hashes v without copying it. It gives the same result as HashBytes([]byte(v)).
func (u Hasher) HashString(v string) uint64 {
	return u.HashBytes(unsafe.Slice(unsafe.StringData(v), len(v)))
}

// HashInt hashes the 8 byte little endian form of v.
func (u Hasher) HashInt(v int) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return u.HashBytes(b[:])
}
