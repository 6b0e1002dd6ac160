// Package BloomFilter is a probabilistic set. Query never gives a false negative; it gives
// a false positive with roughly the rate the filter was sized for.
package BloomFilter

import (
	"math"

	"github.com/ansel1/merry"
	Go_Utils "github.com/g-m-twostay/go-containers"
)

var ErrBadParam = merry.New("invalid bloom filter parameter")

type BloomFilter struct {
	bits Go_Utils.BitArray
	m, k uint // number of bits and of hash functions
	sz   uint
	seed Go_Utils.Hasher
}

// New BloomFilter sized to hold expected elements with a false positive rate of fpRate,
// which must be in (0, 1). seed selects the hash function.
func New(expected uint, fpRate float64, seed uint64) (*BloomFilter, error) {
	if expected == 0 {
		return nil, merry.WithValue(ErrBadParam, "expected", expected)
	} else if !(fpRate > 0 && fpRate < 1) {
		return nil, merry.WithValue(ErrBadParam, "fpRate", fpRate)
	}
	m := uint(math.Ceil(-float64(expected) * math.Log(fpRate) / (math.Ln2 * math.Ln2)))
	k := uint(math.Round(float64(m) / float64(expected) * math.Ln2))
	if k == 0 {
		k = 1
	}
	return &BloomFilter{bits: Go_Utils.NewBitArray(m), m: m, k: k, seed: Go_Utils.Hasher(seed)}, nil
}

// set the k bits of digest h. The i-th is h1+i*h2 mod m, from the two halves of h.
func (u *BloomFilter) set(h uint64) {
	h1, h2 := h&math.MaxUint32, h>>32|1
	for i := uint64(0); i < uint64(u.k); i++ {
		u.bits.Set(uint((h1 + i*h2) % uint64(u.m)))
	}
	u.sz++
}

func (u *BloomFilter) test(h uint64) bool {
	h1, h2 := h&math.MaxUint32, h>>32|1
	for i := uint64(0); i < uint64(u.k); i++ {
		if !u.bits.Get(uint((h1 + i*h2) % uint64(u.m))) {
			return false
		}
	}
	return true
}

func (u *BloomFilter) Insert(b []byte) {
	u.set(u.seed.HashBytes(b))
}

func (u *BloomFilter) InsertString(s string) {
	u.set(u.seed.HashString(s))
}

func (u *BloomFilter) InsertInt(v int) {
	u.set(u.seed.HashInt(v))
}

// Query returns false if b was never inserted, true if it probably was.
func (u *BloomFilter) Query(b []byte) bool {
	return u.test(u.seed.HashBytes(b))
}

func (u *BloomFilter) QueryString(s string) bool {
	return u.test(u.seed.HashString(s))
}

func (u *BloomFilter) QueryInt(v int) bool {
	return u.test(u.seed.HashInt(v))
}

// Size is the number of insertions, counting repeats.
func (u *BloomFilter) Size() uint {
	return u.sz
}

// Bits is the number of bits used.
func (u *BloomFilter) Bits() uint {
	return u.m
}

// Hashes is the number of hash functions per element.
func (u *BloomFilter) Hashes() uint {
	return u.k
}

// Clear empties the filter.
func (u *BloomFilter) Clear() {
	u.bits.Reset()
	u.sz = 0
}
