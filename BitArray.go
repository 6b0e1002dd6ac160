package Go_Utils

import (
	"math/bits"
)

// NewBitArray holding at least size bits, all cleared.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size array of bits. Indexes out of range panic.
type BitArray struct {
	bits []uint
}

// Len is the number of bits, a multiple of bits.UintSize.
func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count the set bits.
func (u BitArray) Count() (n uint) {
	for _, b := range u.bits {
		n += uint(bits.OnesCount(b))
	}
	return
}

// Reset clears all bits.
func (u BitArray) Reset() {
	clear(u.bits)
}
