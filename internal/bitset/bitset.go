// Package bitset provides a fixed-size bitset backed by 64-bit words.
//
// All mutations go through sync/atomic. Two sieve chunks working different
// strides of the same prime can land in the same 64-bit word; atomic AND/OR
// keeps those read-modify-write cycles race-free without an external lock.
package bitset

import (
	"math/bits"
	"sync/atomic"
)

// BitSet is a fixed-size bitset packing 64 bits per word.
type BitSet struct {
	words []atomic.Uint64
	size  uint64
}

// New creates a BitSet holding size bits, all initially zero.
func New(size uint64) *BitSet {
	return &BitSet{
		words: make([]atomic.Uint64, (size+63)/64),
		size:  size,
	}
}

// Len returns the number of bits the set holds.
func (b *BitSet) Len() uint64 { return b.size }

// Words returns the number of 64-bit words backing the set.
func (b *BitSet) Words() int { return len(b.words) }

// SizeBytes returns the memory footprint of the word array in bytes.
func (b *BitSet) SizeBytes() uint64 { return uint64(len(b.words)) * 8 }

// SetAll sets every bit, including any unused bits in the last word.
func (b *BitSet) SetAll() {
	for i := range b.words {
		b.words[i].Store(^uint64(0))
	}
}

// Set sets the bit at index i.
func (b *BitSet) Set(i uint64) {
	if i >= b.size {
		return
	}
	w := &b.words[i/64]
	mask := uint64(1) << (i % 64)
	for {
		old := w.Load()
		if w.CompareAndSwap(old, old|mask) {
			return
		}
	}
}

// Clear clears the bit at index i using an atomic fetch-AND, so concurrent
// clears hitting the same word cannot lose updates.
func (b *BitSet) Clear(i uint64) {
	if i >= b.size {
		return
	}
	w := &b.words[i/64]
	mask := ^(uint64(1) << (i % 64))
	for {
		old := w.Load()
		if w.CompareAndSwap(old, old&mask) {
			return
		}
	}
}

// Test returns true if the bit at index i is set.
func (b *BitSet) Test(i uint64) bool {
	if i >= b.size {
		return false
	}
	return b.words[i/64].Load()&(1<<(i%64)) != 0
}

// Count returns the number of set bits within [0, Len).
func (b *BitSet) Count() uint64 {
	var n uint64
	for i := range b.words {
		w := b.words[i].Load()
		if i == len(b.words)-1 {
			if rem := b.size % 64; rem != 0 {
				w &= (1 << rem) - 1
			}
		}
		n += uint64(bits.OnesCount64(w))
	}
	return n
}
