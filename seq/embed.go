package seq

import (
	"fmt"
	"math"
)

// Embed packs every run of k consecutive remapped symbols into one word of
// T, in place: each string of length L becomes its order-k k-mer stream of
// length L-k+1. Requires a populated histogram, every string at least k
// long, and NumBits·k to fit into T. One-way: re-embedding is refused.
// On float element types Embed is a legal no-op.
func (s *Sequence[T]) Embed(k int) error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("embed: %w", ErrSubsetActive)
	}
	if isFloat[T]() {
		return nil
	}
	if k < 1 {
		return fmt.Errorf("embed: order %d: %w", k, ErrInvalidArgument)
	}
	if s.order > 0 {
		return fmt.Errorf("embed: order is already %d: %w", s.order, ErrAlreadyEmbedded)
	}
	if s.alpha.NumSymbolsInHistogram() == 0 {
		return fmt.Errorf("embed: empty histogram: %w", ErrInvalidArgument)
	}
	bits := s.alpha.NumBits()
	if bits*k > 8*symbolSize[T]() {
		return fmt.Errorf("embed: %d bits × order %d exceeds %d-bit element: %w",
			bits, k, 8*symbolSize[T](), ErrCapacity)
	}
	for i, str := range s.strings {
		if len(str) < k {
			return fmt.Errorf("embed: string %d has length %d < order %d: %w",
				i, len(str), k, ErrInvalidArgument)
		}
	}

	mask := packMask(bits * k)
	for i := range s.strings {
		str := s.strings[i]
		n := len(str)

		// first word
		for j := 0; j < k; j++ {
			str[j] = T(s.alpha.ToBin(byte(uint64(str[j]))))
		}
		str[0] = s.embedWordBits(str[:k], bits)

		// the rest, one shift-or-mask per symbol
		idx := 0
		for j := k; j < n; j++ {
			str[j] = T(s.alpha.ToBin(byte(uint64(str[j]))))
			str[idx+1] = T(((uint64(str[idx]) << bits) | uint64(str[j])) & mask)
			idx++
		}
		s.strings[i] = str[:n-k+1]
	}

	s.order = k
	s.originalNumSymbols = float64(s.alpha.NumSymbols())
	if k > 1 {
		s.numSymbols = math.Pow(2, float64(bits*k))
	} else {
		s.numSymbols = s.originalNumSymbols
	}
	s.computeSymbolMaskTable(bits)
	s.purgeCache()
	return nil
}

// EmbedWord packs the already-remapped symbols of word into one value of T,
// most significant symbol first. Zero on float element types.
func (s *Sequence[T]) EmbedWord(word []T) T {
	var zero T
	if isFloat[T]() {
		return zero
	}
	return s.embedWordBits(word, s.alpha.NumBits())
}

func (s *Sequence[T]) embedWordBits(word []T, bits int) T {
	var v uint64
	for _, w := range word {
		v = v<<bits | uint64(w)
	}
	return T(v)
}

// UnembedWord recovers the n raw characters packed into word. Nil on float
// element types.
func (s *Sequence[T]) UnembedWord(word T, n int) []byte {
	if isFloat[T]() {
		return nil
	}
	bits := s.alpha.NumBits()
	mask := packMask(bits)
	out := make([]byte, n)
	u := uint64(word)
	for i := 0; i < n; i++ {
		out[n-1-i] = s.alpha.ToChar(byte(u & mask))
		u >>= bits
	}
	return out
}

// computeSymbolMaskTable rebuilds the 256-entry lookup that expands each set
// bit j of a byte into a bits-wide all-ones group at offset bits·j.
func (s *Sequence[T]) computeSymbolMaskTable(bits int) {
	if isFloat[T]() {
		return
	}
	s.maskTable = make([]T, 256)
	mask := packMask(bits)
	for i := 0; i < 256; i++ {
		var entry uint64
		b := uint8(i)
		for j := 0; j < 8; j++ {
			if b&1 == 1 {
				entry |= mask << (bits * j)
			}
			b >>= 1
		}
		s.maskTable[i] = T(entry)
	}
}

// SymbolMaskTable returns the current 256-entry mask table; nil before an
// embedding and always nil on float element types.
func (s *Sequence[T]) SymbolMaskTable() []T { return s.maskTable }

// MaskedSymbols keeps the symbol groups of sym selected by the byte mask.
// Identity on float element types or before the table exists.
func (s *Sequence[T]) MaskedSymbols(sym T, mask byte) T {
	if isFloat[T]() || s.maskTable == nil {
		return sym
	}
	return T(uint64(s.maskTable[mask]) & uint64(sym))
}

// ShiftOffset shifts offset left by amount symbol groups. Zero on float
// element types.
func (s *Sequence[T]) ShiftOffset(offset T, amount int) T {
	var zero T
	if isFloat[T]() {
		return zero
	}
	return T(uint64(offset) << (amount * s.alpha.NumBits()))
}

// ShiftSymbol shifts sym right by amount symbol groups. Identity on float
// element types.
func (s *Sequence[T]) ShiftSymbol(sym T, amount int) T {
	if isFloat[T]() {
		return sym
	}
	return T(uint64(sym) >> (amount * s.alpha.NumBits()))
}

// packMask builds an n-bit all-ones mask.
func packMask(n int) uint64 {
	var m uint64
	for i := 0; i < n; i++ {
		m = m<<1 | 1
	}
	return m
}

// FromCharSequence builds an order-k word sequence of element type T from a
// raw character sequence: every character is remapped to its compact index
// and each window of k consecutive indices is packed into one word, most
// significant symbol first (least significant first when reversed). The
// first start words of every string are dropped. The result shares src's
// alphabet and carries the embedding order. On float T the remapped indices
// are copied without packing.
func FromCharSequence[T Symbol](src *Sequence[byte], k, start int, reversed bool) (*Sequence[T], error) {
	if k < 1 || start < 0 {
		return nil, fmt.Errorf("from char sequence: order %d start %d: %w", k, start, ErrInvalidArgument)
	}
	a := src.Alphabet()
	if a.NumSymbolsInHistogram() == 0 {
		return nil, fmt.Errorf("from char sequence: empty histogram: %w", ErrInvalidArgument)
	}
	bits := a.NumBits()
	if !isFloat[T]() && bits*k > 8*symbolSize[T]() {
		return nil, fmt.Errorf("from char sequence: %d bits × order %d exceeds %d-bit element: %w",
			bits, k, 8*symbolSize[T](), ErrCapacity)
	}

	out := NewWithAlphabet[T](a)
	list := make([][]T, src.Size())
	for i := range list {
		vec, mustFree, err := src.Get(i)
		if err != nil {
			return nil, err
		}
		bins := make([]T, len(vec))
		for j, c := range vec {
			bins[j] = T(a.ToBin(c))
		}
		if err = src.Release(vec, i, mustFree); err != nil {
			return nil, err
		}

		if isFloat[T]() {
			list[i] = bins
			continue
		}
		if len(bins) < k {
			return nil, fmt.Errorf("from char sequence: string %d has length %d < order %d: %w",
				i, len(bins), k, ErrInvalidArgument)
		}
		words := make([]T, len(bins)-k+1)
		for w := range words {
			var v uint64
			if reversed {
				for j := k - 1; j >= 0; j-- {
					v = v<<bits | uint64(bins[w+j])
				}
			} else {
				for j := 0; j < k; j++ {
					v = v<<bits | uint64(bins[w+j])
				}
			}
			words[w] = T(v)
		}
		if start > len(words) {
			return nil, fmt.Errorf("from char sequence: start %d beyond %d words: %w",
				start, len(words), ErrInvalidArgument)
		}
		list[i] = words[start:]
	}

	out.strings = list
	if isFloat[T]() {
		return out, nil
	}
	out.order = k
	out.originalNumSymbols = float64(a.NumSymbols())
	if k > 1 {
		out.numSymbols = math.Pow(2, float64(bits*k))
	} else {
		out.numSymbols = out.originalNumSymbols
	}
	out.computeSymbolMaskTable(bits)
	return out, nil
}
