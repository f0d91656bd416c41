package alphabet

import "fmt"

// Identity selects one of the predefined symbol sets.
//
// The numeric values are stable: they are written verbatim into the SGV0
// compressed stream header and must never be reordered.
type Identity uint8

const (
	// DNA is the four-letter nucleotide alphabet A, C, G, T (2 bits).
	DNA Identity = iota
	// RNA is the four-letter nucleotide alphabet A, C, G, U (2 bits).
	RNA
	// Protein is the twenty-letter amino-acid alphabet (5 bits).
	Protein
	// Alphanum covers the digits 0-9 and lowercase a-z (6 bits).
	Alphanum
	// Digit covers the decimal digits 0-9 (4 bits).
	Digit
	// RawByte accepts every byte value 0-255 (8 bits).
	RawByte
	// RawWord accepts 16-bit symbol values. The byte-domain remap tables
	// degenerate to identity; histogram bookkeeping stays on the byte domain.
	RawWord
	// Binary accepts the raw byte values 0 and 1 (1 bit).
	Binary
	// None is the empty alphabet; every symbol is invalid.
	None
)

// String returns the canonical name of the identity.
func (id Identity) String() string {
	switch id {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "PROTEIN"
	case Alphanum:
		return "ALPHANUM"
	case Digit:
		return "DIGIT"
	case RawByte:
		return "RAWBYTE"
	case RawWord:
		return "RAWWORD"
	case Binary:
		return "BINARY"
	case None:
		return "NONE"
	default:
		return fmt.Sprintf("IDENTITY(%d)", uint8(id))
	}
}

// histSize is the byte-domain histogram width.
const histSize = 256

// Alphabet is a finite symbol set with frozen byte↔compact-index remap tables
// and a mutable histogram of observed symbols.
type Alphabet struct {
	identity   Identity
	numSymbols int
	numBits    int

	valid  [histSize]bool
	toBin  [histSize]byte
	toChar [histSize]byte

	hist [histSize]int64
	// histOverflow counts observations outside the byte domain; any such
	// observation fails CheckAlphabet.
	histOverflow int64
}

// New constructs an Alphabet for the given identity with an empty histogram.
func New(id Identity) *Alphabet {
	a := &Alphabet{identity: id}
	switch id {
	case DNA:
		a.initChars([]byte("ACGT"))
	case RNA:
		a.initChars([]byte("ACGU"))
	case Protein:
		a.initChars([]byte("ACDEFGHIKLMNPQRSTVWY"))
	case Alphanum:
		a.initChars([]byte("0123456789abcdefghijklmnopqrstuvwxyz"))
	case Digit:
		a.initChars([]byte("0123456789"))
	case RawByte:
		a.initIdentityRange(256)
		a.numBits = 8
	case RawWord:
		a.initIdentityRange(256)
		a.numSymbols = 1 << 16
		a.numBits = 16
	case Binary:
		a.initIdentityRange(2)
		a.numBits = 1
	case None:
		// zero symbols, nothing valid
	default:
		// unknown identities behave like None
	}
	return a
}

// initChars freezes remap tables for an explicit character set; the compact
// index of chars[i] is i.
func (a *Alphabet) initChars(chars []byte) {
	a.numSymbols = len(chars)
	a.numBits = ceilLog2(len(chars))
	for i, c := range chars {
		a.valid[c] = true
		a.toBin[c] = byte(i)
		a.toChar[i] = c
	}
}

// initIdentityRange freezes identity remap tables over [0, n).
func (a *Alphabet) initIdentityRange(n int) {
	a.numSymbols = n
	a.numBits = ceilLog2(n)
	for i := 0; i < n; i++ {
		a.valid[i] = true
		a.toBin[i] = byte(i)
		a.toChar[i] = byte(i)
	}
}

// ceilLog2 returns ⌈log₂ n⌉ for n ≥ 1 and 0 otherwise.
func ceilLog2(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// Identity reports which symbol set this alphabet enumerates.
func (a *Alphabet) Identity() Identity { return a.identity }

// NumSymbols reports the cardinality of the symbol set.
func (a *Alphabet) NumSymbols() int { return a.numSymbols }

// NumBits reports ⌈log₂ NumSymbols⌉, the width of one compact index.
func (a *Alphabet) NumBits() int { return a.numBits }

// IsValid reports whether the raw byte belongs to the symbol set.
func (a *Alphabet) IsValid(b byte) bool { return a.valid[b] }

// ToBin remaps a raw byte to its compact index in [0, NumSymbols).
// Unknown bytes map to 0; callers that care substitute or reject beforehand.
func (a *Alphabet) ToBin(b byte) byte { return a.toBin[b] }

// ToChar is the inverse remap on the valid domain. The result for an index
// outside [0, NumSymbols) is unspecified.
func (a *Alphabet) ToChar(v byte) byte { return a.toChar[v] }

// AddToHistogram counts every byte of s into the histogram.
func (a *Alphabet) AddToHistogram(s []byte) {
	for _, b := range s {
		a.hist[b]++
	}
}

// AddValue counts a single observed symbol value. Values outside the byte
// domain are tallied separately and fail CheckAlphabet.
func (a *Alphabet) AddValue(v int64) {
	if v < 0 || v >= histSize {
		a.histOverflow++
		return
	}
	a.hist[v]++
}

// ClearHistogram resets all observation counts.
func (a *Alphabet) ClearHistogram() {
	a.hist = [histSize]int64{}
	a.histOverflow = 0
}

// Count reports how often the raw byte b has been observed.
func (a *Alphabet) Count(b byte) int64 { return a.hist[b] }

// Histogram returns a copy of the byte-domain observation counts.
func (a *Alphabet) Histogram() [histSize]int64 { return a.hist }

// NumSymbolsInHistogram reports how many distinct symbols have been observed.
func (a *Alphabet) NumSymbolsInHistogram() int {
	n := 0
	for _, c := range a.hist {
		if c > 0 {
			n++
		}
	}
	return n
}

// MaxValueInHistogram reports the highest observed byte value, or -1 when the
// histogram is empty.
func (a *Alphabet) MaxValueInHistogram() int {
	for b := histSize - 1; b >= 0; b-- {
		if a.hist[b] > 0 {
			return b
		}
	}
	return -1
}

// CheckAlphabet reports whether every observed symbol is valid for the
// identity. It never fails the empty histogram.
func (a *Alphabet) CheckAlphabet() bool {
	if a.histOverflow > 0 {
		return false
	}
	for b := 0; b < histSize; b++ {
		if a.hist[b] > 0 && !a.valid[b] {
			return false
		}
	}
	return true
}

// CheckAlphabetSize reports whether the number of distinct observed symbols
// does not exceed the declared cardinality.
func (a *Alphabet) CheckAlphabetSize() bool {
	return a.NumSymbolsInHistogram() <= a.numSymbols
}
