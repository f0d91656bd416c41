package seq

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/strseq/alphabet"
	"github.com/katalvlaran/strseq/subset"
)

// Sequence is a container of variable-length runs of T. See the package doc
// for the full contract.
type Sequence[T Symbol] struct {
	// strings holds the owned runs. When singleString is non-nil every entry
	// is a sub-view (offset+length) into that backing buffer.
	strings [][]T

	// alpha is a shared handle; its histogram is mutated only by this
	// sequence's loaders and SetAll/Append.
	alpha *alphabet.Alphabet

	// subsets virtualises every indexed operation; exclusively owned.
	subsets *subset.Stack

	// order is the current embedding order k; 0 means "not embedded".
	order int
	// numSymbols is the effective cardinality after embedding.
	numSymbols float64
	// originalNumSymbols is the alphabet cardinality before embedding.
	originalNumSymbols float64
	// maskTable is the 256-entry byte-mask → pre-shifted-mask lookup;
	// nil until an embedding builds it, always nil for float T.
	maskTable []T

	// singleString is the flat backing buffer after Slide/Positions.
	singleString []T

	preprocessOnGet bool
	preprocessors   []Preprocessor[T]

	// cache memoises preprocessed fetches per physical index; nil when
	// disabled. Purged by every mutation.
	cache *lru.Cache[int, []T]
}

// New constructs an empty Sequence over a fresh alphabet of the identity.
func New[T Symbol](id alphabet.Identity) *Sequence[T] {
	return NewWithAlphabet[T](alphabet.New(id))
}

// NewWithAlphabet constructs an empty Sequence sharing the given alphabet.
func NewWithAlphabet[T Symbol](a *alphabet.Alphabet) *Sequence[T] {
	n := float64(a.NumSymbols())
	return &Sequence[T]{
		alpha:              a,
		subsets:            subset.New(),
		numSymbols:         n,
		originalNumSymbols: n,
	}
}

// FromStrings constructs a Sequence holding clones of list, validated against
// a fresh alphabet of the identity.
func FromStrings[T Symbol](list [][]T, id alphabet.Identity) (*Sequence[T], error) {
	s := New[T](id)
	if err := s.SetAll(list); err != nil {
		return nil, err
	}
	return s, nil
}

// Alphabet returns the shared alphabet handle.
func (s *Sequence[T]) Alphabet() *alphabet.Alphabet { return s.alpha }

// Order reports the current embedding order; 0 means not embedded.
func (s *Sequence[T]) Order() int { return s.order }

// NumSymbols reports the effective symbol cardinality after embedding.
func (s *Sequence[T]) NumSymbols() float64 { return s.numSymbols }

// OriginalNumSymbols reports the alphabet cardinality before embedding.
func (s *Sequence[T]) OriginalNumSymbols() float64 { return s.originalNumSymbols }

// Size reports the logical number of strings, honouring any live subset.
func (s *Sequence[T]) Size() int {
	if s.subsets.HasSubsets() {
		return s.subsets.Size()
	}
	return len(s.strings)
}

// physical resolves a logical index to a physical one through the subset
// stack, bounds-checked against the logical size.
func (s *Sequence[T]) physical(i int) (int, error) {
	if i < 0 || i >= s.Size() {
		return 0, fmt.Errorf("index %d with %d strings: %w", i, s.Size(), ErrIndexRange)
	}
	return s.subsets.Map(i)
}

// Get returns a borrowed view of string i. With preprocessing off the slice
// aliases internal storage and mustFree is false; with preprocessing on a
// fresh buffer flows through the preprocessor chain and mustFree reports
// whether the caller owns it (a cached buffer stays owned by the cache).
// Pair every Get with a Release.
func (s *Sequence[T]) Get(i int) (vec []T, mustFree bool, err error) {
	phys, err := s.physical(i)
	if err != nil {
		return nil, false, err
	}
	if !s.preprocessOnGet {
		return s.strings[phys], false, nil
	}
	if s.cache != nil {
		if v, ok := s.cache.Get(phys); ok {
			return v, false, nil
		}
	}
	buf := make([]T, len(s.strings[phys]))
	copy(buf, s.strings[phys])
	for _, p := range s.preprocessors {
		buf = p.Apply(buf)
	}
	if s.cache != nil {
		s.cache.Add(phys, buf)
		return buf, false, nil
	}
	return buf, true, nil
}

// Release returns a borrowed view obtained from Get. Views into internal or
// cached storage need no freeing; the call still validates the index so a
// misuse shows up where it happens.
func (s *Sequence[T]) Release(vec []T, i int, mustFree bool) error {
	if _, err := s.physical(i); err != nil {
		return err
	}
	_ = vec
	_ = mustFree
	return nil
}

// GetCopy returns an owned clone of string i.
func (s *Sequence[T]) GetCopy(i int) ([]T, error) {
	vec, mustFree, err := s.Get(i)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(vec))
	copy(out, vec)
	if err = s.Release(vec, i, mustFree); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyStrings returns owned clones of every logical string, subset and
// preprocessors applied.
func (s *Sequence[T]) CopyStrings() ([][]T, error) {
	out := make([][]T, s.Size())
	for i := range out {
		vec, err := s.GetCopy(i)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

// GetElement returns the single symbol at position j of string i.
func (s *Sequence[T]) GetElement(i, j int) (T, error) {
	var zero T
	vec, mustFree, err := s.Get(i)
	if err != nil {
		return zero, err
	}
	defer s.Release(vec, i, mustFree) //nolint:errcheck // index already validated
	if j < 0 || j >= len(vec) {
		return zero, fmt.Errorf("element %d of string %d (len %d): %w", j, i, len(vec), ErrIndexRange)
	}
	return vec[j], nil
}

// Length reports the length of string i.
func (s *Sequence[T]) Length(i int) (int, error) {
	phys, err := s.physical(i)
	if err != nil {
		return 0, err
	}
	return len(s.strings[phys]), nil
}

// MaxLength reports the longest logical string; 0 when empty.
func (s *Sequence[T]) MaxLength() int {
	max := 0
	for i := 0; i < s.Size(); i++ {
		phys, err := s.subsets.Map(i)
		if err != nil {
			continue
		}
		if l := len(s.strings[phys]); l > max {
			max = l
		}
	}
	return max
}

// HasSameLength reports whether every logical string has the same length,
// optionally equal to want.
func (s *Sequence[T]) HasSameLength(want ...int) bool {
	max := s.MaxLength()
	if len(want) > 0 && want[0] != max {
		return false
	}
	for i := 0; i < s.Size(); i++ {
		if l, err := s.Length(i); err != nil || l != max {
			return false
		}
	}
	return true
}

// Set clones v into slot i. Fails while a subset is live.
func (s *Sequence[T]) Set(i int, v []T) error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("set: %w", ErrSubsetActive)
	}
	if len(v) == 0 {
		return fmt.Errorf("set: empty string: %w", ErrInvalidArgument)
	}
	if i < 0 || i >= len(s.strings) {
		return fmt.Errorf("set: index %d with %d strings: %w", i, len(s.strings), ErrIndexRange)
	}
	clone := make([]T, len(v))
	copy(clone, v)
	s.strings[i] = clone
	s.purgeCache()
	return nil
}

// SetAll replaces the whole storage with clones of list after revalidating
// the alphabet on the union. On failure the sequence is left unchanged.
func (s *Sequence[T]) SetAll(list [][]T) error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("set all: %w", ErrSubsetActive)
	}
	fresh := alphabet.New(s.alpha.Identity())
	for _, str := range list {
		for _, v := range str {
			fresh.AddValue(int64(v))
		}
	}
	if !fresh.CheckAlphabetSize() || !fresh.CheckAlphabet() {
		return fmt.Errorf("set all: %w", ErrInvalidSymbol)
	}
	s.install(cloneStrings(list), fresh, 0)
	return nil
}

// Append concatenates clones of list after revalidating the new strings
// against a fresh alphabet; on failure nothing is appended.
func (s *Sequence[T]) Append(list [][]T) error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("append: %w", ErrSubsetActive)
	}
	if len(s.strings) == 0 {
		return s.SetAll(list)
	}
	fresh := alphabet.New(s.alpha.Identity())
	for _, str := range list {
		for _, v := range str {
			fresh.AddValue(int64(v))
		}
	}
	if !fresh.CheckAlphabetSize() || !fresh.CheckAlphabet() {
		return fmt.Errorf("append: %w", ErrInvalidSymbol)
	}
	for _, str := range list {
		for _, v := range str {
			s.alpha.AddValue(int64(v))
		}
	}
	s.strings = append(s.strings, cloneStrings(list)...)
	s.purgeCache()
	return nil
}

// AppendSequence appends clones of every logical string of other.
func (s *Sequence[T]) AppendSequence(other *Sequence[T]) error {
	list := make([][]T, other.Size())
	for i := range list {
		vec, err := other.GetCopy(i)
		if err != nil {
			return err
		}
		list[i] = vec
	}
	return s.Append(list)
}

// Cleanup drops every string, rebuilds a blank alphabet of the same identity
// and clears all derived state. Fails while a subset is live.
func (s *Sequence[T]) Cleanup() error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("cleanup: %w", ErrSubsetActive)
	}
	s.install(nil, alphabet.New(s.alpha.Identity()), 0)
	return nil
}

// install atomically replaces storage, alphabet and derived state. The order
// parameter seeds the embedding order for loaders that pre-pack words.
func (s *Sequence[T]) install(strings [][]T, a *alphabet.Alphabet, order int) {
	s.subsets.PopAll()
	s.strings = strings
	s.alpha = a
	s.singleString = nil
	s.maskTable = nil
	s.order = order
	s.numSymbols = float64(a.NumSymbols())
	s.originalNumSymbols = s.numSymbols
	s.purgeCache()
}

// PushSubset stacks a read-only index view; every index must lie inside the
// current logical size.
func (s *Sequence[T]) PushSubset(idx []int) error {
	if err := s.checkSubsetIndices(idx); err != nil {
		return err
	}
	return s.subsets.Push(idx)
}

// PushSubsetInPlace composes idx with the current top layer.
func (s *Sequence[T]) PushSubsetInPlace(idx []int) error {
	if err := s.checkSubsetIndices(idx); err != nil {
		return err
	}
	return s.subsets.PushInPlace(idx)
}

func (s *Sequence[T]) checkSubsetIndices(idx []int) error {
	n := s.Size()
	for k, j := range idx {
		if j < 0 || j >= n {
			return fmt.Errorf("subset[%d]=%d with logical size %d: %w", k, j, n, ErrIndexRange)
		}
	}
	return nil
}

// PopSubset removes the newest subset layer.
func (s *Sequence[T]) PopSubset() { s.subsets.Pop() }

// RemoveAllSubsets drops every subset layer.
func (s *Sequence[T]) RemoveAllSubsets() { s.subsets.PopAll() }

// HasSubsets reports whether a subset view is live.
func (s *Sequence[T]) HasSubsets() bool { return s.subsets.HasSubsets() }

// CopySubset materialises the selected logical rows into a new Sequence that
// shares the alphabet and keeps the embedding order and mask table.
func (s *Sequence[T]) CopySubset(indices []int) (*Sequence[T], error) {
	list := make([][]T, len(indices))
	for k, i := range indices {
		phys, err := s.physical(i)
		if err != nil {
			return nil, err
		}
		clone := make([]T, len(s.strings[phys]))
		copy(clone, s.strings[phys])
		list[k] = clone
	}
	out := NewWithAlphabet[T](s.alpha)
	out.strings = list
	out.order = s.order
	out.numSymbols = s.numSymbols
	out.originalNumSymbols = s.originalNumSymbols
	if s.maskTable != nil {
		out.maskTable = make([]T, len(s.maskTable))
		copy(out.maskTable, s.maskTable)
	}
	return out, nil
}

func cloneStrings[T Symbol](list [][]T) [][]T {
	out := make([][]T, len(list))
	for i, str := range list {
		clone := make([]T, len(str))
		copy(clone, str)
		out[i] = clone
	}
	return out
}
