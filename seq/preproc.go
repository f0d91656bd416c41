package seq

import "slices"

// Preprocessor is one transform in the on-the-fly chain. Apply receives an
// owned buffer and returns an owned buffer (in-place reuse is fine); the
// chain hands ownership forward hop by hop. Implementations must be pure,
// deterministic and reentrant.
type Preprocessor[T Symbol] interface {
	Apply(in []T) []T
	Name() string
}

// AddPreprocessor appends p to the chain.
func (s *Sequence[T]) AddPreprocessor(p Preprocessor[T]) {
	s.preprocessors = append(s.preprocessors, p)
	s.purgeCache()
}

// NumPreprocessors reports the chain length.
func (s *Sequence[T]) NumPreprocessors() int { return len(s.preprocessors) }

// ClearPreprocessors drops the whole chain.
func (s *Sequence[T]) ClearPreprocessors() {
	s.preprocessors = nil
	s.purgeCache()
}

// EnableOnTheFlyPreprocessing routes every Get through the chain.
func (s *Sequence[T]) EnableOnTheFlyPreprocessing() { s.preprocessOnGet = true }

// DisableOnTheFlyPreprocessing restores aliasing Get.
func (s *Sequence[T]) DisableOnTheFlyPreprocessing() { s.preprocessOnGet = false }

// PreprocessOnGet reports whether fetches route through the chain.
func (s *Sequence[T]) PreprocessOnGet() bool { return s.preprocessOnGet }

// SortSymbols sorts each fetched string ascending, the canonical form used
// by sorted-word kernels.
type SortSymbols[T Symbol] struct{}

// Apply sorts in place and returns the same buffer.
func (SortSymbols[T]) Apply(in []T) []T {
	slices.Sort(in)
	return in
}

// Name returns the preprocessor name.
func (SortSymbols[T]) Name() string { return "SortSymbols" }

// ReverseSymbols reverses each fetched string.
type ReverseSymbols[T Symbol] struct{}

// Apply reverses in place and returns the same buffer.
func (ReverseSymbols[T]) Apply(in []T) []T {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
	return in
}

// Name returns the preprocessor name.
func (ReverseSymbols[T]) Name() string { return "ReverseSymbols" }
