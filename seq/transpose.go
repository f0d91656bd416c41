package seq

import "fmt"

// Transpose returns a new Sequence whose i-th string is the cross-section of
// every logical input string at position i. Requires equal-length strings.
// The result shares the alphabet handle.
func (s *Sequence[T]) Transpose() (*Sequence[T], error) {
	n := s.Size()
	if n == 0 {
		return nil, fmt.Errorf("transpose: empty sequence: %w", ErrInvalidArgument)
	}
	if !s.HasSameLength() {
		return nil, fmt.Errorf("transpose: %w", ErrRaggedInput)
	}
	l := s.MaxLength()

	cross := make([][]T, l)
	for j := range cross {
		cross[j] = make([]T, n)
	}
	for i := 0; i < n; i++ {
		vec, mustFree, err := s.Get(i)
		if err != nil {
			return nil, err
		}
		for j := 0; j < l; j++ {
			cross[j][i] = vec[j]
		}
		if err = s.Release(vec, i, mustFree); err != nil {
			return nil, err
		}
	}

	out := NewWithAlphabet[T](s.alpha)
	out.strings = cross
	return out, nil
}
