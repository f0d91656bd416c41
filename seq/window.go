package seq

import "fmt"

// Slide carves ⌊(L−window)/step⌋+1 sub-views out of the single backing
// string, each covering [offset+skip, min(offset+window, L)). The backing
// buffer is retained as the sequence's single string; views stay aliases
// into it. Requires either exactly one string or a single string already
// set. Returns the new logical size.
func (s *Sequence[T]) Slide(window, step, skip int) (int, error) {
	if s.subsets.HasSubsets() {
		return 0, fmt.Errorf("slide: %w", ErrSubsetActive)
	}
	if window <= 0 || step <= 0 || skip < 0 || skip >= window {
		return 0, fmt.Errorf("slide: window %d step %d skip %d: %w", window, step, skip, ErrInvalidArgument)
	}
	base, err := s.windowBase()
	if err != nil {
		return 0, fmt.Errorf("slide: %w", err)
	}
	l := len(base)
	if l < window {
		return 0, fmt.Errorf("slide: window %d exceeds string length %d: %w", window, l, ErrInvalidArgument)
	}

	n := (l-window)/step + 1
	views := make([][]T, n)
	offs := 0
	for i := range views {
		high := offs + window
		if high > l {
			high = l
		}
		views[i] = base[offs+skip : high]
		offs += step
	}
	s.singleString = base
	s.strings = views
	s.purgeCache()
	return n, nil
}

// Positions carves one window view per listed start position p, each of
// logical length window−skip. Every p must satisfy 0 ≤ p ≤ L−window; on any
// violation the whole operation fails and the sequence is untouched.
// Returns the new logical size.
func (s *Sequence[T]) Positions(window int, positions []int, skip int) (int, error) {
	if s.subsets.HasSubsets() {
		return 0, fmt.Errorf("positions: %w", ErrSubsetActive)
	}
	if window <= 0 || skip < 0 || skip >= window || len(positions) == 0 {
		return 0, fmt.Errorf("positions: window %d skip %d with %d positions: %w",
			window, skip, len(positions), ErrInvalidArgument)
	}
	base, err := s.windowBase()
	if err != nil {
		return 0, fmt.Errorf("positions: %w", err)
	}
	l := len(base)
	if l < window {
		return 0, fmt.Errorf("positions: window %d exceeds string length %d: %w", window, l, ErrInvalidArgument)
	}
	for i, p := range positions {
		if p < 0 || p > l-window {
			return 0, fmt.Errorf("positions: window %d at positions[%d]=%d does not fit in length %d: %w",
				window, i, p, l, ErrInvalidArgument)
		}
	}

	views := make([][]T, len(positions))
	for i, p := range positions {
		views[i] = base[p+skip : p+window]
	}
	s.singleString = base
	s.strings = views
	s.purgeCache()
	return len(views), nil
}

// windowBase picks the flat buffer window extraction works on: the single
// string when set, otherwise the only string.
func (s *Sequence[T]) windowBase() ([]T, error) {
	if s.singleString != nil {
		return s.singleString, nil
	}
	if len(s.strings) != 1 {
		return nil, fmt.Errorf("requires a single backing string, have %d: %w", len(s.strings), ErrInvalidArgument)
	}
	return s.strings[0], nil
}

// SingleString returns the flat backing buffer set by Slide or Positions;
// nil before any window extraction.
func (s *Sequence[T]) SingleString() []T { return s.singleString }
