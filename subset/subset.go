package subset

import (
	"errors"
	"fmt"
)

// ErrIndexRange indicates a logical index outside the current logical domain.
var ErrIndexRange = errors.New("subset: index out of range")

// Stack is a stack of index permutations. The zero value is ready to use and
// behaves as the identity map.
type Stack struct {
	// layers holds every pushed index array, oldest first.
	layers [][]int
	// active is the eager composition σ₁∘σ₂∘…∘σₙ; nil when no subset is live.
	active []int
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// HasSubsets reports whether at least one layer is live.
func (s *Stack) HasSubsets() bool { return len(s.layers) > 0 }

// Depth reports the number of stacked layers.
func (s *Stack) Depth() int { return len(s.layers) }

// Size reports the logical size, i.e. the length of the newest layer.
// It is only meaningful while HasSubsets reports true.
func (s *Stack) Size() int { return len(s.active) }

// Push stacks a new index layer on top. Every index must resolve inside the
// current logical domain; when the stack is empty the caller is responsible
// for bounds (the stack has no knowledge of the underlying count).
func (s *Stack) Push(idx []int) error {
	composed, err := s.compose(idx)
	if err != nil {
		return err
	}
	s.layers = append(s.layers, cloneIndices(idx))
	s.active = composed
	return nil
}

// PushInPlace composes idx with the current top layer, replacing it, so the
// stack depth stays constant. On an empty stack it behaves like Push.
func (s *Stack) PushInPlace(idx []int) error {
	if !s.HasSubsets() {
		return s.Push(idx)
	}
	composed, err := s.compose(idx)
	if err != nil {
		return err
	}
	top := s.layers[len(s.layers)-1]
	merged := make([]int, len(idx))
	for i, j := range idx {
		merged[i] = top[j]
	}
	s.layers[len(s.layers)-1] = merged
	s.active = composed
	return nil
}

// compose maps idx through the live composition without mutating the stack.
func (s *Stack) compose(idx []int) ([]int, error) {
	out := make([]int, len(idx))
	for i, j := range idx {
		if j < 0 {
			return nil, fmt.Errorf("layer[%d]=%d: %w", i, j, ErrIndexRange)
		}
		if s.active != nil {
			if j >= len(s.active) {
				return nil, fmt.Errorf("layer[%d]=%d exceeds logical size %d: %w", i, j, len(s.active), ErrIndexRange)
			}
			out[i] = s.active[j]
		} else {
			out[i] = j
		}
	}
	return out, nil
}

// Pop removes the newest layer; a no-op on an empty stack.
func (s *Stack) Pop() {
	if !s.HasSubsets() {
		return
	}
	s.layers = s.layers[:len(s.layers)-1]
	s.rebuild()
}

// PopAll removes every layer.
func (s *Stack) PopAll() {
	s.layers = nil
	s.active = nil
}

// rebuild recomputes the eager composition from the retained layers.
func (s *Stack) rebuild() {
	s.active = nil
	for _, layer := range s.layers {
		if s.active == nil {
			s.active = cloneIndices(layer)
			continue
		}
		next := make([]int, len(layer))
		for i, j := range layer {
			next[i] = s.active[j]
		}
		s.active = next
	}
}

// Map resolves a logical index through all stacked layers. With no live
// subset it is the identity on non-negative input.
func (s *Stack) Map(i int) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("index %d: %w", i, ErrIndexRange)
	}
	if !s.HasSubsets() {
		return i, nil
	}
	if i >= len(s.active) {
		return 0, fmt.Errorf("index %d exceeds logical size %d: %w", i, len(s.active), ErrIndexRange)
	}
	return s.active[i], nil
}

func cloneIndices(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)
	return out
}
