package seq

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// maxHistogramSymbols bounds the dense histogram allocation; beyond this the
// effective cardinality cannot be materialised row-per-symbol.
const maxHistogramSymbols = 1 << 20

// PositionalHistogram counts, for every string position, how often each
// effective symbol occurs across all logical strings. The result is a
// NumSymbols × MaxLength dense matrix; with normalize each column is divided
// by the number of strings covering that position. Rows are indexed by the
// compact symbol index before embedding and by the packed word after.
func (s *Sequence[T]) PositionalHistogram(normalize bool) (*mat.Dense, error) {
	n := s.Size()
	if n == 0 {
		return nil, fmt.Errorf("positional histogram: empty sequence: %w", ErrInvalidArgument)
	}
	rows := int(s.numSymbols)
	if rows <= 0 || rows > maxHistogramSymbols {
		return nil, fmt.Errorf("positional histogram: %d symbols: %w", rows, ErrCapacity)
	}
	cols := s.MaxLength()

	h := mat.NewDense(rows, cols, nil)
	cover := make([]float64, cols)
	for i := 0; i < n; i++ {
		vec, mustFree, err := s.Get(i)
		if err != nil {
			return nil, err
		}
		for j, v := range vec {
			r := s.symbolIndex(v)
			if r < 0 || r >= rows {
				return nil, fmt.Errorf("positional histogram: symbol %v at [%d][%d]: %w", v, i, j, ErrInvalidSymbol)
			}
			h.Set(r, j, h.At(r, j)+1)
			cover[j]++
		}
		if err = s.Release(vec, i, mustFree); err != nil {
			return nil, err
		}
	}

	if normalize {
		for j := 0; j < cols; j++ {
			if cover[j] == 0 {
				continue
			}
			for r := 0; r < rows; r++ {
				h.Set(r, j, h.At(r, j)/cover[j])
			}
		}
	}
	return h, nil
}

// symbolIndex maps a stored element to its histogram row: the packed word
// itself after embedding, the compact alphabet index before.
func (s *Sequence[T]) symbolIndex(v T) int {
	if s.order > 0 {
		return int(uint64(v))
	}
	return int(s.alpha.ToBin(byte(uint64(v))))
}

// GenerateRandom replaces all state with n strings of length hist-columns
// drawn from the column-stochastic matrix hist (NumSymbols rows): for each
// column the smallest row whose cumulative probability reaches the draw is
// emitted through the inverse remap. Deterministic per seed.
func (s *Sequence[T]) GenerateRandom(hist *mat.Dense, n int, seed int64) error {
	if s.subsets.HasSubsets() {
		return fmt.Errorf("generate random: %w", ErrSubsetActive)
	}
	if hist == nil || n <= 0 {
		return fmt.Errorf("generate random: %d strings: %w", n, ErrInvalidArgument)
	}
	rows, cols := hist.Dims()
	if float64(rows) != s.numSymbols {
		return fmt.Errorf("generate random: %d rows vs %.0f symbols: %w", rows, s.numSymbols, ErrInvalidArgument)
	}

	rng := rand.New(rand.NewSource(seed))
	list := make([][]T, n)
	for i := range list {
		str := make([]T, cols)
		for j := 0; j < cols; j++ {
			u := rng.Float64()
			cum := hist.At(0, j)
			r := 0
			for r < rows-1 {
				if u <= cum {
					break
				}
				r++
				cum += hist.At(r, j)
			}
			str[j] = T(s.alpha.ToChar(byte(r)))
		}
		list[i] = str
	}
	return s.SetAll(list)
}
