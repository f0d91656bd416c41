package seq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strseq/alphabet"
	"github.com/katalvlaran/strseq/seq"
)

// randomDNA builds n random DNA strings of length l, deterministic per seed.
func randomDNA(b *testing.B, n, l int, seed int64) [][]uint16 {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	chars := []byte("ACGT")
	list := make([][]uint16, n)
	for i := range list {
		run := make([]uint16, l)
		for j := range run {
			run[j] = uint16(chars[rng.Intn(4)])
		}
		list[i] = run
	}
	return list
}

// benchmarkEmbed measures in-place k-mer packing of n strings of length l.
func benchmarkEmbed(b *testing.B, n, l, k int) {
	list := randomDNA(b, n, l, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s, err := seq.FromStrings(list, alphabet.DNA)
		if err != nil {
			b.Fatalf("FromStrings failed: %v", err)
		}
		b.StartTimer()
		if err = s.Embed(k); err != nil {
			b.Fatalf("Embed failed: %v", err)
		}
	}
}

// BenchmarkEmbed_Small packs 100 strings of 100 symbols at order 4.
func BenchmarkEmbed_Small(b *testing.B) { benchmarkEmbed(b, 100, 100, 4) }

// BenchmarkEmbed_Medium packs 1000 strings of 500 symbols at order 8.
func BenchmarkEmbed_Medium(b *testing.B) { benchmarkEmbed(b, 1000, 500, 8) }

// BenchmarkGet_Raw measures the borrow path with preprocessing off.
func BenchmarkGet_Raw(b *testing.B) {
	s, err := seq.FromStrings(randomDNA(b, 1000, 200, 2), alphabet.DNA)
	if err != nil {
		b.Fatalf("FromStrings failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vec, mustFree, gerr := s.Get(i % 1000)
		if gerr != nil {
			b.Fatalf("Get failed: %v", gerr)
		}
		_ = s.Release(vec, i%1000, mustFree)
	}
}

// BenchmarkGet_Preprocessed measures the copy-and-chain path, then the same
// fetches served from the LRU cache.
func BenchmarkGet_Preprocessed(b *testing.B) {
	s, err := seq.FromStrings(randomDNA(b, 1000, 200, 3), alphabet.DNA)
	if err != nil {
		b.Fatalf("FromStrings failed: %v", err)
	}
	s.AddPreprocessor(seq.SortSymbols[uint16]{})
	s.EnableOnTheFlyPreprocessing()

	b.Run("uncached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			vec, mustFree, gerr := s.Get(i % 1000)
			if gerr != nil {
				b.Fatalf("Get failed: %v", gerr)
			}
			_ = s.Release(vec, i%1000, mustFree)
		}
	})

	if err = s.EnableCache(1024); err != nil {
		b.Fatalf("EnableCache failed: %v", err)
	}
	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			vec, mustFree, gerr := s.Get(i % 1000)
			if gerr != nil {
				b.Fatalf("Get failed: %v", gerr)
			}
			_ = s.Release(vec, i%1000, mustFree)
		}
	})
}

// BenchmarkPositionalHistogram measures the dense count matrix build.
func BenchmarkPositionalHistogram(b *testing.B) {
	s, err := seq.FromStrings(randomDNA(b, 500, 100, 4), alphabet.DNA)
	if err != nil {
		b.Fatalf("FromStrings failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = s.PositionalHistogram(true); err != nil {
			b.Fatalf("PositionalHistogram failed: %v", err)
		}
	}
}

// BenchmarkSubsetGet measures fetches through two stacked subset layers.
func BenchmarkSubsetGet(b *testing.B) {
	s, err := seq.FromStrings(randomDNA(b, 1000, 50, 5), alphabet.DNA)
	if err != nil {
		b.Fatalf("FromStrings failed: %v", err)
	}
	idx := make([]int, 500)
	for i := range idx {
		idx[i] = i * 2
	}
	if err = s.PushSubset(idx); err != nil {
		b.Fatalf("PushSubset failed: %v", err)
	}
	if err = s.PushSubset(idx[:250]); err != nil {
		b.Fatalf("PushSubset failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vec, mustFree, gerr := s.Get(i % 250)
		if gerr != nil {
			b.Fatalf("Get failed: %v", gerr)
		}
		_ = s.Release(vec, i%250, mustFree)
	}
}
