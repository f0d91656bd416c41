// Package strseq is your in-memory toolbox for symbol-sequence features:
// alphabets, k-mer bit packing, window extraction and compressed storage,
// built for string-kernel and sequence-model pipelines.
//
// 🚀 What is strseq?
//
//	A generic, format-aware library that brings together:
//		• Alphabets: DNA/RNA/protein/raw identities with char↔index remap & histograms
//		• Sequence container: variable-length strings over any fixed element width
//		• Subset views: stacked, composable index remaps with O(1) lookup
//		• Embedding: in-place k-mer packing into machine words, plus unpacking
//		• Windows: sliding and positioned sub-views over one backing string
//		• Loaders: line-based ASCII, FASTA, FASTQ and raw directory ingestion
//		• SGV0 archives: zlib/gzip-compressed vector storage with raw reload
//		• Profiles: positional histograms and profile-driven random generation
//
// ✨ Why choose strseq?
//
//   - Typed end to end – one generic container for bytes up to 64-bit words
//   - Atomic operations – failed loads and embeds leave prior state intact
//   - Borrow-aware API – fetches alias storage until preprocessing demands a copy
//   - Extensible – on-the-fly preprocessor chains with an LRU fetch cache
//
// Under the hood, everything is organized under four subpackages:
//
//	alphabet/ — symbol identities, remap tables and observation histograms
//	subset/   — the stacked index-view machinery
//	codec/    — the zlib/gzip payload codecs behind SGV0 archives
//	seq/      — the Sequence container, loaders, embedding and windows
//
// Quick ASCII example:
//
//	"ACGT" ──Embed(2)──► [1 6 11]
//
//	packs the three 2-mers AC, CG, GT into 4-bit words.
//
// Dive into examples/ for end-to-end scenarios: k-mer spectra, FASTA
// profile sampling and SGV0 archive round trips.
//
//	go get github.com/katalvlaran/strseq
package strseq
