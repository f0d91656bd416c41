// Package seq is the string-feature engine of strseq: a generic container
// for variable-length symbol sequences with alphabet remapping, stackable
// index subsets, higher-order k-mer embedding, window extraction, lazy
// preprocessing and a compressed on-disk format.
//
// What:
//
//   - Sequence[T] owns an ordered list of variable-length runs of the element
//     type T plus a shared *alphabet.Alphabet and an exclusive subset stack.
//   - Loaders populate a Sequence from ASCII line files, FASTA, FASTQ,
//     directories of raw files and SGV0 compressed streams; every loader is
//     atomic (a failed load leaves the sequence exactly as it was).
//   - Embed packs k consecutive remapped symbols into one machine word of T,
//     turning a character sequence into its order-k k-mer stream in place.
//   - Slide and Positions carve window sub-views out of a single backing
//     string without copying; the backing buffer is retained as the
//     sequence's "single string" and outlives all views.
//   - A pushed subset virtualises Size/Get/Length without copying; while one
//     is live every mutator refuses to run.
//   - When on-the-fly preprocessing is enabled, Get routes each fetch through
//     the ordered preprocessor chain; an optional LRU cache memoises the
//     results until the next mutation.
//
// Why:
//
//   - Sequence classifiers and string kernels consume exactly this contract:
//     cheap subset views for cross-validation folds, bit-packed k-mer words
//     for linear-time scoring, and a histogrammed alphabet for probabilistic
//     models.
//
// Element types:
//
//	T ranges over the signed and unsigned integer widths plus float32 and
//	float64. Only the integer widths support embedding and bit masks; on the
//	float widths Embed, the symbol-mask table, MaskedSymbols, ShiftSymbol,
//	ShiftOffset and FromCharSequence degenerate to identity or no-ops.
//
// Concurrency:
//
//	A Sequence is not safe for concurrent mutation. Concurrent read-only
//	Get/Length/Size calls are safe while preprocessing is off, because they
//	return aliases into immutable storage.
//
// Errors:
//
//   - ErrIndexRange: a logical index exceeds the logical size.
//   - ErrSubsetActive: mutation attempted while a subset is live.
//   - ErrInvalidArgument: non-positive window/step, impossible order, …
//   - ErrRaggedInput: an operation requires equal-length strings.
//   - ErrInvalidSymbol: alphabet validation failed with substitution off.
//   - ErrMalformedFormat: the input is not a valid ASCII/FASTA/FASTQ/SGV0 stream.
//   - ErrLengthMismatch: packed FASTQ records do not share one length.
//   - ErrCapacity: the embedding needs more bits than T has.
//   - ErrAlreadyEmbedded: Embed called on an embedded sequence.
package seq
