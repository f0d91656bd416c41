// Package alphabet enumerates finite symbol sets and their byte↔index remaps,
// the foundation every sequence container in strseq builds on.
//
// What:
//
//   - Identity selects one of the predefined symbol sets (DNA, RNA, Protein,
//     Alphanum, Digit, RawByte, RawWord, Binary, None).
//   - Alphabet carries the derived cardinality (NumSymbols), the bit width of
//     a compact index (NumBits = ⌈log₂ NumSymbols⌉), the remap tables
//     ToBin / ToChar, and a mutable histogram of observed symbols.
//   - CheckAlphabet / CheckAlphabetSize validate that everything added to the
//     histogram lies inside the declared symbol set. They report pass/fail and
//     never return an error.
//
// Why:
//
//   - Sequence loaders validate their input against the declared alphabet and
//     substitute or reject out-of-alphabet residues.
//   - Higher-order embedding packs NumBits-wide compact indices into machine
//     words; NumBits is the single source of truth for that packing.
//   - Downstream probabilistic models consume the histogram directly.
//
// Invariants:
//
//   - ToBin and ToChar are inverse on the valid domain:
//     ToChar(ToBin(b)) == b for every b with IsValid(b).
//   - If CheckAlphabet reports true, every symbol ever counted into the
//     histogram is valid for the identity.
//
// Sharing:
//
//	An *Alphabet is a shared handle. Many sequences may reference the same
//	instance, but only the loaders of the owning sequence mutate its
//	histogram. Reads of the remap tables are always safe; they are frozen at
//	construction.
//
// Errors: none — validation is reported through boolean checks, matching the
// pass/fail contract of the remap layer.
package alphabet
