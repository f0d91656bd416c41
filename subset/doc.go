// Package subset implements a stack of row-index permutations that
// virtualises element access without copying.
//
// What:
//
//   - Stack holds an ordered list of index arrays σ₁, σ₂, …, σₙ.
//   - The effective logical→physical map is σ₁[σ₂[… σₙ[i] …]]; Map resolves
//     one logical index through every stacked layer.
//   - Push adds a layer, PushInPlace composes with the current top layer
//     instead of deepening the stack, Pop removes the newest layer, PopAll
//     clears everything.
//
// Why:
//
//   - Cross-validation folds and kernel row subsetting need cheap, stackable
//     views over a sequence container; materialising a copy per fold does
//     not scale.
//   - A subset is a read-only filter: containers refuse mutation while one
//     is live, so the virtual view can never observe a torn state.
//
// Complexity:
//
//   - Map: O(1) — the composition of all layers is maintained eagerly.
//   - Push/PushInPlace: O(len(σ)).
//   - Pop: O(total pushed) — the composition is rebuilt from the retained
//     layers.
//
// Errors:
//
//   - ErrIndexRange: a logical index passed to Map (or an index inside a
//     pushed layer) falls outside the current logical domain.
package subset
