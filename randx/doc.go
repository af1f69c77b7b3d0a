// Package randx centralizes the randomness used by the maze carvers:
// a deterministic RNG factory, a uniform in-place shuffle, and uniform
// selection from a sequence or a set.
//
// What:
//
//   - New(seed): deterministic *rand.Rand; seed==0 falls back to a fixed
//     default seed so zero-value configs stay reproducible.
//   - Shuffle: uniform Fisher–Yates permutation (every permutation equally
//     likely — deliberately not a comparator-based shuffle, whose bias is a
//     known defect).
//   - Member: uniform pick from a slice; MapKey: uniform pick from map keys.
//
// Errors:
//
//   - ErrEmptyCollection: Member or MapKey asked to choose from zero
//     elements. Callers in this module always guard before calling, so
//     hitting it indicates a programming error, not bad input.
//
// Concurrency:
//
//   - math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand
//     across goroutines; create one per carving run.
package randx
