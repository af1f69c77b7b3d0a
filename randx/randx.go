package randx

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
)

// ErrEmptyCollection indicates a uniform pick was requested from a
// collection with zero elements.
var ErrEmptyCollection = errors.New("randx: cannot pick from empty collection")

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Shuffle performs an in-place Fisher–Yates shuffle of s using rng.
// Every permutation is reachable with equal probability.
// If rng==nil, the default deterministic stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](s []T, rng *rand.Rand) {
	n := len(s)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = New(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Member selects one element of s with uniform probability.
// Returns ErrEmptyCollection when s has zero elements; a singleton slice
// always yields its single element. If rng==nil, the default deterministic
// stream is used.
//
// Complexity: O(1).
func Member[T any](s []T, rng *rand.Rand) (T, error) {
	if len(s) == 0 {
		var zero T

		return zero, ErrEmptyCollection
	}

	r := rng
	if r == nil {
		r = New(0)
	}

	return s[r.Intn(len(s))], nil
}

// MapKey selects one key of m with uniform probability.
// Keys are sorted before selection so that same-seed runs remain
// reproducible despite Go's randomized map iteration order.
// Returns ErrEmptyCollection when m is empty.
//
// Complexity: O(n log n) time, O(n) space.
func MapKey[K cmp.Ordered, V any](m map[K]V, rng *rand.Rand) (K, error) {
	if len(m) == 0 {
		var zero K

		return zero, ErrEmptyCollection
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return Member(keys, rng)
}
