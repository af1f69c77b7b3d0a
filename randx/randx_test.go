package randx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvegal/mazecarve/randx"
)

func TestNew_ZeroSeedIsDeterministic(t *testing.T) {
	a := randx.New(0)
	b := randx.New(0)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "seed==0 must map to a fixed default stream")
	}
}

func TestNew_DistinctSeedsDiverge(t *testing.T) {
	a := randx.New(7)
	b := randx.New(8)
	same := true
	for i := 0; i < 16; i++ {
		if a.Int63() != b.Int63() {
			same = false
			break
		}
	}
	assert.False(t, same, "distinct seeds should produce distinct streams")
}

func TestShuffle_PreservesElements(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	randx.Shuffle(s, randx.New(42))
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	randx.Shuffle(a, randx.New(99))
	randx.Shuffle(b, randx.New(99))
	assert.Equal(t, a, b)
}

func TestShuffle_ShortAndNilInputs(t *testing.T) {
	// len<=1 and nil must be left untouched without panicking.
	randx.Shuffle[int](nil, nil)
	one := []string{"x"}
	randx.Shuffle(one, nil)
	assert.Equal(t, []string{"x"}, one)
}

func TestMember_Empty(t *testing.T) {
	_, err := randx.Member[int](nil, randx.New(1))
	assert.ErrorIs(t, err, randx.ErrEmptyCollection)

	_, err = randx.Member([]int{}, randx.New(1))
	assert.ErrorIs(t, err, randx.ErrEmptyCollection)
}

func TestMember_Singleton(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		v, err := randx.Member([]string{"only"}, randx.New(seed))
		require.NoError(t, err)
		assert.Equal(t, "only", v)
	}
}

func TestMember_AllElementsReachable(t *testing.T) {
	rng := randx.New(3)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		v, err := randx.Member([]int{10, 20, 30}, rng)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "every member should be selected eventually")
}

func TestMapKey_Empty(t *testing.T) {
	_, err := randx.MapKey(map[int]struct{}{}, randx.New(1))
	assert.ErrorIs(t, err, randx.ErrEmptyCollection)
}

func TestMapKey_SingletonAndDeterminism(t *testing.T) {
	k, err := randx.MapKey(map[int]struct{}{7: {}}, randx.New(1))
	require.NoError(t, err)
	assert.Equal(t, 7, k)

	m := map[int]string{1: "a", 2: "b", 3: "c", 4: "d"}
	k1, err := randx.MapKey(m, randx.New(5))
	require.NoError(t, err)
	k2, err := randx.MapKey(m, randx.New(5))
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "same seed must pick the same key regardless of map iteration order")
}
