package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolOf(weightsAndOctaves ...[2]float64) []weighted {
	pool := make([]weighted, 0, len(weightsAndOctaves))
	for i, wo := range weightsAndOctaves {
		c := scaleCandidate(uint(i+1), "major", int(wo[1]))
		pool = append(pool, weighted{cand: c, weight: wo[0]})
	}
	return pool
}

func TestSampleWithoutReplacement(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		s := testSelector(seed)
		pool := poolOf([2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3}, [2]float64{4, 1})

		got := s.sample(pool, 3, false, map[int]int{})
		require.Len(t, got, 3)

		seen := map[uint]bool{}
		for _, w := range got {
			require.False(t, seen[w.cand.ItemID], "item %d selected twice (seed=%d)", w.cand.ItemID, seed)
			seen[w.cand.ItemID] = true
		}
	}
}

func TestSampleGracefulWhenPoolTooSmall(t *testing.T) {
	s := testSelector(7)
	pool := poolOf([2]float64{1, 1}, [2]float64{1, 2})

	got := s.sample(pool, 10, false, map[int]int{})
	assert.Len(t, got, 2, "k beyond pool size returns the whole pool, never errors or duplicates")
}

func TestSampleZeroQuota(t *testing.T) {
	s := testSelector(7)
	assert.Nil(t, s.sample(poolOf([2]float64{1, 1}), 0, false, map[int]int{}))
	assert.Nil(t, s.sample(nil, 3, false, map[int]int{}))
}

func TestEffectiveWeightOctaveDecay(t *testing.T) {
	c := scaleCandidate(1, "major", 2)
	w := weighted{cand: c, weight: 8.0}

	counts := map[int]int{}
	// before any same-octave pick: full weight
	assert.InDelta(t, 8.0, effectiveWeight(w, true, counts), 1e-9)

	// each pick of the same octave span halves the remaining items once:
	// exactly 1/2 after the first, 1/4 after the second, 1/8 after the third
	counts[2] = 1
	assert.InDelta(t, 4.0, effectiveWeight(w, true, counts), 1e-9)
	counts[2] = 2
	assert.InDelta(t, 2.0, effectiveWeight(w, true, counts), 1e-9)
	counts[2] = 3
	assert.InDelta(t, 1.0, effectiveWeight(w, true, counts), 1e-9)

	// a different octave span is untouched
	other := weighted{cand: scaleCandidate(2, "major", 3), weight: 8.0}
	assert.InDelta(t, 8.0, effectiveWeight(other, true, counts), 1e-9)

	// decay disabled entirely without octave_variety
	assert.InDelta(t, 8.0, effectiveWeight(w, false, counts), 1e-9)
}

func TestSampleTracksOctaveCounts(t *testing.T) {
	s := testSelector(3)
	pool := poolOf([2]float64{1, 2}, [2]float64{1, 2}, [2]float64{1, 2})

	counts := map[int]int{}
	got := s.sample(pool, 3, true, counts)
	require.Len(t, got, 3)
	assert.Equal(t, 3, counts[2])
}

func TestSampleFavorsOctaveVariety(t *testing.T) {
	// a pool with two 1-octave items and one 3-octave item, all equal weight;
	// with octave variety on, picking the 3-octave item second should be
	// clearly more common than without the penalty
	withVariety, without := 0, 0
	const runs = 2000
	for seed := int64(0); seed < runs; seed++ {
		pool := poolOf([2]float64{1, 1}, [2]float64{1, 1}, [2]float64{1, 3})

		s := testSelector(seed)
		got := s.sample(pool, 2, true, map[int]int{})
		if got[0].cand.Octaves != got[1].cand.Octaves {
			withVariety++
		}

		s = testSelector(seed)
		got = s.sample(pool, 2, false, map[int]int{})
		if got[0].cand.Octaves != got[1].cand.Octaves {
			without++
		}
	}
	assert.Greater(t, withVariety, without, "octave variety must increase mixed-octave pairs")
}

func TestSampleUniformFallbackWhenAllWeightsZero(t *testing.T) {
	s := testSelector(11)
	pool := poolOf([2]float64{0, 1}, [2]float64{0, 2})

	got := s.sample(pool, 2, false, map[int]int{})
	assert.Len(t, got, 2)
}
