package selector

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scales_practice_backend/internal/model"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testSelector(seed int64) *Selector {
	return New(rand.New(rand.NewSource(seed)), testNow)
}

func daysAgo(d int) *time.Time {
	t := testNow.AddDate(0, 0, -d)
	return &t
}

func scaleCandidate(id uint, category string, octaves int) Candidate {
	return Candidate{
		ItemType:         model.ItemTypeScale,
		ItemID:           id,
		DisplayName:      "test scale",
		Note:             "A",
		Category:         category,
		Octaves:          octaves,
		StaticWeight:     1.0,
		ArticulationMode: model.ArticulationBoth,
	}
}

func TestItemWeightFormula(t *testing.T) {
	s := testSelector(1)
	cfg := model.WeightingConfig{BaseMultiplier: 2.0, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}

	c := scaleCandidate(1, "major", 2)
	c.StaticWeight = 1.5
	c.PracticeCount = 3
	c.LastPracticedAt = daysAgo(7)

	// 1.5 * 2.0 * (1 + 7/7) / (3 + 1) = 1.5
	assert.InDelta(t, 1.5, s.ItemWeight(c, cfg), 1e-9)
}

func TestItemWeightNeverPracticedSentinel(t *testing.T) {
	cfg := model.WeightingConfig{BaseMultiplier: 1.0, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}

	c := scaleCandidate(1, "major", 2)
	c.LastPracticedAt = nil

	// default sentinel equals the days factor, so the recency term is exactly 2
	s := testSelector(1)
	assert.InDelta(t, 2.0, s.ItemWeight(c, cfg), 1e-9)

	// the sentinel is overridable
	s.NeverPracticedDays = 14
	assert.InDelta(t, 3.0, s.ItemWeight(c, cfg), 1e-9)
}

func TestItemWeightAlwaysPositive(t *testing.T) {
	s := testSelector(1)
	cases := []struct {
		name string
		cfg  model.WeightingConfig
		cand Candidate
	}{
		{"zero divisor", model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 7, PracticeCountDivisor: 0}, scaleCandidate(1, "major", 1)},
		{"negative divisor", model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 7, PracticeCountDivisor: -5}, scaleCandidate(1, "major", 1)},
		{"zero days factor", model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 0, PracticeCountDivisor: 1}, scaleCandidate(1, "major", 1)},
		{"zero multiplier", model.WeightingConfig{BaseMultiplier: 0, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}, scaleCandidate(1, "major", 1)},
		{"zero static weight", model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}, func() Candidate {
			c := scaleCandidate(1, "major", 1)
			c.StaticWeight = 0
			return c
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Greater(t, s.ItemWeight(tc.cand, tc.cfg), 0.0)
		})
	}
}

func TestItemWeightRecencyMonotonic(t *testing.T) {
	s := testSelector(1)
	cfg := model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}

	prev := -1.0
	for _, days := range []int{0, 1, 3, 7, 30, 365} {
		c := scaleCandidate(1, "major", 2)
		c.LastPracticedAt = daysAgo(days)
		w := s.ItemWeight(c, cfg)
		require.GreaterOrEqual(t, w, prev, "weight must not decrease as days since practice grows (days=%d)", days)
		prev = w
	}
}

func TestItemWeightFrequencyMonotonic(t *testing.T) {
	s := testSelector(1)
	cfg := model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}

	prev := -1.0
	for count := 20; count >= 0; count-- {
		c := scaleCandidate(1, "major", 2)
		c.PracticeCount = count
		c.LastPracticedAt = daysAgo(3)
		w := s.ItemWeight(c, cfg)
		require.GreaterOrEqual(t, w, prev, "weight must not increase with practice count (count=%d)", count)
		prev = w
	}
}

func TestItemWeightFutureTimestampClamped(t *testing.T) {
	s := testSelector(1)
	cfg := model.WeightingConfig{BaseMultiplier: 1, DaysSincePracticeFactor: 7, PracticeCountDivisor: 1}

	c := scaleCandidate(1, "major", 2)
	future := testNow.Add(48 * time.Hour)
	c.LastPracticedAt = &future

	// clock skew must not push the recency term below its floor
	assert.InDelta(t, 1.0, s.ItemWeight(c, cfg), 1e-9)
}
