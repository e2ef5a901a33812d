package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scales_practice_backend/internal/model"
)

func defaultSlots() []model.SlotConfig {
	return model.DefaultAlgorithmConfig().Slots
}

func TestAllocateQuotaConservation(t *testing.T) {
	// quotas must sum to total_items exactly, for any jitter and any seed
	for seed := int64(0); seed < 50; seed++ {
		for _, total := range []int{1, 5, 10, 37} {
			for _, variation := range []float64{0, 10, 20, 100} {
				s := testSelector(seed)
				quotas := s.allocate(defaultSlots(), total, variation)
				sum := 0
				for _, q := range quotas {
					require.GreaterOrEqual(t, q, 0)
					sum += q
				}
				require.Equal(t, total, sum,
					"seed=%d total=%d variation=%v quotas=%v", seed, total, variation, quotas)
			}
		}
	}
}

func TestAllocateNoVariationIsDeterministic(t *testing.T) {
	slots := []model.SlotConfig{
		{Name: "A", ItemType: model.ItemTypeScale, Types: []string{"major"}, Percent: 60},
		{Name: "B", ItemType: model.ItemTypeArpeggio, Types: []string{"minor"}, Percent: 40},
	}
	for seed := int64(0); seed < 10; seed++ {
		s := testSelector(seed)
		assert.Equal(t, []int{6, 4}, s.allocate(slots, 10, 0))
	}
}

func TestAllocateLargestSlotAbsorbsRemainder(t *testing.T) {
	// 3 slots at 33/33/34 over 10 items round to 3+3+3; the largest
	// (declared last here) absorbs the leftover item
	slots := []model.SlotConfig{
		{Name: "A", ItemType: model.ItemTypeScale, Types: []string{"major"}, Percent: 33},
		{Name: "B", ItemType: model.ItemTypeScale, Types: []string{"chromatic"}, Percent: 33},
		{Name: "C", ItemType: model.ItemTypeArpeggio, Types: []string{"major"}, Percent: 34},
	}
	s := testSelector(1)
	assert.Equal(t, []int{3, 3, 4}, s.allocate(slots, 10, 0))
}

func TestAllocateLargestTieBreaksOnDeclarationOrder(t *testing.T) {
	slots := []model.SlotConfig{
		{Name: "A", ItemType: model.ItemTypeScale, Types: []string{"major"}, Percent: 50},
		{Name: "B", ItemType: model.ItemTypeArpeggio, Types: []string{"minor"}, Percent: 50},
	}
	s := testSelector(1)
	// 5 items at 50/50: raw shares round to 3+3, first slot gives back the extra
	assert.Equal(t, []int{2, 3}, s.allocate(slots, 5, 0))
}

func TestNormalizeSlots(t *testing.T) {
	cases := []struct {
		name     string
		slots    []model.SlotConfig
		percents []float64
	}{
		{
			name: "sum below 100 rescaled",
			slots: []model.SlotConfig{
				{ItemType: model.ItemTypeScale, Percent: 30},
				{ItemType: model.ItemTypeArpeggio, Percent: 30},
			},
			percents: []float64{50, 50},
		},
		{
			name: "sum above 100 rescaled",
			slots: []model.SlotConfig{
				{ItemType: model.ItemTypeScale, Percent: 150},
				{ItemType: model.ItemTypeArpeggio, Percent: 50},
			},
			percents: []float64{75, 25},
		},
		{
			name: "all zero percents get equal shares",
			slots: []model.SlotConfig{
				{ItemType: model.ItemTypeScale, Percent: 0},
				{ItemType: model.ItemTypeScale, Percent: 0},
				{ItemType: model.ItemTypeArpeggio, Percent: 0},
			},
			percents: []float64{100.0 / 3, 100.0 / 3, 100.0 / 3},
		},
		{
			name: "unknown item_type dropped and remainder rescaled",
			slots: []model.SlotConfig{
				{ItemType: model.ItemTypeScale, Percent: 40},
				{ItemType: "etude", Percent: 20},
				{ItemType: model.ItemTypeArpeggio, Percent: 40},
			},
			percents: []float64{50, 50},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeSlots(tc.slots)
			require.Len(t, got, len(tc.percents))
			sum := 0.0
			for i, slot := range got {
				assert.InDelta(t, tc.percents[i], slot.Percent, 1e-9, fmt.Sprintf("slot %d", i))
				sum += slot.Percent
			}
			assert.InDelta(t, 100.0, sum, 1e-9)
		})
	}
}

func TestNormalizeSlotsAllInvalid(t *testing.T) {
	got := normalizeSlots([]model.SlotConfig{{ItemType: "etude", Percent: 100}})
	assert.Nil(t, got)
}
