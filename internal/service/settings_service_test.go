package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scales_practice_backend/internal/model"
)

func TestGetAlgorithmConfigDefaultsWhenUnset(t *testing.T) {
	env := newTestEnv(t)

	cfg, err := env.settings.GetAlgorithmConfig()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAlgorithmConfig(), cfg)
}

func TestUpdateAlgorithmConfigPersists(t *testing.T) {
	env := newTestEnv(t)

	cfg := model.DefaultAlgorithmConfig()
	cfg.TotalItems = 8
	cfg.SlurredPercent = 30

	saved, err := env.settings.UpdateAlgorithmConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, saved.TotalItems)

	loaded, err := env.settings.GetAlgorithmConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.TotalItems)
	assert.Equal(t, 30.0, loaded.SlurredPercent)
}

func TestUpdateAlgorithmConfigRejectsNegativeTotal(t *testing.T) {
	env := newTestEnv(t)

	cfg := model.DefaultAlgorithmConfig()
	cfg.TotalItems = -1

	_, err := env.settings.UpdateAlgorithmConfig(cfg)
	assert.ErrorIs(t, err, ErrNegativeTotalItems)
}

func TestUpdateAlgorithmConfigClampsPercents(t *testing.T) {
	env := newTestEnv(t)

	cfg := model.DefaultAlgorithmConfig()
	cfg.SlurredPercent = 150
	cfg.Variation = -10
	cfg.WeeklyFocus.ProbabilityIncrease = 200
	cfg.Weighting.PracticeCountDivisor = 0
	cfg.Weighting.DaysSincePracticeFactor = -3
	cfg.Weighting.BaseMultiplier = 0

	saved, err := env.settings.UpdateAlgorithmConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 100.0, saved.SlurredPercent)
	assert.Equal(t, 0.0, saved.Variation)
	assert.Equal(t, 100.0, saved.WeeklyFocus.ProbabilityIncrease)
	assert.Equal(t, 1.0, saved.Weighting.PracticeCountDivisor)
	assert.Equal(t, 7.0, saved.Weighting.DaysSincePracticeFactor)
	assert.Equal(t, 1.0, saved.Weighting.BaseMultiplier)
}

func TestResetAlgorithmConfig(t *testing.T) {
	env := newTestEnv(t)

	cfg := model.DefaultAlgorithmConfig()
	cfg.TotalItems = 12
	_, err := env.settings.UpdateAlgorithmConfig(cfg)
	require.NoError(t, err)

	reset, err := env.settings.ResetAlgorithmConfig()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAlgorithmConfig(), reset)

	loaded, err := env.settings.GetAlgorithmConfig()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAlgorithmConfig(), loaded)
}

func TestNormalizeSlotPercents(t *testing.T) {
	slots := func(percents ...float64) []model.SlotConfig {
		out := make([]model.SlotConfig, len(percents))
		for i, p := range percents {
			out[i] = model.SlotConfig{Percent: p}
		}
		return out
	}
	percents := func(slots []model.SlotConfig) []float64 {
		out := make([]float64, len(slots))
		for i, s := range slots {
			out[i] = s.Percent
		}
		return out
	}

	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"already normalized", []float64{30, 10, 10, 50}, []float64{30, 10, 10, 50}},
		{"proportional rescale", []float64{20, 20}, []float64{50, 50}},
		{"zero sum splits evenly", []float64{0, 0, 0}, []float64{34, 33, 33}},
		{"rounding absorbed by largest", []float64{1, 1, 1}, []float64{34, 33, 33}},
		{"negative treated as zero", []float64{-10, 50}, []float64{0, 100}},
		{"single slot", []float64{42}, []float64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSlotPercents(slots(tt.in...))
			assert.Equal(t, tt.want, percents(got))

			sum := 0.0
			for _, p := range percents(got) {
				sum += p
			}
			assert.Equal(t, 100.0, sum)
		})
	}
}
