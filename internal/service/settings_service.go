package service

import (
	"errors"
	"math"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/repository"
)

// SettingsService 选取算法配置的读写，写入时做防御性整理
type SettingsService struct {
	SettingRepo *repository.SettingRepository
}

func NewSettingsService(settingRepo *repository.SettingRepository) *SettingsService {
	return &SettingsService{SettingRepo: settingRepo}
}

// ErrNegativeTotalItems 配置写入边界：负的 total_items 直接拒绝
var ErrNegativeTotalItems = errors.New("total_items must not be negative")

func (s *SettingsService) GetAlgorithmConfig() (model.AlgorithmConfig, error) {
	return s.SettingRepo.GetAlgorithmConfig()
}

// UpdateAlgorithmConfig 整理并保存配置：槽位占比重整为和恰为100，
// 百分比参数截断到 [0,100]，practice_count_divisor 抬到 ≥1
func (s *SettingsService) UpdateAlgorithmConfig(cfg model.AlgorithmConfig) (model.AlgorithmConfig, error) {
	if cfg.TotalItems < 0 {
		return model.AlgorithmConfig{}, ErrNegativeTotalItems
	}

	cfg.Slots = NormalizeSlotPercents(cfg.Slots)
	cfg.SlurredPercent = clampPercent(cfg.SlurredPercent)
	cfg.Variation = clampPercent(cfg.Variation)
	cfg.WeeklyFocus.ProbabilityIncrease = clampPercent(cfg.WeeklyFocus.ProbabilityIncrease)
	if cfg.Weighting.PracticeCountDivisor < 1 {
		cfg.Weighting.PracticeCountDivisor = 1
	}
	if cfg.Weighting.DaysSincePracticeFactor <= 0 {
		cfg.Weighting.DaysSincePracticeFactor = model.DefaultAlgorithmConfig().Weighting.DaysSincePracticeFactor
	}
	if cfg.Weighting.BaseMultiplier <= 0 {
		cfg.Weighting.BaseMultiplier = model.DefaultAlgorithmConfig().Weighting.BaseMultiplier
	}

	if err := s.SettingRepo.SaveAlgorithmConfig(cfg); err != nil {
		return model.AlgorithmConfig{}, err
	}
	return cfg, nil
}

// ResetAlgorithmConfig 恢复默认配置
func (s *SettingsService) ResetAlgorithmConfig() (model.AlgorithmConfig, error) {
	cfg := model.DefaultAlgorithmConfig()
	if err := s.SettingRepo.SaveAlgorithmConfig(cfg); err != nil {
		return model.AlgorithmConfig{}, err
	}
	return cfg, nil
}

// NormalizeSlotPercents 把槽位占比按比例缩放并取整到和恰为100，
// 取整余差由占比最大的槽位吸收（并列取声明序靠前者）——与分配器同一条规则
func NormalizeSlotPercents(slots []model.SlotConfig) []model.SlotConfig {
	if len(slots) == 0 {
		return slots
	}

	out := make([]model.SlotConfig, len(slots))
	copy(out, slots)

	sum := 0.0
	for i := range out {
		if out[i].Percent < 0 {
			out[i].Percent = 0
		}
		sum += out[i].Percent
	}

	if sum <= 0 {
		share := math.Floor(100.0 / float64(len(out)))
		for i := range out {
			out[i].Percent = share
		}
	} else if sum != 100 {
		scale := 100.0 / sum
		for i := range out {
			out[i].Percent = math.Round(out[i].Percent * scale)
		}
	} else {
		for i := range out {
			out[i].Percent = math.Round(out[i].Percent)
		}
	}

	total := 0.0
	largest := 0
	for i := range out {
		total += out[i].Percent
		if out[i].Percent > out[largest].Percent {
			largest = i
		}
	}
	out[largest].Percent += 100 - total
	if out[largest].Percent < 0 {
		out[largest].Percent = 0
	}
	return out
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
