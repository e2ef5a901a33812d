package selector

import (
	"math"

	"scales_practice_backend/internal/model"
)

// epsilon 分母的最小下界，保证任何可选条目的权重恒为正
const epsilon = 1e-6

// ItemWeight 计算单个条目的选取权重。公式（配置界面文档中原样展示）：
//
//	weight = static_weight * base_multiplier
//	       * (1 + days_since_practice / days_since_practice_factor)
//	       / (practice_count + practice_count_divisor)
//
// 从未练过的条目用有限哨兵天数代替，避免单个新条目靠无界分子垄断抽样。
func (s *Selector) ItemWeight(c Candidate, w model.WeightingConfig) float64 {
	base := c.StaticWeight
	if base <= 0 {
		base = epsilon
	}
	mult := w.BaseMultiplier
	if mult <= 0 {
		mult = epsilon
	}
	factor := w.DaysSincePracticeFactor
	if factor <= 0 {
		factor = epsilon
	}

	days := s.daysSincePractice(c, factor)

	denom := float64(c.PracticeCount) + w.PracticeCountDivisor
	if denom < epsilon {
		denom = epsilon
	}

	return base * mult * (1 + days/factor) / denom
}

// daysSincePractice 距上次练习的整天数；从未练过时返回哨兵天数
func (s *Selector) daysSincePractice(c Candidate, factor float64) float64 {
	if c.LastPracticedAt == nil {
		if s.NeverPracticedDays > 0 {
			return s.NeverPracticedDays
		}
		return factor
	}
	days := math.Floor(s.Now.Sub(*c.LastPracticedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
