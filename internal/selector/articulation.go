package selector

import "scales_practice_backend/internal/model"

// assignArticulation 给条目建议演奏法：以 slurred_percent 为连弓概率的
// 独立加权掷币。条目自身限定了演奏法时直接采用，不掷币。
// 这只是建议，实际练的是哪种由提交练习记录时回报。
func (s *Selector) assignArticulation(c Candidate, slurredPercent float64) string {
	switch c.ArticulationMode {
	case model.ArticulationSlurredOnly:
		return model.ArticulationSlurred
	case model.ArticulationSeparateOnly:
		return model.ArticulationSeparate
	}
	if s.Rand.Float64()*100 < slurredPercent {
		return model.ArticulationSlurred
	}
	return model.ArticulationSeparate
}
