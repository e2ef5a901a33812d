package selector

import "math"

type weighted struct {
	cand   Candidate
	weight float64
}

// effectiveWeight 基础权重叠加八度衰减后的抽样权重
func effectiveWeight(w weighted, octaveVariety bool, octaveCounts map[int]int) float64 {
	if !octaveVariety {
		return w.weight
	}
	return w.weight * math.Pow(0.5, float64(octaveCounts[w.cand.Octaves]))
}

// sample 不放回加权抽样：每轮在 [0, Σ有效权重) 抽一个均匀值，沿累积
// 权重表定位条目并移出池子。octaveCounts 记录整份练习集中各八度数已被
// 选中的次数，开启 octave_variety 时有效权重按 0.5^次数 衰减——衰减只随
// 每次选取推进一步，不会对同一次先前选取重复生效。
// k 超过池子大小时整池返回（优雅降级），缺额由调用方统计。
func (s *Selector) sample(pool []weighted, k int, octaveVariety bool, octaveCounts map[int]int) []weighted {
	if k <= 0 || len(pool) == 0 {
		return nil
	}

	remaining := make([]weighted, len(pool))
	copy(remaining, pool)
	if k > len(remaining) {
		k = len(remaining)
	}

	selected := make([]weighted, 0, k)
	for len(selected) < k && len(remaining) > 0 {
		effective := make([]float64, len(remaining))
		total := 0.0
		for i, w := range remaining {
			e := effectiveWeight(w, octaveVariety, octaveCounts)
			effective[i] = e
			total += e
		}

		idx := 0
		if total <= 0 {
			// 权重全被压成0时退化为均匀抽取
			idx = s.Rand.Intn(len(remaining))
		} else {
			r := s.Rand.Float64() * total
			acc := 0.0
			for i, e := range effective {
				acc += e
				if r < acc {
					idx = i
					break
				}
			}
		}

		choice := remaining[idx]
		selected = append(selected, choice)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		if octaveVariety {
			octaveCounts[choice.cand.Octaves]++
		}
	}
	return selected
}
