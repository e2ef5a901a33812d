package selector

import (
	"math"

	"scales_practice_backend/internal/model"
)

// normalizeSlots 防御性整理槽位配置：剔除无法识别的条目类型，
// 把剩余占比按比例缩放回100。用户编辑到一半也不应得到硬错误。
func normalizeSlots(slots []model.SlotConfig) []model.SlotConfig {
	valid := make([]model.SlotConfig, 0, len(slots))
	for _, slot := range slots {
		if slot.ItemType == model.ItemTypeScale || slot.ItemType == model.ItemTypeArpeggio {
			valid = append(valid, slot)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sum := 0.0
	for _, slot := range valid {
		if slot.Percent > 0 {
			sum += slot.Percent
		}
	}
	if sum == 100 {
		return valid
	}

	out := make([]model.SlotConfig, len(valid))
	copy(out, valid)
	if sum <= 0 {
		// 占比全空时均分
		share := 100.0 / float64(len(out))
		for i := range out {
			out[i].Percent = share
		}
		return out
	}
	scale := 100.0 / sum
	for i := range out {
		if out[i].Percent < 0 {
			out[i].Percent = 0
		}
		out[i].Percent *= scale
	}
	return out
}

// allocate 把总条目数按槽位占比切成整数配额，配额之和恰为 totalItems。
// variation 是峰-峰抖动带（百分点），每次生成独立抽取，使同一配置下
// 反复生成也有变化。舍入余差由占比最大的槽位吸收（并列取声明序靠前者）。
func (s *Selector) allocate(slots []model.SlotConfig, totalItems int, variation float64) []int {
	if len(slots) == 0 {
		return nil
	}

	quotas := make([]int, len(slots))
	total := float64(totalItems)
	for i, slot := range slots {
		share := slot.Percent / 100 * total
		if variation > 0 {
			halfBand := variation / 200 * total
			share += (s.Rand.Float64()*2 - 1) * halfBand
		}
		q := int(math.Round(share))
		if q < 0 {
			q = 0
		}
		quotas[i] = q
	}

	largest := 0
	for i, slot := range slots {
		if slot.Percent > slots[largest].Percent {
			largest = i
		}
	}

	sum := 0
	for _, q := range quotas {
		sum += q
	}
	diff := totalItems - sum
	quotas[largest] += diff

	// 吸收后若被压成负数，从其余槽位中最大者逐个扣回
	for quotas[largest] < 0 {
		deficit := -quotas[largest]
		quotas[largest] = 0
		donor := -1
		for i, q := range quotas {
			if i == largest || q <= 0 {
				continue
			}
			if donor < 0 || q > quotas[donor] {
				donor = i
			}
		}
		if donor < 0 {
			break
		}
		take := deficit
		if take > quotas[donor] {
			take = quotas[donor]
		}
		quotas[donor] -= take
		if take < deficit {
			quotas[largest] = -(deficit - take)
		}
	}
	return quotas
}
