// Package selector 实现练习集生成引擎：加权、槽位分配、每周重点名额、
// 不放回抽样与演奏法建议。纯计算，不做任何I/O，随机源显式注入。
package selector

import (
	"errors"
	"math/rand"
	"time"

	"scales_practice_backend/internal/model"
)

// Candidate 参与选取的一条已启用目录条目及其练习历史快照
type Candidate struct {
	ItemType         string
	ItemID           uint
	DisplayName      string
	Note             string
	Category         string
	Octaves          int
	StaticWeight     float64
	TargetBPM        *int
	ArticulationMode string
	PracticeCount    int
	LastPracticedAt  *time.Time
}

// Result 一次生成的产物。Shortfall 表示因条目池不足而少给的数量，
// EmptyCatalog 表示目录里没有任何启用条目（与部分成功区分开）。
type Result struct {
	Items        []model.PracticeItem
	Requested    int
	Shortfall    int
	EmptyCatalog bool
}

// Selector 练习集生成器。Rand 必须由调用方提供，便于并发安全与定种测试。
// NeverPracticedDays 为"从未练过"的天数哨兵，0 表示取 days_since_practice_factor
// 本身（此时新鲜度系数恰好贡献 ×2）。
type Selector struct {
	Rand               *rand.Rand
	Now                time.Time
	NeverPracticedDays float64
}

// ErrNegativeTotalItems 负的 total_items 属于不可能状态，在边界直接拒绝
var ErrNegativeTotalItems = errors.New("total_items must not be negative")

// New 以给定随机源构造生成器
func New(rnd *rand.Rand, now time.Time) *Selector {
	return &Selector{Rand: rnd, Now: now}
}

// Generate 依当前配置从候选条目生成一份有序练习集
func (s *Selector) Generate(candidates []Candidate, cfg model.AlgorithmConfig) (Result, error) {
	if cfg.TotalItems < 0 {
		return Result{}, ErrNegativeTotalItems
	}

	result := Result{Requested: cfg.TotalItems}
	if len(candidates) == 0 {
		result.EmptyCatalog = true
		return result, nil
	}
	if cfg.TotalItems == 0 {
		result.Items = []model.PracticeItem{}
		return result, nil
	}

	slots := normalizeSlots(cfg.Slots)
	quotas := s.allocate(slots, cfg.TotalItems, cfg.Variation)

	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		weights[i] = s.ItemWeight(c, cfg.Weighting)
	}

	// 八度衰减状态在整份练习集内共享：同一八度数每被选中一次，
	// 后续同八度条目的有效权重再乘 0.5
	octaveCounts := make(map[int]int)
	taken := make(map[candidateKey]bool)

	type pick struct {
		cand    Candidate
		isFocus bool
	}
	var picks []pick

	for slotIdx, slot := range slots {
		quota := quotas[slotIdx]
		if quota <= 0 {
			continue
		}

		var focusPool, otherPool []weighted
		for i, c := range candidates {
			if taken[keyOf(c)] || !slotMatches(slot, c) {
				continue
			}
			w := weighted{cand: c, weight: weights[i]}
			if cfg.WeeklyFocus.Enabled && focusMatches(cfg.WeeklyFocus, c) {
				focusPool = append(focusPool, w)
			} else {
				otherPool = append(otherPool, w)
			}
		}

		// 未开启每周重点时重点子池恒为空，配额全部走普通池
		focusQuota, otherQuota := 0, quota
		if cfg.WeeklyFocus.Enabled {
			focusQuota, otherQuota = splitQuota(quota, len(focusPool), len(otherPool), cfg.WeeklyFocus.ProbabilityIncrease)
		}

		for _, w := range s.sample(focusPool, focusQuota, cfg.OctaveVariety, octaveCounts) {
			picks = append(picks, pick{cand: w.cand, isFocus: true})
			taken[keyOf(w.cand)] = true
		}
		for _, w := range s.sample(otherPool, otherQuota, cfg.OctaveVariety, octaveCounts) {
			picks = append(picks, pick{cand: w.cand, isFocus: false})
			taken[keyOf(w.cand)] = true
		}
	}

	result.Items = make([]model.PracticeItem, 0, len(picks))
	for _, p := range picks {
		result.Items = append(result.Items, model.PracticeItem{
			ItemType:      p.cand.ItemType,
			ItemID:        p.cand.ItemID,
			DisplayName:   p.cand.DisplayName,
			Octaves:       p.cand.Octaves,
			Articulation:  s.assignArticulation(p.cand, cfg.SlurredPercent),
			TargetBPM:     resolveTargetBPM(p.cand, cfg),
			IsWeeklyFocus: p.isFocus,
		})
	}
	result.Shortfall = cfg.TotalItems - len(result.Items)
	if result.Shortfall < 0 {
		result.Shortfall = 0
	}
	return result, nil
}

type candidateKey struct {
	itemType string
	id       uint
}

func keyOf(c Candidate) candidateKey {
	return candidateKey{itemType: c.ItemType, id: c.ItemID}
}

// slotMatches 条目类型一致且类别落在槽位的类别集合内
func slotMatches(slot model.SlotConfig, c Candidate) bool {
	if slot.ItemType != c.ItemType {
		return false
	}
	if len(slot.Types) == 0 {
		return true
	}
	for _, t := range slot.Types {
		if t == c.Category {
			return true
		}
	}
	return false
}

func resolveTargetBPM(c Candidate, cfg model.AlgorithmConfig) int {
	if c.TargetBPM != nil {
		return *c.TargetBPM
	}
	if c.ItemType == model.ItemTypeScale {
		return cfg.DefaultScaleBPM
	}
	return cfg.DefaultArpeggioBPM
}
