package selector

import (
	"math"

	"scales_practice_backend/internal/model"
)

// focusMatches 每周重点匹配：三个集合均为"空即任意"，非空则须命中。
// keys 按音名字母匹配，categories 对应条目大类（scale/arpeggio）。
func focusMatches(wf model.WeeklyFocusConfig, c Candidate) bool {
	if len(wf.Keys) > 0 && !containsString(wf.Keys, c.Note) {
		return false
	}
	if len(wf.Types) > 0 && !containsString(wf.Types, c.Category) {
		return false
	}
	if len(wf.Categories) > 0 && !containsString(wf.Categories, c.ItemType) {
		return false
	}
	return true
}

// splitQuota 把槽位配额切成重点/非重点两份。任一子池不够时缺额划给
// 另一侧，只要合并后的池足够大，就绝不因为单侧耗尽而少给条目。
func splitQuota(quota, focusAvail, otherAvail int, probabilityIncrease float64) (focusQuota, otherQuota int) {
	focusQuota = int(math.Round(float64(quota) * probabilityIncrease / 100))
	if focusQuota < 0 {
		focusQuota = 0
	}
	if focusQuota > quota {
		focusQuota = quota
	}
	otherQuota = quota - focusQuota

	if focusQuota > focusAvail {
		otherQuota += focusQuota - focusAvail
		focusQuota = focusAvail
	}
	if otherQuota > otherAvail {
		spill := otherQuota - otherAvail
		otherQuota = otherAvail
		if focusQuota+spill <= focusAvail {
			focusQuota += spill
		} else {
			focusQuota = focusAvail
		}
	}
	return focusQuota, otherQuota
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
