package model

// SlotConfig 一个类别桶及其在生成集中的占比
type SlotConfig struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	ItemType string   `json:"item_type"`
	Percent  float64  `json:"percent"`
}

// WeightingConfig 权重公式的可调参数
//
// weight = static_weight * base_multiplier
//   - (1 + days_since_practice / days_since_practice_factor)
//     / (practice_count + practice_count_divisor)
type WeightingConfig struct {
	BaseMultiplier          float64 `json:"base_multiplier"`
	DaysSincePracticeFactor float64 `json:"days_since_practice_factor"`
	PracticeCountDivisor    float64 `json:"practice_count_divisor"`
}

// WeeklyFocusConfig 每周重点：为匹配条目保留一部分名额
type WeeklyFocusConfig struct {
	Enabled             bool     `json:"enabled"`
	Keys                []string `json:"keys"`
	Types               []string `json:"types"`
	Categories          []string `json:"categories"`
	ProbabilityIncrease float64  `json:"probability_increase"`
}

// AlgorithmConfig 练习集生成算法的全部运行参数
type AlgorithmConfig struct {
	TotalItems         int               `json:"total_items"`
	Variation          float64           `json:"variation"`
	Slots              []SlotConfig      `json:"slots"`
	OctaveVariety      bool              `json:"octave_variety"`
	SlurredPercent     float64           `json:"slurred_percent"`
	Weighting          WeightingConfig   `json:"weighting"`
	DefaultScaleBPM    int               `json:"default_scale_bpm"`
	DefaultArpeggioBPM int               `json:"default_arpeggio_bpm"`
	ScaleBPMUnit       string            `json:"scale_bpm_unit"`
	ArpeggioBPMUnit    string            `json:"arpeggio_bpm_unit"`
	WeeklyFocus        WeeklyFocusConfig `json:"weekly_focus"`
}

// DefaultAlgorithmConfig 默认算法配置，各槽位占比之和必须为100
func DefaultAlgorithmConfig() AlgorithmConfig {
	return AlgorithmConfig{
		TotalItems: 5,
		Variation:  20,
		Slots: []SlotConfig{
			{Name: "Tonal Scales", Types: []string{"major", "minor_harmonic", "minor_melodic"}, ItemType: ItemTypeScale, Percent: 30},
			{Name: "Chromatic Scales", Types: []string{"chromatic"}, ItemType: ItemTypeScale, Percent: 10},
			{Name: "Seventh Arpeggios", Types: []string{"diminished", "dominant"}, ItemType: ItemTypeArpeggio, Percent: 10},
			{Name: "Triad Arpeggios", Types: []string{"major", "minor"}, ItemType: ItemTypeArpeggio, Percent: 50},
		},
		OctaveVariety:  true,
		SlurredPercent: 50,
		Weighting: WeightingConfig{
			BaseMultiplier:          1.0,
			DaysSincePracticeFactor: 7,
			PracticeCountDivisor:    1,
		},
		DefaultScaleBPM:    60,
		DefaultArpeggioBPM: 72,
		ScaleBPMUnit:       "quaver",
		ArpeggioBPMUnit:    "quaver",
		WeeklyFocus: WeeklyFocusConfig{
			Enabled:             false,
			Keys:                []string{},
			Types:               []string{},
			Categories:          []string{},
			ProbabilityIncrease: 80,
		},
	}
}
