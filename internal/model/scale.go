package model

import (
	"fmt"
	"time"
)

// 音名与变化记号、音阶类型的全部取值，初始化时用来生成目录
var (
	Notes             = []string{"A", "B", "C", "D", "E", "F", "G"}
	Accidentals       = []string{"", AccidentalFlat, AccidentalSharp}
	ScaleTypes        = []string{"major", "minor_harmonic", "minor_melodic", "chromatic"}
	ScaleOctaves      = []int{1, 2, 3}
	ArpeggioTypes     = []string{"major", "minor", "diminished", "dominant"}
	ArpeggioOctaves   = []int{1, 2, 3}
	ArticulationModes = []string{ArticulationBoth, ArticulationSlurredOnly, ArticulationSeparateOnly}
)

const (
	AccidentalFlat  = "flat"
	AccidentalSharp = "sharp"

	ArticulationBoth         = "both"
	ArticulationSlurredOnly  = "slurred_only"
	ArticulationSeparateOnly = "separate_only"

	ItemTypeScale    = "scale"
	ItemTypeArpeggio = "arpeggio"
)

// Scale 单条音阶目录条目
type Scale struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Note             string    `gorm:"type:varchar(1);not null;index" json:"note"`
	Accidental       *string   `gorm:"type:varchar(8)" json:"accidental"`
	Type             string    `gorm:"type:varchar(32);not null;index" json:"type"`
	Octaves          int       `gorm:"not null" json:"octaves"`
	Enabled          bool      `gorm:"default:false;index" json:"enabled"`
	Weight           float64   `gorm:"default:1.0" json:"weight"`
	TargetBPM        *int      `json:"target_bpm"`
	ArticulationMode string    `gorm:"type:varchar(16);default:both" json:"articulation_mode"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Scale) TableName() string {
	return "scales"
}

// DisplayName 拼出展示名，例如 "A♭ minor harmonic - 2 octaves"
func (s *Scale) DisplayName() string {
	typeDisplay := replaceUnderscores(s.Type)
	plural := ""
	if s.Octaves > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%s%s %s - %d octave%s", s.Note, accidentalSymbol(s.Accidental), typeDisplay, s.Octaves, plural)
}

func accidentalSymbol(accidental *string) string {
	if accidental == nil {
		return ""
	}
	switch *accidental {
	case AccidentalFlat:
		return "♭"
	case AccidentalSharp:
		return "♯"
	}
	return ""
}

func replaceUnderscores(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}
