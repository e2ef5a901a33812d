package model

import (
	"fmt"
	"time"
)

// Arpeggio 单条琶音目录条目
type Arpeggio struct {
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

func (Arpeggio) TableName() string {
	return "arpeggios"
}

// DisplayName 拼出展示名，例如 "B dominant arpeggio - 3 octaves"
func (a *Arpeggio) DisplayName() string {
	plural := ""
	if a.Octaves > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%s%s %s arpeggio - %d octave%s", a.Note, accidentalSymbol(a.Accidental), a.Type, a.Octaves, plural)
}
