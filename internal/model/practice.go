package model

import "time"

// PracticeSession 一次练习打卡，包含若干条目
type PracticeSession struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	Entries   []PracticeEntry `gorm:"foreignKey:SessionID" json:"entries,omitempty"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// PracticeEntry 练习记录中的单个条目，回写练习历史
type PracticeEntry struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID         uint      `gorm:"not null;index" json:"session_id"`
	ItemType          string    `gorm:"type:varchar(16);not null;index:idx_entry_item" json:"item_type"`
	ItemID            uint      `gorm:"not null;index:idx_entry_item" json:"item_id"`
	Articulation      *string   `gorm:"type:varchar(16)" json:"articulation"` // 当时建议的演奏法
	WasPracticed      bool      `gorm:"default:false" json:"was_practiced"`
	PracticedSlurred  bool      `gorm:"default:false" json:"practiced_slurred"`
	PracticedSeparate bool      `gorm:"default:false" json:"practiced_separate"`
	PracticedBPM      *int      `json:"practiced_bpm"`
	TargetBPM         *int      `json:"target_bpm"` // 练习时的目标BPM快照
	MatchedTargetBPM  *bool     `json:"matched_target_bpm"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PracticeEntry) TableName() string {
	return "practice_entries"
}

// PracticeItem 生成的练习条目，返回给前端后不再改动
type PracticeItem struct {
	ItemType      string `json:"type"`
	ItemID        uint   `json:"id"`
	DisplayName   string `json:"display_name"`
	Octaves       int    `json:"octaves"`
	Articulation  string `json:"articulation"`
	TargetBPM     int    `json:"target_bpm"`
	IsWeeklyFocus bool   `json:"is_weekly_focus"`
}

const (
	ArticulationSlurred  = "slurred"
	ArticulationSeparate = "separate"
)
