package model

import "time"

// Setting 以JSON文本存储的键值配置
type Setting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// SettingKeySelectionAlgorithm 选取算法配置所在的键
const SettingKeySelectionAlgorithm = "selection_algorithm"
