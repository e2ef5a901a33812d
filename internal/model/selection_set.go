package model

import "time"

// SelectionSet 命名的启用组合预设，可一键载入
type SelectionSet struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	IsActive    bool      `gorm:"default:false" json:"is_active"`
	ScaleIDs    []uint    `gorm:"serializer:json;type:text" json:"scale_ids"`
	ArpeggioIDs []uint    `gorm:"serializer:json;type:text" json:"arpeggio_ids"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SelectionSet) TableName() string {
	return "selection_sets"
}
