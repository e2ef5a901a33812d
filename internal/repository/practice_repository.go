package repository

import (
	"time"

	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
)

type PracticeRepository struct {
	DB *gorm.DB
}

func NewPracticeRepository(db *gorm.DB) *PracticeRepository {
	return &PracticeRepository{DB: db}
}

// ItemStats 单个条目的练习历史聚合
type ItemStats struct {
	ItemID          uint       `gorm:"column:item_id"`
	TotalSessions   int        `gorm:"column:total_sessions"`
	TimesPracticed  int        `gorm:"column:times_practiced"`
	LastPracticedAt *time.Time `gorm:"column:last_practiced_at"`
	MaxPracticedBPM *int       `gorm:"column:max_practiced_bpm"`
}

// CreateSession 写入一次练习打卡及其全部条目
func (r *PracticeRepository) CreateSession(session *model.PracticeSession) error {
	return r.DB.Create(session).Error
}

func (r *PracticeRepository) GetSession(id uint) (*model.PracticeSession, error) {
	var session model.PracticeSession
	err := r.DB.Preload("Entries").First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// StatsByItemType 按条目聚合练习历史，一次查询出全部条目的
// 打卡次数、实际练习次数、最近练习时间和最高练习BPM
func (r *PracticeRepository) StatsByItemType(itemType string) (map[uint]ItemStats, error) {
	var rows []ItemStats
	err := r.DB.Model(&model.PracticeEntry{}).
		Select(
			"item_id, "+
				"COUNT(*) AS total_sessions, "+
				"SUM(CASE WHEN was_practiced THEN 1 ELSE 0 END) AS times_practiced, "+
				"MAX(CASE WHEN was_practiced THEN created_at END) AS last_practiced_at, "+
				"MAX(CASE WHEN was_practiced THEN practiced_bpm END) AS max_practiced_bpm",
		).
		Where("item_type = ?", itemType).
		Group("item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[uint]ItemStats, len(rows))
	for _, row := range rows {
		stats[row.ItemID] = row
	}
	return stats, nil
}
