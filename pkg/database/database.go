package database

import (
	"encoding/json"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scales_practice_backend/internal/config"
	"scales_practice_backend/internal/model"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Scale{},
		&model.Arpeggio{},
		&model.PracticeSession{},
		&model.PracticeEntry{},
		&model.Setting{},
		&model.SelectionSet{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认算法配置：settings 中不存在时写入一条
	var count int64
	db.Model(&model.Setting{}).Where("key = ?", model.SettingKeySelectionAlgorithm).Count(&count)
	if count == 0 {
		raw, err := json.Marshal(model.DefaultAlgorithmConfig())
		if err != nil {
			return nil, err
		}
		db.Create(&model.Setting{
			Key:   model.SettingKeySelectionAlgorithm,
			Value: string(raw),
		})
	}

	return db, nil
}
