package repository

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

// GetAlgorithmConfig 读取选取算法配置；不存在或损坏时回退默认值
func (r *SettingRepository) GetAlgorithmConfig() (model.AlgorithmConfig, error) {
	var setting model.Setting
	err := r.DB.Where("key = ?", model.SettingKeySelectionAlgorithm).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.DefaultAlgorithmConfig(), nil
		}
		return model.AlgorithmConfig{}, err
	}

	var cfg model.AlgorithmConfig
	if err := json.Unmarshal([]byte(setting.Value), &cfg); err != nil {
		return model.DefaultAlgorithmConfig(), nil
	}
	return cfg, nil
}

// SaveAlgorithmConfig 整体覆盖写入算法配置
func (r *SettingRepository) SaveAlgorithmConfig(cfg model.AlgorithmConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	var setting model.Setting
	err = r.DB.Where("key = ?", model.SettingKeySelectionAlgorithm).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.DB.Create(&model.Setting{
			Key:   model.SettingKeySelectionAlgorithm,
			Value: string(raw),
		}).Error
	}

	setting.Value = string(raw)
	return r.DB.Save(&setting).Error
}
