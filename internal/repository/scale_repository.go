package repository

import (
	"gorm.io/gorm"

	"scales_practice_backend/internal/model"
)

type ScaleRepository struct {
	DB *gorm.DB
}

func NewScaleRepository(db *gorm.DB) *ScaleRepository {
	return &ScaleRepository{DB: db}
}

// CatalogFilter 目录查询的可选过滤条件
type CatalogFilter struct {
	Note    string
	Type    string
	Octaves int
	Enabled *bool
}

// List 按条件列出音阶，固定排序保证前端展示稳定
func (r *ScaleRepository) List(filter CatalogFilter) ([]*model.Scale, error) {
	query := r.DB.Model(&model.Scale{})
	if filter.Note != "" {
		query = query.Where("note = ?", filter.Note)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Octaves > 0 {
		query = query.Where("octaves = ?", filter.Octaves)
	}
	if filter.Enabled != nil {
		query = query.Where("enabled = ?", *filter.Enabled)
	}

	var scales []*model.Scale
	err := query.Order("note, accidental, type, octaves").Find(&scales).Error
	return scales, err
}

// ListEnabled 列出所有启用的音阶
func (r *ScaleRepository) ListEnabled() ([]*model.Scale, error) {
	var scales []*model.Scale
	err := r.DB.Where("enabled = ?", true).Find(&scales).Error
	return scales, err
}

func (r *ScaleRepository) GetByID(id uint) (*model.Scale, error) {
	var scale model.Scale
	err := r.DB.First(&scale, id).Error
	if err != nil {
		return nil, err
	}
	return &scale, nil
}

func (r *ScaleRepository) Update(scale *model.Scale) error {
	return r.DB.Save(scale).Error
}

// BulkEnable 批量启用/停用，返回受影响行数
func (r *ScaleRepository) BulkEnable(ids []uint, enabled bool) (int64, error) {
	result := r.DB.Model(&model.Scale{}).Where("id IN ?", ids).Update("enabled", enabled)
	return result.RowsAffected, result.Error
}

// BulkArticulation 批量设置演奏法限定
func (r *ScaleRepository) BulkArticulation(ids []uint, mode string) (int64, error) {
	result := r.DB.Model(&model.Scale{}).Where("id IN ?", ids).Update("articulation_mode", mode)
	return result.RowsAffected, result.Error
}

// DisableAll 停用全部音阶（载入预设前清场用）
func (r *ScaleRepository) DisableAll() error {
	return r.DB.Model(&model.Scale{}).Where("enabled = ?", true).Update("enabled", false).Error
}

// EnableByIDs 启用指定ID集合，返回受影响行数
func (r *ScaleRepository) EnableByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.DB.Model(&model.Scale{}).Where("id IN ?", ids).Update("enabled", true)
	return result.RowsAffected, result.Error
}

func (r *ScaleRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Scale{}).Count(&count).Error
	return count, err
}

func (r *ScaleRepository) CreateBatch(scales []*model.Scale) error {
	return r.DB.Create(&scales).Error
}
